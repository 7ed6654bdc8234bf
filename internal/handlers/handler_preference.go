package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_pricing/internal/core/ports/services"
	"github.com/SscSPs/storefront_pricing/internal/dto"
	"github.com/SscSPs/storefront_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler handles the caller's display currency.
type preferenceHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newPreferenceHandler creates a new preferenceHandler.
func newPreferenceHandler(ps portssvc.PricingSvcFacade) *preferenceHandler {
	return &preferenceHandler{
		pricingService: ps,
	}
}

// registerPreferenceRoutes registers routes related to client preferences.
func registerPreferenceRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPreferenceHandler(pricingService)

	preferences := rg.Group("/preferences")
	{
		preferences.GET("/currency", h.getPreferredCurrency)
		preferences.PUT("/currency", h.updatePreferredCurrency)
	}
}

// getPreferredCurrency godoc
// @Summary Get the preferred display currency
// @Description Returns the caller's stored display currency, or the base currency when none is stored
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.PreferenceResponse
// @Router /preferences/currency [get]
func (h *preferenceHandler) getPreferredCurrency(c *gin.Context) {
	pricing := pricingForClient(c, h.pricingService)
	code := pricing.GetPreferredCurrency(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(code))
}

// updatePreferredCurrency godoc
// @Summary Set the preferred display currency
// @Description Stores the caller's display currency, replacing any previous choice
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   preference body dto.UpdatePreferenceRequest true "Currency code"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Router /preferences/currency [put]
func (h *preferenceHandler) updatePreferredCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreferredCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	code, _ := domain.ParseCurrencyCode(req.CurrencyCode)
	pricing := pricingForClient(c, h.pricingService)

	if err := pricing.SetPreferredCurrency(c.Request.Context(), code); err != nil {
		logger.Error("Failed to save preferred currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		return
	}

	logger.Info("Preferred currency updated", slog.String("currency_code", code.String()))
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(code))
}
