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

// priceHandler handles price conversion and display formatting.
type priceHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newPriceHandler creates a new priceHandler.
func newPriceHandler(ps portssvc.PricingSvcFacade) *priceHandler {
	return &priceHandler{
		pricingService: ps,
	}
}

// registerPriceRoutes registers routes related to prices.
func registerPriceRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPriceHandler(pricingService)

	prices := rg.Group("/prices")
	{
		prices.POST("/convert", h.convertPrice)
		prices.POST("/format", h.formatPrices)
	}
}

// convertPrice godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount, rounding half-up to cents unless both currencies are the same
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertPriceRequest true "Amount and currencies"
// @Success 200 {object} dto.ConvertPriceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /prices/convert [post]
func (h *priceHandler) convertPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Both codes passed the currencycode tag, so parsing only normalises them.
	from, _ := domain.ParseCurrencyCode(req.FromCurrencyCode)
	to, _ := domain.ParseCurrencyCode(req.ToCurrencyCode)

	converted := h.pricingService.ConvertPrice(*req.Amount, from, to)

	c.JSON(http.StatusOK, dto.ToConvertPriceResponse(*req.Amount, converted, from, to))
}

// formatPrices godoc
// @Summary Format base-currency amounts for display
// @Description Renders each amount in the requested currency, or the caller's preferred one when omitted
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatPricesRequest true "Amounts in the base currency"
// @Success 200 {object} dto.FormatPricesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /prices/format [post]
func (h *priceHandler) formatPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatPrices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	pricing := pricingForClient(c, h.pricingService)

	// Resolve the currency once so every line of the response agrees.
	var code domain.CurrencyCode
	if req.CurrencyCode != "" {
		code, _ = domain.ParseCurrencyCode(req.CurrencyCode)
	} else {
		code = pricing.GetPreferredCurrency(ctx)
	}
	showSymbol := true
	if req.ShowSymbol != nil {
		showSymbol = *req.ShowSymbol
	}

	resp := dto.FormatPricesResponse{
		CurrencyCode: code.String(),
		Prices:       make([]dto.FormattedPrice, len(req.Amounts)),
	}
	for i, amount := range req.Amounts {
		resp.Prices[i] = dto.FormattedPrice{
			Amount:          amount,
			ConvertedAmount: pricing.ConvertPrice(amount, domain.BaseCurrency, code),
			Formatted:       pricing.FormatPrice(ctx, amount, domain.WithCurrency(code), domain.WithSymbol(showSymbol)),
		}
	}

	logger.Debug("Prices formatted", slog.String("currency_code", code.String()), slog.Int("count", len(resp.Prices)))
	c.JSON(http.StatusOK, resp)
}
