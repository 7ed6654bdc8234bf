package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_pricing/internal/apperrors"
	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_pricing/internal/core/ports/services"
	"github.com/SscSPs/storefront_pricing/internal/dto"
	"github.com/SscSPs/storefront_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies and exchange rates.
type currencyHandler struct {
	currencyService portssvc.CurrencyCatalogSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencyCatalogSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyCatalogSvc) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/exchange-rates/:from/:to", h.getExchangeRate)
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves the currencies prices can be displayed in, base currency first
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies := dto.ToListCurrencyResponse(h.currencyService.ListCurrencies())

	logger.Debug("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, currencies)
}

// getExchangeRate godoc
// @Summary Get the exchange rate between two currencies
// @Description Retrieves the multiplier converting an amount in the source currency into the target currency
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "Source Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "Target Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Unsupported currency code"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{from}/{to} [get]
func (h *currencyHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := domain.ParseCurrencyCode(c.Param("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := domain.ParseCurrencyCode(c.Param("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("from", from.String()), slog.String("to", to.String()))

	rate, err := h.currencyService.Rate(from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Exchange rate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRateResponse{
		FromCurrencyCode: from.String(),
		ToCurrencyCode:   to.String(),
		Rate:             rate,
	})
}
