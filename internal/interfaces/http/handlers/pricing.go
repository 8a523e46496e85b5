// internal/interfaces/http/handlers/pricing.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/pricing"
)

// PricingHandler handles currency conversion endpoints. It shares the
// process-wide rate table so admin updates take effect immediately.
type PricingHandler struct {
	pricingService *pricing.Service
	config         *config.Config
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *pricing.Service, cfg *config.Config) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		config:         cfg,
	}
}

// GetCurrencies handles GET /pricing/currencies
func (h *PricingHandler) GetCurrencies(c *gin.Context) {
	rates := h.pricingService.Rates()

	currencies := make([]gin.H, 0, len(pricing.SupportedCurrencies()))
	for _, code := range pricing.SupportedCurrencies() {
		info := pricing.Info(code)
		currencies = append(currencies, gin.H{
			"code":   code,
			"symbol": info.Symbol,
			"name":   info.Name,
			"rate":   rates.Rate(code),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Currencies retrieved successfully",
		"data":    currencies,
	})
}

// Convert handles GET /pricing/convert?amount=&from=&to=
func (h *PricingHandler) Convert(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amount",
		})
		return
	}

	from := pricing.Currency(c.DefaultQuery("from", string(pricing.BaseCurrency)))
	to := pricing.Currency(c.DefaultQuery("to", string(pricing.CurrencyUSD)))
	if !pricing.IsSupported(from) || !pricing.IsSupported(to) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported currency",
		})
		return
	}

	rates := h.pricingService.Rates()
	converted := rates.Convert(amount, from, to)

	c.JSON(http.StatusOK, gin.H{
		"message": "Amount converted successfully",
		"data": gin.H{
			"from":      from,
			"to":        to,
			"amount":    amount,
			"converted": converted,
			"formatted": rates.Format(converted, to, true),
		},
	})
}

// UpdateRate handles PUT /admin/pricing/rates/:code
func (h *PricingHandler) UpdateRate(c *gin.Context) {
	code := pricing.Currency(c.Param("code"))

	var req struct {
		Rate float64 `json:"rate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.pricingService.UpdateRate(code, req.Rate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Exchange rate updated successfully",
		"data": gin.H{
			"code": code,
			"rate": req.Rate,
		},
	})
}
