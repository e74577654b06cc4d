package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
	"github.com/SscSPs/beers_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyReaderSvc) {
	h := &currencyHandler{currencyService: currencyService}
	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the currency codes accepted by the API, in ascending order
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.SupportedCurrenciesResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	codes := h.currencyService.ListSupportedCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.SupportedCurrenciesResponse{Codes: codes})
}
