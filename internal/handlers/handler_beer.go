package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
	"github.com/SscSPs/beers_api/internal/dto"
	"github.com/SscSPs/beers_api/internal/middleware"
	"github.com/SscSPs/beers_api/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// SortableBeerFields lists the fields accepted by the sort query parameter.
var SortableBeerFields = []string{"id", "name", "brewery", "country", "price", "currency"}

// beerHandler handles HTTP requests related to the beer catalog.
type beerHandler struct {
	beerService     portssvc.BeerSvcFacade
	boxPriceService portssvc.BoxPriceSvc
}

func newBeerHandler(bs portssvc.BeerSvcFacade, bps portssvc.BoxPriceSvc) *beerHandler {
	return &beerHandler{
		beerService:     bs,
		boxPriceService: bps,
	}
}

// RegisterBeerRoutes registers routes related to beers. boxPriceLimiter may be nil to
// leave the box price route unthrottled.
func RegisterBeerRoutes(rg *gin.RouterGroup, beerService portssvc.BeerSvcFacade, boxPriceService portssvc.BoxPriceSvc, boxPriceLimiter *limiter.Limiter) {
	h := newBeerHandler(beerService, boxPriceService)

	beers := rg.Group("/beers")
	{
		beers.GET("", h.listBeers)
		beers.POST("", h.createBeer)
		beers.GET("/:id", h.getBeer)

		boxPriceChain := []gin.HandlerFunc{}
		if boxPriceLimiter != nil {
			boxPriceChain = append(boxPriceChain, middleware.RateLimit(boxPriceLimiter))
		}
		boxPriceChain = append(boxPriceChain, h.getBoxPrice)
		beers.GET("/:id/boxprice", boxPriceChain...)
	}
}

// listBeers godoc
// @Summary List beers
// @Description Retrieves one page of the beer catalog
// @Tags beers
// @Produce json
// @Param page query int false "Zero-based page index" default(0) minimum(0)
// @Param size query int false "Page size" default(20) minimum(1) maximum(100)
// @Param sort query []string false "Sort as field[,asc|desc]; fields: id, name, brewery, country, price, currency" collectionFormat(multi)
// @Success 200 {object} dto.BeerPageResponse
// @Failure 400 {object} map[string]string "Invalid paging or sort parameters"
// @Failure 500 {object} map[string]string "Failed to list beers"
// @Router /beers [get]
func (h *beerHandler) listBeers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !checkIntQuery(c, "page", "size") {
		return
	}
	var params dto.ListBeersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	pageReq, err := pagination.NewPageRequest(params.Page, params.Size, params.Sort, SortableBeerFields)
	if err != nil {
		respondWithError(c, logger, err, 0, "")
		return
	}

	page, err := h.beerService.ListBeers(c.Request.Context(), pageReq)
	if err != nil {
		respondWithError(c, logger, err, 0, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToBeerPageResponse(page))
}

// getBeer godoc
// @Summary Get a beer by ID
// @Description Retrieves a single beer from the catalog
// @Tags beers
// @Produce json
// @Param id path int true "Beer ID"
// @Success 200 {object} dto.BeerResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Beer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve beer"
// @Router /beers/{id} [get]
func (h *beerHandler) getBeer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beerID, ok := intParam(c, "id", c.Param("id"))
	if !ok {
		return
	}
	logger = logger.With(slog.Int("beer_id", beerID))

	beer, err := h.beerService.GetBeerByID(c.Request.Context(), beerID)
	if err != nil {
		respondWithError(c, logger, err, beerID, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToBeerResponse(beer))
}

// createBeer godoc
// @Summary Create a beer
// @Description Adds a new beer to the catalog. The currency must be a supported code.
// @Tags beers
// @Accept json
// @Produce json
// @Param beer body dto.CreateBeerRequest true "Beer details"
// @Success 201 {object} dto.BeerResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create beer"
// @Router /beers [post]
func (h *beerHandler) createBeer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	logger.Info("Received request to create beer", slog.String("name", req.Name), slog.String("currency", req.Currency))

	beer, err := h.beerService.CreateBeer(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, 0, "")
		return
	}

	logger.Info("Beer created successfully", slog.Int("beer_id", beer.ID))
	c.JSON(http.StatusCreated, dto.ToBeerResponse(beer))
}

// getBoxPrice godoc
// @Summary Price a box of beers
// @Description Prices quantity units of a beer converted into the requested currency using a live exchange rate
// @Tags beers
// @Produce json
// @Param id path int true "Beer ID"
// @Param currency query string true "Target currency code" example(USD)
// @Param quantity query int false "Units in the box" default(6) minimum(1)
// @Success 200 {object} dto.BoxPriceResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]string "Beer not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Exchange rate provider failure"
// @Failure 500 {object} map[string]string "Failed to price box"
// @Router /beers/{id}/boxprice [get]
func (h *beerHandler) getBoxPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beerID, ok := intParam(c, "id", c.Param("id"))
	if !ok {
		return
	}

	// Query validation runs before the beer lookup and any outbound call.
	if !checkIntQuery(c, "quantity") {
		return
	}
	var params dto.BoxPriceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	logger = logger.With(
		slog.Int("beer_id", beerID),
		slog.String("currency", params.Currency),
		slog.Int("quantity", params.Quantity),
	)

	price, err := h.boxPriceService.GetBoxPrice(c.Request.Context(), beerID, params.Quantity, params.Currency)
	if err != nil {
		respondWithError(c, logger, err, beerID, params.Currency)
		return
	}

	logger.Info("Box price computed", slog.String("total_price", price.TotalPrice))
	c.JSON(http.StatusOK, dto.ToBoxPriceResponse(price))
}
