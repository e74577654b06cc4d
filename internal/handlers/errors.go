package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/platform/validation"
	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is the non-standard status recorded when the caller disconnects.
const statusClientClosedRequest = 499

// respondWithError maps service errors onto HTTP statuses. Dependency failures get a
// fixed message so upstream details never reach the caller.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, beerID int, targetCurrency string) {
	switch {
	case errors.Is(err, context.Canceled):
		// client is gone; nothing useful to write back
		logger.Warn("Request cancelled by client", slog.String("error", err.Error()))
		c.AbortWithStatus(statusClientClosedRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Beer not found", slog.Int("beer_id", beerID))
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Beer with ID %d does not exist", beerID)})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidCurrency):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		logger.Error("Exchange rate provider unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate provider unavailable"})
	case errors.Is(err, apperrors.ErrMalformedUpstreamResponse):
		logger.Error("Exchange rate provider returned malformed response", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate provider returned an invalid response"})
	case errors.Is(err, apperrors.ErrRateNotFound):
		logger.Warn("Exchange rate not found", slog.String("currency", targetCurrency))
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Exchange rate for %s not available", strings.ToUpper(targetCurrency))})
	default:
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// validationMessage strips the sentinel prefix, e.g. "validation error: price must be positive"
// becomes "price must be positive".
func validationMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{apperrors.ErrValidation, apperrors.ErrInvalidCurrency} {
		if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
			return rest
		}
	}
	return msg
}

// respondWithBindingError answers a failed ShouldBind* call.
func respondWithBindingError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	if fields := validation.FieldErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s -> should be of type: %s", typeErr.Field, typeErr.Type.String())})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
}

// intParam parses an integer path or query value. On failure it writes the 400 response
// and returns ok=false.
func intParam(c *gin.Context, name, raw string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s -> should be of type: int", name)})
		return 0, false
	}
	return value, true
}

// checkIntQuery validates optional integer query parameters before binding, so a type
// mismatch names the offending parameter.
func checkIntQuery(c *gin.Context, names ...string) bool {
	for _, name := range names {
		raw, present := c.GetQuery(name)
		if !present {
			continue
		}
		if _, ok := intParam(c, name, raw); !ok {
			return false
		}
	}
	return true
}
