package handlers

import (
	"errors"
	"net/http"
	"os"

	"aurora-grid/internal/api/models"
	"aurora-grid/internal/forecast"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

// respondForecastError maps forecaster/warehouse failures onto HTTP.
// InsufficientData is a data-state problem, not a malformed request, so it
// gets 422; a missing dataset means nothing was ingested yet.
func respondForecastError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, forecast.ErrInsufficientData):
		respondError(c, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA", err.Error())
	case errors.Is(err, os.ErrNotExist):
		respondError(c, http.StatusNotFound, "NO_DATASET", "price dataset not ingested")
	default:
		respondError(c, http.StatusInternalServerError, "FORECAST_ERROR", err.Error())
	}
}
