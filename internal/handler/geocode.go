package handler

import (
	"context"
	"errors"
	"net/http"

	"latlng-api/internal/models"
	"latlng-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	Geocode(context.Context, string) ([]models.Location, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Search addresses
//	@Tags		geocoding
//	@Produce	json
//	@Param		q	query		string	true	"address text, e.g. 東京都千代田区丸の内"
//	@Success	200	{array}		models.Location
//	@Failure	400	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter 'q'"})
		return
	}

	locations, err := h.service.Geocode(c.Request.Context(), query)
	if errors.Is(err, service.ErrEmptyAddress) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter 'q'"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("q", query).Msg("geocode failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, locations)
}
