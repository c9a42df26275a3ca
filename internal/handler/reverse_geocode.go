package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"latlng-api/internal/models"
	"latlng-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service ReverseGeoCodeService
}

// ReverseGeoCodeService interface for dependency injection
type ReverseGeoCodeService interface {
	ReverseGeocode(context.Context, string) (*models.Location, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc ReverseGeoCodeService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles GET /reverse-geocode requests.
// The coordinate comes either as free text in q or as separate lat and lon, in DEG or DMM notation.
//
//	@Summary	Nearest address to a coordinate
//	@Tags		geocoding
//	@Produce	json
//	@Param		q	query		string	false	"coordinate text, e.g. 3540.858,N,13945.960,E"
//	@Param		lat	query		string	false	"latitude"
//	@Param		lon	query		string	false	"longitude"
//	@Success	200	{object}	models.Location
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/reverse-geocode [get]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	text := c.Query("q")
	if text == "" {
		lat, lon := c.Query("lat"), c.Query("lon")
		if lat == "" || lon == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter 'q' or 'lat' and 'lon'"})
			return
		}
		if strings.ContainsAny(lat, ",\t") || strings.ContainsAny(lon, ",\t") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "'lat' and 'lon' must each hold a single value"})
			return
		}
		text = lat + "," + lon
	}

	location, err := h.service.ReverseGeocode(c.Request.Context(), text)
	if errors.Is(err, service.ErrInvalidCoordinate) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: errNotACoordinate})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("q", text).Msg("reverse geocode failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	if location == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no address found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, location)
}
