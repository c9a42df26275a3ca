package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"latlng-api/internal/latlng"
	"latlng-api/internal/service"

	"github.com/gin-gonic/gin"
)

const errNotACoordinate = "input is not a latitude/longitude near Japan"

// ErrorResponse is the body of every non 2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ParseResponse is a parsed coordinate together with its DEG and DMM renderings
type ParseResponse struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Format    latlng.Format `json:"format" enums:"deg,dmm"`
	DEG       string        `json:"deg"`
	DMM       string        `json:"dmm"`
}

// ConversionResponse holds one value in both notations
type ConversionResponse struct {
	Deg float64 `json:"deg"`
	DMM float64 `json:"dmm"`
}

// CoordinateService interface for dependency injection
type CoordinateService interface {
	Parse(context.Context, string) (latlng.Result, error)
	ToDMM(float64) (float64, error)
	ToDeg(float64) (float64, error)
}

// LatLngHandler handles coordinate parsing and conversion requests
type LatLngHandler struct {
	service CoordinateService
}

// NewLatLngHandler creates a new coordinate handler
func NewLatLngHandler(svc CoordinateService) *LatLngHandler {
	return &LatLngHandler{service: svc}
}

// Parse handles GET /latlng/parse requests
//
//	@Summary	Parse coordinate text
//	@Tags		latlng
//	@Produce	json
//	@Param		q	query		string	true	"coordinate text, e.g. 36.2,N,138.6,E or 3507.2,13522.2"
//	@Success	200	{object}	ParseResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/latlng/parse [get]
func (h *LatLngHandler) Parse(c *gin.Context) {
	text, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter 'q'"})
		return
	}

	res, err := h.service.Parse(c.Request.Context(), text)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: errNotACoordinate})
		return
	}

	c.JSON(http.StatusOK, ParseResponse{
		Latitude:  res.Latitude,
		Longitude: res.Longitude,
		Format:    res.Format,
		DEG:       latlng.TextDEG(res.LatLng),
		DMM:       latlng.TextDMM(res.LatLng),
	})
}

// ToDMM handles GET /latlng/dmm requests
//
//	@Summary	Convert decimal degrees to DMM
//	@Tags		latlng
//	@Produce	json
//	@Param		deg	query		number	true	"decimal degrees"
//	@Success	200	{object}	ConversionResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/latlng/dmm [get]
func (h *LatLngHandler) ToDMM(c *gin.Context) {
	deg, ok := floatQuery(c, "deg")
	if !ok {
		return
	}

	dmm, err := h.service.ToDMM(deg)
	if !writeConversionError(c, err) {
		c.JSON(http.StatusOK, ConversionResponse{Deg: deg, DMM: dmm})
	}
}

// ToDeg handles GET /latlng/deg requests
//
//	@Summary	Convert DMM to decimal degrees
//	@Tags		latlng
//	@Produce	json
//	@Param		dmm	query		number	true	"degrees and decimal minutes, e.g. 3540.85815"
//	@Success	200	{object}	ConversionResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/latlng/deg [get]
func (h *LatLngHandler) ToDeg(c *gin.Context) {
	dmm, ok := floatQuery(c, "dmm")
	if !ok {
		return
	}

	deg, err := h.service.ToDeg(dmm)
	if !writeConversionError(c, err) {
		c.JSON(http.StatusOK, ConversionResponse{Deg: deg, DMM: dmm})
	}
}

// floatQuery reads a numeric query parameter, writing a 400 response when it is missing or malformed.
func floatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter '" + name + "'"})
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " format"})
		return 0, false
	}
	return v, true
}

func writeConversionError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrInvalidCoordinate):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "value must be a finite number"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return true
}
