package handler

import (
	"net/http"

	"latlng-api/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the route handlers served by the API
type Handlers struct {
	LatLng         *LatLngHandler
	GeoCode        *GeoCodeHandler
	ReverseGeocode *ReverseGeocodeHandler
}

// NewRouter registers every route. middleware runs after recovery and request logging.
func NewRouter(h Handlers, gatherer prometheus.Gatherer, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware())
	r.Use(middleware...)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	latlng := r.Group("/latlng")
	latlng.GET("/parse", h.LatLng.Parse)
	latlng.GET("/dmm", h.LatLng.ToDMM)
	latlng.GET("/deg", h.LatLng.ToDeg)

	r.GET("/geocode", h.GeoCode.GeoCode)
	r.GET("/reverse-geocode", h.ReverseGeocode.ReverseGeocode)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
