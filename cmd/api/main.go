package main

import (
	"context"

	_ "latlng-api/docs"
	"latlng-api/internal/config"
	"latlng-api/internal/handler"
	"latlng-api/internal/logging"
	"latlng-api/internal/metrics"
	"latlng-api/internal/repository"
	"latlng-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

//	@title			latlng-api
//	@version		1.0
//	@description	Coordinate field parsing and geocoding for Japanese addresses
//	@host			localhost:8080
//	@BasePath		/
//	@schemes		http
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.LogPretty)
	gin.SetMode(config.GinMode)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize layers
	repo := repository.NewRepository(conn)

	coordinateService := service.NewCoordinateService(m)
	geoCodeService := service.NewGeoCodeService(repo)
	reverseGeocodeService := service.NewReverseGeoCodeService(repo)

	r := handler.NewRouter(handler.Handlers{
		LatLng:         handler.NewLatLngHandler(coordinateService),
		GeoCode:        handler.NewGeoCodeHandler(geoCodeService),
		ReverseGeocode: handler.NewReverseGeocodeHandler(reverseGeocodeService),
	}, reg, m.Middleware())

	log.Info().Str("addr", config.ServerAddress).Msg("server listening")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
