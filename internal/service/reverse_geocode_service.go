package service

import (
	"context"
	"errors"
	"fmt"

	"latlng-api/internal/latlng"
	"latlng-api/internal/models"

	"github.com/rs/zerolog/log"
)

// ReverseGeoCodeService finds the address closest to a coordinate typed by the user
type ReverseGeoCodeService struct {
	repo ReverseGeoCodeRepository
}

// ReverseGeoCodeRepository interface for dependency injection
type ReverseGeoCodeRepository interface {
	FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(repo ReverseGeoCodeRepository) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{repo: repo}
}

// ReverseGeocode reads text as a DEG or DMM coordinate pair and returns the nearest address.
// It returns nil without error when no address lies within range.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, text string) (*models.Location, error) {
	ll, ok := latlng.AnalyzeInput(text)
	if !ok {
		return nil, fmt.Errorf("service: %q: %w", text, ErrInvalidCoordinate)
	}

	location, err := s.repo.FindNearestLocation(ctx, ll.Latitude, ll.Longitude)
	if errors.Is(err, models.ErrNotFound) {
		log.Debug().Float64("lat", ll.Latitude).Float64("lon", ll.Longitude).Msg("no location near coordinate")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest location: %w", err)
	}

	return location, nil
}
