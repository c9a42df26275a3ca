package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"latlng-api/internal/models"
)

// ErrEmptyAddress is returned when an address search is requested without any text.
var ErrEmptyAddress = errors.New("address cannot be empty")

// GeoCodeService resolves address text to locations
type GeoCodeService struct {
	repo GeoCodeRepository
}

// GeoCodeRepository interface for dependency injection
type GeoCodeRepository interface {
	SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error)
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(repo GeoCodeRepository) *GeoCodeService {
	return &GeoCodeService{repo: repo}
}

// Geocode searches for locations by address text.
// Whitespace is dropped since stored addresses are written without spaces.
func (s *GeoCodeService) Geocode(ctx context.Context, address string) ([]models.Location, error) {
	address = strings.Join(strings.Fields(address), "")
	if address == "" {
		return nil, fmt.Errorf("service: %w", ErrEmptyAddress)
	}

	locations, err := s.repo.SearchLocationsByText(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service: search %q: %w", address, err)
	}

	if locations == nil {
		locations = []models.Location{}
	}
	return locations, nil
}
