package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"latlng-api/internal/latlng"

	"github.com/rs/zerolog/log"
)

// ErrInvalidCoordinate is returned when input cannot be read as a coordinate near Japan.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ParseRecorder receives the outcome of every analyzed input
type ParseRecorder interface {
	RecordParse(format string)
}

// CoordinateService exposes the latlng conversions to the transport layer
type CoordinateService struct {
	recorder ParseRecorder
}

// NewCoordinateService creates a new coordinate service. recorder may be nil.
func NewCoordinateService(recorder ParseRecorder) *CoordinateService {
	return &CoordinateService{recorder: recorder}
}

// Parse analyzes the text of a coordinate field
func (s *CoordinateService) Parse(ctx context.Context, text string) (latlng.Result, error) {
	res, ok := latlng.Analyze(text)
	if !ok {
		s.record("invalid")
		log.Debug().Str("input", text).Msg("coordinate input rejected")
		return latlng.Result{}, fmt.Errorf("service: %q: %w", text, ErrInvalidCoordinate)
	}

	s.record(string(res.Format))
	return res, nil
}

// ToDMM converts decimal degrees to DMM
func (s *CoordinateService) ToDMM(deg float64) (float64, error) {
	if !isFinite(deg) {
		return 0, fmt.Errorf("service: degrees %v: %w", deg, ErrInvalidCoordinate)
	}
	return latlng.DegToDMM(deg), nil
}

// ToDeg converts DMM to decimal degrees
func (s *CoordinateService) ToDeg(dmm float64) (float64, error) {
	if !isFinite(dmm) {
		return 0, fmt.Errorf("service: dmm %v: %w", dmm, ErrInvalidCoordinate)
	}
	return latlng.DMMToDeg(dmm), nil
}

func (s *CoordinateService) record(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordParse(outcome)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
