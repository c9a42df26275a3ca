package service

import (
	"context"
	"testing"

	"latlng-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReverseGeoCodeRepository is a mock implementation of the ReverseGeoCodeRepository interface
type MockReverseGeoCodeRepository struct {
	mock.Mock
}

// FindNearestLocation implements ReverseGeoCodeRepository.
func (m *MockReverseGeoCodeRepository) FindNearestLocation(ctx context.Context, lat float64, lon float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lon)
	location, _ := args.Get(0).(*models.Location)
	return location, args.Error(1)
}

func TestReverseGeoCodeService_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		lat, lon     float64
		callRepo     bool
		mockLocation *models.Location
		mockError    error
		expected     *models.Location
		expectedErr  error
	}{
		{
			name:        "empty input",
			input:       "",
			expectedErr: ErrInvalidCoordinate,
		},
		{
			name:        "outside japan",
			input:       "55,135",
			expectedErr: ErrInvalidCoordinate,
		},
		{
			name:         "deg input",
			input:        "35.681236,139.767125",
			lat:          35.681236,
			lon:          139.767125,
			callRepo:     true,
			mockLocation: &marunouchi,
			expected:     &marunouchi,
		},
		{
			name:         "dmm input is converted before lookup",
			input:        "3540,N,13945,E",
			lat:          35 + 40.0/60,
			lon:          139 + 45.0/60,
			callRepo:     true,
			mockLocation: &marunouchi,
			expected:     &marunouchi,
		},
		{
			name:      "no location in range",
			input:     "35.681236,139.767125",
			lat:       35.681236,
			lon:       139.767125,
			callRepo:  true,
			mockError: models.ErrNotFound,
			expected:  nil,
		},
		{
			name:        "repository error",
			input:       "35.681236,139.767125",
			lat:         35.681236,
			lon:         139.767125,
			callRepo:    true,
			mockError:   assert.AnError,
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockReverseGeoCodeRepository)
			service := NewReverseGeoCodeService(mockRepo)

			if tt.callRepo {
				mockRepo.On("FindNearestLocation", mock.Anything, tt.lat, tt.lon).Return(tt.mockLocation, tt.mockError)
			}

			result, err := service.ReverseGeocode(context.Background(), tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
