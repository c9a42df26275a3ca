package handler

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"testing"

	"latlng-api/internal/latlng"
	"latlng-api/internal/models"
	"latlng-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCoordinateService is a mock implementation of the CoordinateService interface
type MockCoordinateService struct {
	mock.Mock
}

func (m *MockCoordinateService) Parse(ctx context.Context, text string) (latlng.Result, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(latlng.Result), args.Error(1)
}

func (m *MockCoordinateService) ToDMM(deg float64) (float64, error) {
	args := m.Called(deg)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCoordinateService) ToDeg(dmm float64) (float64, error) {
	args := m.Called(dmm)
	return args.Get(0).(float64), args.Error(1)
}

func TestLatLngHandler_Parse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query parameter", func(t *testing.T) {
		mockSvc := new(MockCoordinateService)
		w := serve(NewLatLngHandler(mockSvc).Parse, "/latlng/parse", url.Values{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing required query parameter 'q'", decodeError(t, w))
		mockSvc.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
	})

	t.Run("not a coordinate", func(t *testing.T) {
		mockSvc := new(MockCoordinateService)
		mockSvc.On("Parse", mock.Anything, "36.0").Return(latlng.Result{}, service.ErrInvalidCoordinate)

		w := serve(NewLatLngHandler(mockSvc).Parse, "/latlng/parse", url.Values{"q": {"36.0"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, errNotACoordinate, decodeError(t, w))
		mockSvc.AssertExpectations(t)
	})

	t.Run("dmm coordinate", func(t *testing.T) {
		mockSvc := new(MockCoordinateService)
		mockSvc.On("Parse", mock.Anything, "3540.85815,13945.96039").Return(latlng.Result{
			LatLng: models.LatLng{Latitude: 35.6809691, Longitude: 139.7660065},
			Format: latlng.FormatDMM,
		}, nil)

		w := serve(NewLatLngHandler(mockSvc).Parse, "/latlng/parse", url.Values{"q": {"3540.85815,13945.96039"}})

		require.Equal(t, http.StatusOK, w.Code)
		var body ParseResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, ParseResponse{
			Latitude:  35.6809691,
			Longitude: 139.7660065,
			Format:    latlng.FormatDMM,
			DEG:       "35.68097,139.76601",
			DMM:       "3540.85815,13945.96039",
		}, body)
		mockSvc.AssertExpectations(t)
	})
}

func TestLatLngHandler_Convert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		param          string
		raw            string
		method         string
		value          float64
		mockResult     float64
		mockError      error
		expectedStatus int
		expectedBody   ConversionResponse
		expectedError  string
	}{
		{
			name:           "deg to dmm",
			path:           "/latlng/dmm",
			param:          "deg",
			raw:            "35.5",
			method:         "ToDMM",
			value:          35.5,
			mockResult:     3530,
			expectedStatus: http.StatusOK,
			expectedBody:   ConversionResponse{Deg: 35.5, DMM: 3530},
		},
		{
			name:           "dmm to deg",
			path:           "/latlng/deg",
			param:          "dmm",
			raw:            "3530",
			method:         "ToDeg",
			value:          3530,
			mockResult:     35.5,
			expectedStatus: http.StatusOK,
			expectedBody:   ConversionResponse{Deg: 35.5, DMM: 3530},
		},
		{
			name:           "missing deg",
			path:           "/latlng/dmm",
			param:          "deg",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "missing required query parameter 'deg'",
		},
		{
			name:           "malformed dmm",
			path:           "/latlng/deg",
			param:          "dmm",
			raw:            "north",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid dmm format",
		},
		{
			name:           "infinite deg",
			path:           "/latlng/dmm",
			param:          "deg",
			raw:            "+Inf",
			method:         "ToDMM",
			value:          math.Inf(1),
			mockError:      service.ErrInvalidCoordinate,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "value must be a finite number",
		},
		{
			name:           "service error",
			path:           "/latlng/deg",
			param:          "dmm",
			raw:            "3530",
			method:         "ToDeg",
			value:          3530,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockCoordinateService)
			handler := NewLatLngHandler(mockSvc)

			if tt.method != "" {
				mockSvc.On(tt.method, tt.value).Return(tt.mockResult, tt.mockError)
			}

			query := url.Values{}
			if tt.raw != "" {
				query.Set(tt.param, tt.raw)
			}

			h := handler.ToDMM
			if tt.param == "dmm" {
				h = handler.ToDeg
			}
			w := serve(h, tt.path, query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w))
			} else {
				var body ConversionResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedBody, body)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}
