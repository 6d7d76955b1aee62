package kernel_test

import (
	"testing"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(37.4979, 127.0276)

		require.NoError(t, err)
		assert.InDelta(t, 37.4979, point.Lat(), 0)
		assert.InDelta(t, 127.0276, point.Lng(), 0)
		require.NoError(t, point.Validate())
	})

	t.Run("boundary_coordinates_are_valid", func(t *testing.T) {
		tests := []struct {
			name     string
			lat, lng float64
		}{
			{"min_lat_min_lng", -90, -180},
			{"max_lat_max_lng", 90, 180},
			{"zero_zero", 0, 0},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.NoError(t, err)
			})
		}
	})

	t.Run("out_of_range_coordinates_are_rejected", func(t *testing.T) {
		tests := []struct {
			name     string
			lat, lng float64
		}{
			{"lat_above_max", 90.0001, 0},
			{"lat_below_min", -90.0001, 0},
			{"lng_above_max", 0, 180.0001},
			{"lng_below_min", 0, -180.0001},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(10, 20)
	b, _ := kernel.NewGeoPoint(10, 20)
	c, _ := kernel.NewGeoPoint(10, 21)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var point kernel.GeoPoint

	err := point.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
