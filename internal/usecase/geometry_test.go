package usecase_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase"
)

func TestAttachGeometry(t *testing.T) {
	t.Run("drops rows without line", func(t *testing.T) {
		segments := []domain.SweepingSegment{
			{Row: 1, Line: "LINESTRING (-122.41 37.77, -122.40 37.78)"},
			{Row: 2},
			{Row: 3, Line: "POINT (-122.42 37.79)"},
		}

		attached, err := usecase.AttachGeometry(segments)
		require.NoError(t, err)
		require.Len(t, attached, 2)

		assert.Equal(t, 1, attached[0].Row)
		assert.Equal(t, orb.LineString{{-122.41, 37.77}, {-122.40, 37.78}}, attached[0].Geometry)

		assert.Equal(t, 3, attached[1].Row)
		assert.Equal(t, orb.Point{-122.42, 37.79}, attached[1].Geometry)
	})

	t.Run("malformed wkt", func(t *testing.T) {
		segments := []domain.SweepingSegment{
			{Row: 1, Line: "LINESTRING (-122.41 37.77, -122.40 37.78)"},
			{Row: 2, Line: "LINESTRING (oops"},
		}

		attached, err := usecase.AttachGeometry(segments)
		assert.Nil(t, attached)
		assert.ErrorIs(t, err, errors.ErrMalformedGeometry)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("z and m ordinates dropped", func(t *testing.T) {
		segments := []domain.SweepingSegment{
			{Row: 1, Line: "LINESTRING Z (-122.41 37.77 0, -122.40 37.78 0)"},
			{Row: 2, Line: "LINESTRING M (-122.41 37.77 5, -122.40 37.78 6)"},
			{Row: 3, Line: "linestring zm (-122.41 37.77 0 5, -122.40 37.78 0 6)"},
			{Row: 4, Line: "LINESTRING (-122.41 37.77 12.5, -122.40 37.78 13)"},
			{Row: 5, Line: "MULTILINESTRING Z ((0 0 1, 1 1 1), (2 2 2, 3 3 3))"},
			{Row: 6, Line: "POINTZ (-122.42 37.79 3)"},
		}

		attached, err := usecase.AttachGeometry(segments)
		require.NoError(t, err)
		require.Len(t, attached, 6)

		want := orb.LineString{{-122.41, 37.77}, {-122.40, 37.78}}
		for _, s := range attached[:4] {
			assert.Equal(t, want, s.Geometry, "row %d", s.Row)
		}
		assert.Equal(t, orb.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}, attached[4].Geometry)
		assert.Equal(t, orb.Point{-122.42, 37.79}, attached[5].Geometry)

		p, ok := attached[0].FirstLinePoint()
		require.True(t, ok)
		assert.Equal(t, domain.Point{Lat: 37.77, Lon: -122.41}, p)
	})

	t.Run("input not modified", func(t *testing.T) {
		segments := []domain.SweepingSegment{{Row: 1, Line: "LINESTRING (0 0, 1 1)"}}
		_, err := usecase.AttachGeometry(segments)
		require.NoError(t, err)
		assert.Nil(t, segments[0].Geometry)
	})

	t.Run("empty table", func(t *testing.T) {
		attached, err := usecase.AttachGeometry(nil)
		require.NoError(t, err)
		assert.Empty(t, attached)
	})
}
