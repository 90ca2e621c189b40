package usecase_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase"
)

func TestBuildAnnotations(t *testing.T) {
	line := orb.LineString{{-122.41, 37.77}, {-122.40, 37.78}}

	pairs := []domain.SamplePair{
		{
			Segment: domain.SweepingSegment{Row: 4, Geometry: line},
			Pothole: domain.PotholeReport{
				Row:           9,
				ConvertedLink: "https://drive.google.com/thumbnail?id=ABC",
				SeverityScore: 100,
				HasSeverity:   true,
			},
		},
		{
			Segment: domain.SweepingSegment{Row: 5, Geometry: orb.Point{-122.42, 37.79}},
			Pothole: domain.PotholeReport{Row: 1, SeverityScore: 10},
		},
		{
			Segment: domain.SweepingSegment{Row: 6, Geometry: orb.LineString{}},
			Pothole: domain.PotholeReport{Row: 1},
		},
		{
			Segment: domain.SweepingSegment{Row: 7, Geometry: orb.LineString{{-122.39, 37.76}}},
			Pothole: domain.PotholeReport{Row: 2, SeverityScore: 72.5},
		},
	}

	annotations, skipped := usecase.BuildAnnotations(pairs)
	assert.Equal(t, 2, skipped)
	require.Len(t, annotations, 2)

	first := annotations[0]
	assert.Equal(t, domain.Point{Lat: 37.77, Lon: -122.41}, first.Position)
	assert.Equal(t, "#ff0000", first.Color)
	assert.Equal(t, first.Color, first.FillColor)
	assert.Equal(t, "<img src='https://drive.google.com/thumbnail?id=ABC' width='150'>", first.Popup)
	assert.Equal(t, "Severity Score: 100", first.Tooltip)
	assert.Equal(t, 4, first.SegmentRow)
	assert.Equal(t, 9, first.PotholeRow)

	second := annotations[1]
	assert.Equal(t, domain.Point{Lat: 37.76, Lon: -122.39}, second.Position)
	assert.Equal(t, "Pothole", second.Popup)
	assert.Equal(t, "Severity Score: 72.5", second.Tooltip)
	assert.Equal(t, domain.SeverityColor(72.5), second.Color)
}

func TestBuildAnnotations_MissingSeverity(t *testing.T) {
	pairs := []domain.SamplePair{{
		Segment: domain.SweepingSegment{Geometry: orb.LineString{{1, 2}}},
		Pothole: domain.PotholeReport{},
	}}

	annotations, skipped := usecase.BuildAnnotations(pairs)
	assert.Zero(t, skipped)
	require.Len(t, annotations, 1)
	assert.Equal(t, "#00ff00", annotations[0].Color)
	assert.Equal(t, "Severity Score: 0", annotations[0].Tooltip)
}

func TestBuildAnnotations_Empty(t *testing.T) {
	annotations, skipped := usecase.BuildAnnotations(nil)
	assert.Empty(t, annotations)
	assert.Zero(t, skipped)
}
