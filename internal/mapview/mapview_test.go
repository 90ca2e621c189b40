package mapview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
)

func testAnnotations() []domain.Annotation {
	return []domain.Annotation{
		{
			Position:      domain.Point{Lat: 37.77, Lon: -122.41},
			Color:         "#ff0000",
			FillColor:     "#ff0000",
			Popup:         "<img src='https://drive.google.com/thumbnail?id=abc' width='150'>",
			Tooltip:       "Severity Score: 100",
			SeverityScore: 100,
		},
		{
			Position:      domain.Point{Lat: 37.78, Lon: -122.42},
			Color:         "#00ff00",
			FillColor:     "#00ff00",
			Popup:         "Pothole",
			Tooltip:       "Severity Score: 0",
			SeverityScore: 0,
		},
	}
}

func TestNewCanvas(t *testing.T) {
	opts := DefaultMapOptions()
	canvas := NewCanvas(opts, testAnnotations())

	assert.Equal(t, opts, canvas.MapOptions)
	require.Len(t, canvas.Markers, 2)

	first := canvas.Markers[0]
	assert.Equal(t, 37.77, first.Lat)
	assert.Equal(t, -122.41, first.Lon)
	assert.Equal(t, 7, first.Radius)
	assert.Equal(t, 0.7, first.FillOpacity)
	assert.Equal(t, "#ff0000", first.Color)
	assert.Equal(t, "#ff0000", first.FillColor)
	assert.Equal(t, "Severity Score: 100", first.Tooltip)

	assert.Equal(t, "Pothole", canvas.Markers[1].Popup)
}

func TestNewCanvas_Empty(t *testing.T) {
	canvas := NewCanvas(DefaultMapOptions(), nil)
	assert.NotNil(t, canvas.Markers)
	assert.Empty(t, canvas.Markers)
}

func TestDefaultMapOptions(t *testing.T) {
	opts := DefaultMapOptions()
	assert.Equal(t, "Pothole Map in San Francisco", opts.Title)
	assert.Equal(t, 37.7749, opts.Center.Lat)
	assert.Equal(t, -122.4194, opts.Center.Lon)
	assert.Equal(t, 13, opts.Zoom)
	assert.Equal(t, 700, opts.Width)
	assert.Equal(t, 500, opts.Height)
}

func TestRender(t *testing.T) {
	canvas := NewCanvas(DefaultMapOptions(), testAnnotations())
	canvas.Footer = "seed 42"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, canvas))
	page := buf.String()

	assert.Contains(t, page, "<title>Pothole Map in San Francisco</title>")
	assert.Contains(t, page, "<h1>Pothole Map in San Francisco</h1>")
	assert.Contains(t, page, "red = high priority, green = low priority")
	assert.Contains(t, page, "width: 700px")
	assert.Contains(t, page, "height: 500px")
	assert.Contains(t, page, "leaflet.js")
	assert.Contains(t, page, "seed 42")
	assert.Contains(t, page, "#ff0000")
	assert.Contains(t, page, "#00ff00")
	assert.Contains(t, page, "Severity Score: 100")
	assert.Contains(t, page, "thumbnail?id=abc")
	// HTML из попапа не должен попасть в скрипт неэкранированным
	assert.NotContains(t, page, "<img src=")
}

func TestRender_NoMarkers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewCanvas(DefaultMapOptions(), nil)))
	page := buf.String()

	assert.Contains(t, page, "var markers = [];")
	assert.False(t, strings.Contains(page, `class="footer"`))
}
