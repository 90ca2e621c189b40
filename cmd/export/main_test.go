package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/mapview"
)

func TestWriteMap(t *testing.T) {
	canvas := mapview.NewCanvas(mapview.DefaultMapOptions(), []domain.Annotation{
		{Position: domain.Point{Lat: 37.77, Lon: -122.41}, Color: "#ff0000", FillColor: "#ff0000", Tooltip: "Severity Score: 100"},
	})

	t.Run("writes html", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "map.html")
		require.NoError(t, writeMap(path, canvas))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Severity Score: 100")
		assert.Contains(t, string(data), "leaflet")
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "map.html")
		err := writeMap(path, canvas)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create")
	})
}
