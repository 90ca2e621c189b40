package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SEGMENTS_CSV_PATH", "data/segments.csv")
	t.Setenv("POTHOLES_CSV_PATH", "data/potholes.csv")
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadFile_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, int64(42), cfg.Sample.Seed)
	assert.Equal(t, 60, cfg.Sample.Size)
	assert.Equal(t, 37.7749, cfg.Map.CenterLat)
	assert.Equal(t, -122.4194, cfg.Map.CenterLon)
	assert.Equal(t, 13, cfg.Map.Zoom)
	assert.Equal(t, 700, cfg.Map.Width)
	assert.Equal(t, 500, cfg.Map.Height)
	assert.Equal(t, "Pothole Map in San Francisco", cfg.Map.Title)
	assert.Contains(t, cfg.Map.Description, "red = high priority")
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, time.Hour, cfg.Cache.AnnotationsCacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.Cache.WarmupInterval)
	assert.Equal(t, "pothole_map.html", cfg.Export.Path)
	assert.Equal(t, "data/segments.csv", cfg.Dataset.SegmentsPath)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, 37.7749, cfg.MapCenter().Lat)
}

func TestLoadFile_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SEGMENTS_CSV_PATH=segments.csv\n" +
		"POTHOLES_CSV_PATH=potholes.csv\n" +
		"SAMPLE_SEED=7\n" +
		"SAMPLE_SIZE=10\n" +
		"REDIS_ENABLED=true\n" +
		"REDIS_HOST=cache\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "segments.csv", cfg.Dataset.SegmentsPath)
	assert.Equal(t, int64(7), cfg.Sample.Seed)
	assert.Equal(t, 10, cfg.Sample.Size)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SEGMENTS_CSV_PATH=segments.csv\nPOTHOLES_CSV_PATH=potholes.csv\nSAMPLE_SIZE=10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SAMPLE_SIZE", "25")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Sample.Size)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing segments path", env: map[string]string{"POTHOLES_CSV_PATH": "p.csv"}},
		{name: "zero sample size", env: map[string]string{"SAMPLE_SIZE": "0"}},
		{name: "negative seed", env: map[string]string{"SAMPLE_SEED": "-1"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "center out of range", env: map[string]string{"MAP_CENTER_LAT": "120"}},
		{name: "redis without host", env: map[string]string{"REDIS_ENABLED": "true"}},
		{name: "negative warmup interval", env: map[string]string{"CACHE_WARMUP_INTERVAL": "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.env["POTHOLES_CSV_PATH"]; !ok {
				setRequiredEnv(t)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFile(missingEnvFile(t))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_MapOptions(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAP_ZOOM", "11")
	t.Setenv("MAP_TITLE", "Potholes")

	cfg, err := LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	opts := cfg.MapOptions()
	assert.Equal(t, "Potholes", opts.Title)
	assert.Equal(t, 11, opts.Zoom)
	assert.Equal(t, 37.7749, opts.Center.Lat)
	assert.Equal(t, -122.4194, opts.Center.Lon)
	assert.Equal(t, 700, opts.Width)
}
