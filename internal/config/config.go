package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/mapview"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/utils"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/validator"
)

type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Sample  SampleConfig
	Map     MapConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Log     LogConfig
	Export  ExportConfig
}

type ServerConfig struct {
	Host string
	Port int `validate:"min=1,max=65535"`
	Env  string
}

type DatasetConfig struct {
	SegmentsPath string `validate:"required"`
	PotholesPath string `validate:"required"`
}

type SampleConfig struct {
	Seed int64 `validate:"min=0"`
	Size int   `validate:"min=1,max=10000"`
}

type MapConfig struct {
	Title       string `validate:"required"`
	Description string
	CenterLat   float64
	CenterLon   float64
	Zoom        int `validate:"min=0,max=22"`
	Width       int `validate:"min=1"`
	Height      int `validate:"min=1"`
}

type RedisConfig struct {
	Enabled  bool
	Host     string `validate:"required_if=Enabled true"`
	Port     int    `validate:"min=1,max=65535"`
	Password string
	DB       int `validate:"min=0"`
}

type CacheConfig struct {
	AnnotationsCacheTTL time.Duration
	// WarmupInterval - 0 выключает прогрев кеша
	WarmupInterval time.Duration `validate:"min=0"`
}

type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

type ExportConfig struct {
	Path string `validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SAMPLE_SEED", 42)
	v.SetDefault("SAMPLE_SIZE", 60)
	v.SetDefault("MAP_CENTER_LAT", 37.7749)
	v.SetDefault("MAP_CENTER_LON", -122.4194)
	v.SetDefault("MAP_ZOOM", 13)
	v.SetDefault("MAP_TITLE", "Pothole Map in San Francisco")
	v.SetDefault("MAP_DESCRIPTION", "This map shows pothole points in San Francisco. The color indicates severity (red = high priority, green = low priority).")
	v.SetDefault("MAP_WIDTH", 700)
	v.SetDefault("MAP_HEIGHT", 500)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("ANNOTATIONS_CACHE_TTL", 3600)
	v.SetDefault("CACHE_WARMUP_INTERVAL", 1800)
	v.SetDefault("EXPORT_PATH", "pothole_map.html")
}

// Load читает .env (если он есть) и переменные окружения. Переменные окружения
// имеют приоритет над файлом.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - как Load, но с явным путём к env файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Dataset: DatasetConfig{
			SegmentsPath: v.GetString("SEGMENTS_CSV_PATH"),
			PotholesPath: v.GetString("POTHOLES_CSV_PATH"),
		},
		Sample: SampleConfig{
			Seed: v.GetInt64("SAMPLE_SEED"),
			Size: v.GetInt("SAMPLE_SIZE"),
		},
		Map: MapConfig{
			Title:       v.GetString("MAP_TITLE"),
			Description: v.GetString("MAP_DESCRIPTION"),
			CenterLat:   v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:   v.GetFloat64("MAP_CENTER_LON"),
			Zoom:        v.GetInt("MAP_ZOOM"),
			Width:       v.GetInt("MAP_WIDTH"),
			Height:      v.GetInt("MAP_HEIGHT"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			AnnotationsCacheTTL: time.Duration(v.GetInt("ANNOTATIONS_CACHE_TTL")) * time.Second,
			WarmupInterval:      time.Duration(v.GetInt("CACHE_WARMUP_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Export: ExportConfig{
			Path: v.GetString("EXPORT_PATH"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения после загрузки
func (c *Config) Validate() error {
	for _, section := range []interface{}{c.Server, c.Dataset, c.Sample, c.Map, c.Redis, c.Cache, c.Log, c.Export} {
		if err := validator.Validate(section); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if !utils.ValidateCoordinates(c.Map.CenterLat, c.Map.CenterLon) {
		return fmt.Errorf("invalid config: map center %f,%f out of range", c.Map.CenterLat, c.Map.CenterLon)
	}
	return nil
}

// viper отдаёт разные типы ошибок в зависимости от того, как задан файл
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// MapCenter - центр карты как доменная точка
func (c *Config) MapCenter() domain.Point {
	return domain.Point{Lat: c.Map.CenterLat, Lon: c.Map.CenterLon}
}

// MapOptions - параметры холста карты
func (c *Config) MapOptions() mapview.MapOptions {
	return mapview.MapOptions{
		Title:       c.Map.Title,
		Description: c.Map.Description,
		Center:      c.MapCenter(),
		Zoom:        c.Map.Zoom,
		Width:       c.Map.Width,
		Height:      c.Map.Height,
	}
}
