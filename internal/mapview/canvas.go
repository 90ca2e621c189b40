// Package mapview собирает холст карты (центр, масштаб, маркеры) и рендерит
// его в HTML страницу. Саму отрисовку тайлов и маркеров выполняет Leaflet в браузере.
package mapview

import (
	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
)

const (
	DefaultTitle       = "Pothole Map in San Francisco"
	DefaultDescription = "This map shows pothole points in San Francisco. The color indicates severity (red = high priority, green = low priority)."

	markerRadius      = 7
	markerFillOpacity = 0.7
)

// MapOptions - параметры холста, не зависящие от данных
type MapOptions struct {
	Title       string
	Description string
	Center      domain.Point
	Zoom        int
	Width       int
	Height      int
}

// DefaultMapOptions - San Francisco, zoom 13, виджет 700x500
func DefaultMapOptions() MapOptions {
	return MapOptions{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Center:      domain.Point{Lat: 37.7749, Lon: -122.4194},
		Zoom:        13,
		Width:       700,
		Height:      500,
	}
}

// CircleMarker - круговой маркер в том виде, в каком его читает шаблон
type CircleMarker struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Radius      int     `json:"radius"`
	Color       string  `json:"color"`
	FillColor   string  `json:"fill_color"`
	FillOpacity float64 `json:"fill_opacity"`
	Popup       string  `json:"popup"`
	Tooltip     string  `json:"tooltip"`
}

// Canvas - холст карты с маркерами
type Canvas struct {
	MapOptions
	Footer  string
	Markers []CircleMarker
}

// NewCanvas добавляет по одному маркеру на каждую аннотацию, порядок сохраняется
func NewCanvas(opts MapOptions, annotations []domain.Annotation) Canvas {
	markers := make([]CircleMarker, 0, len(annotations))
	for _, a := range annotations {
		markers = append(markers, CircleMarker{
			Lat:         a.Position.Lat,
			Lon:         a.Position.Lon,
			Radius:      markerRadius,
			Color:       a.Color,
			FillColor:   a.FillColor,
			FillOpacity: markerFillOpacity,
			Popup:       a.Popup,
			Tooltip:     a.Tooltip,
		})
	}

	return Canvas{
		MapOptions: opts,
		Markers:    markers,
	}
}
