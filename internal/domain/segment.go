package domain

import "github.com/paulmach/orb"

// LineColumn - колонка таблицы маршрутов с WKT геометрией
const LineColumn = "Line"

// SweepingSegment - одна запись маршрута уборки улиц
type SweepingSegment struct {
	// Row - номер строки данных в исходном файле (с 1, без заголовка)
	Row    int               `json:"row"`
	Fields map[string]string `json:"fields"`
	Line   string            `json:"line"`

	// Geometry - nil, пока AttachGeometry не отработал
	Geometry orb.Geometry `json:"-"`
}

// HasLine - есть ли у сегмента исходное значение Line
func (s SweepingSegment) HasLine() bool {
	return s.Line != ""
}

// FirstLinePoint возвращает первую точку линии. ok=false для любой геометрии,
// которая не является непустым LineString.
func (s SweepingSegment) FirstLinePoint() (Point, bool) {
	ls, isLine := s.Geometry.(orb.LineString)
	if !isLine || len(ls) == 0 {
		return Point{}, false
	}
	first := ls[0]
	return Point{Lat: first.Lat(), Lon: first.Lon()}, true
}
