package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

var (
	// dimensionTag - метка Z/M/ZM после имени типа: "LINESTRING Z (", "POINTM EMPTY"
	dimensionTag = regexp.MustCompile(`(?i)(POINT|LINESTRING|POLYGON|MULTIPOINT|MULTILINESTRING|MULTIPOLYGON|GEOMETRYCOLLECTION)\s*(?:ZM|Z|M)\s*(\(|EMPTY)`)
	// coordTuple - текст между скобками и запятыми
	coordTuple = regexp.MustCompile(`[^(),]+`)
)

// AttachGeometry отбрасывает сегменты без Line и разбирает WKT остальных.
// Фильтрация идёт до разбора; битый WKT валит весь прогон.
func AttachGeometry(segments []domain.SweepingSegment) ([]domain.SweepingSegment, error) {
	attached := make([]domain.SweepingSegment, 0, len(segments))
	for _, s := range segments {
		if !s.HasLine() {
			continue
		}

		geom, err := wkt.Unmarshal(flattenWKT(s.Line))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", errors.ErrMalformedGeometry, s.Row, err)
		}

		s.Geometry = geom
		attached = append(attached, s)
	}
	return attached, nil
}

// flattenWKT приводит WKT к 2D: убирает метки Z/M/ZM и ординаты после x y.
// Строки без лишних ординат возвращаются как есть.
func flattenWKT(s string) string {
	s = dimensionTag.ReplaceAllString(s, "$1 $2")
	return coordTuple.ReplaceAllStringFunc(s, func(tuple string) string {
		fields := strings.Fields(tuple)
		if len(fields) <= 2 {
			return tuple
		}
		for _, f := range fields {
			if _, err := strconv.ParseFloat(f, 64); err != nil {
				return tuple
			}
		}
		return fields[0] + " " + fields[1]
	})
}
