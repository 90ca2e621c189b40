package usecase

import (
	"fmt"
	"html"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
)

const (
	popupFallback   = "Pothole"
	popupImageWidth = 150
)

// BuildAnnotations строит маркеры по выборке. Сегменты, геометрия которых
// не является непустым LineString, пропускаются без ошибки; их количество
// возвращается вторым значением.
func BuildAnnotations(pairs []domain.SamplePair) ([]domain.Annotation, int) {
	annotations := make([]domain.Annotation, 0, len(pairs))
	skipped := 0

	for _, pair := range pairs {
		point, ok := pair.Segment.FirstLinePoint()
		if !ok {
			skipped++
			continue
		}
		annotations = append(annotations, NewAnnotation(point, pair))
	}
	return annotations, skipped
}

// NewAnnotation - маркер для одной пары сегмент/выбоина
func NewAnnotation(point domain.Point, pair domain.SamplePair) domain.Annotation {
	score := pair.Pothole.SeverityScore
	color := domain.SeverityColor(score)

	return domain.Annotation{
		Position:      point,
		Color:         color,
		FillColor:     color,
		Popup:         popupHTML(pair.Pothole),
		Tooltip:       domain.SeverityTooltip(score),
		SeverityScore: score,
		SegmentRow:    pair.Segment.Row,
		PotholeRow:    pair.Pothole.Row,
	}
}

func popupHTML(p domain.PotholeReport) string {
	if !p.HasThumbnail() {
		return popupFallback
	}
	return fmt.Sprintf("<img src='%s' width='%d'>", html.EscapeString(p.ConvertedLink), popupImageWidth)
}
