package domain

import (
	"fmt"
	"math"
	"strconv"
)

const (
	MinSeverity = 0.0
	MaxSeverity = 100.0
)

// SeverityColor - линейная интерполяция от зелёного (0) к красному (100).
// Значения вне диапазона прижимаются к границам, NaN считается нулём,
// поэтому результат всегда валидный "#RRGGBB".
func SeverityColor(score float64) string {
	intensity := SeverityIntensity(score)
	return fmt.Sprintf("#%02x%02x00", intensity, 255-intensity)
}

// SeverityIntensity - значение красного канала для оценки
func SeverityIntensity(score float64) int {
	if math.IsNaN(score) {
		score = MinSeverity
	}
	score = math.Max(MinSeverity, math.Min(MaxSeverity, score))
	return int(math.Floor(score / MaxSeverity * 255))
}

// SeverityTooltip - текст подсказки маркера
func SeverityTooltip(score float64) string {
	return "Severity Score: " + strconv.FormatFloat(score, 'f', -1, 64)
}
