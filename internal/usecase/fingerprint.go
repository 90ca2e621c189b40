package usecase

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/alexanderquispe/pothole-dashboard/internal/domain"
)

// DatasetFingerprint - хеш всего, что влияет на маркеры: Line сегментов,
// ссылки и оценки выбоин в порядке строк. Одинаковые таблицы дают одинаковый отпечаток.
func DatasetFingerprint(segments []domain.SweepingSegment, potholes []domain.PotholeReport) string {
	d := xxhash.New()

	writeField := func(s string) {
		_, _ = d.WriteString(strconv.Itoa(len(s)))
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(s)
	}

	writeField("segments")
	writeField(strconv.Itoa(len(segments)))
	for _, s := range segments {
		writeField(s.Line)
	}

	writeField("potholes")
	writeField(strconv.Itoa(len(potholes)))
	for _, p := range potholes {
		writeField(p.LinkPhoto)
		writeField(strconv.FormatFloat(p.SeverityScore, 'g', -1, 64))
		writeField(strconv.FormatBool(p.HasSeverity))
	}

	return strconv.FormatUint(d.Sum64(), 16)
}
