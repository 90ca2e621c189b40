package domain

// Annotation - маркер на карте для одного выбранного сегмента
type Annotation struct {
	Position      Point   `json:"position"`
	Color         string  `json:"color"`
	FillColor     string  `json:"fill_color"`
	Popup         string  `json:"popup"`
	Tooltip       string  `json:"tooltip"`
	SeverityScore float64 `json:"severity_score"`
	SegmentRow    int     `json:"segment_row"`
	PotholeRow    int     `json:"pothole_row"`
}

// SamplePair - выбранный сегмент и случайно выбранная для него выбоина
type SamplePair struct {
	Segment SweepingSegment
	Pothole PotholeReport
}
