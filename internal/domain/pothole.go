package domain

const (
	LinkPhotoColumn     = "link_photo"
	SeverityScoreColumn = "severity_score"
)

// PotholeReport - одна запись о выбоине
type PotholeReport struct {
	Row    int               `json:"row"`
	Fields map[string]string `json:"fields,omitempty"`

	LinkPhoto     string `json:"link_photo,omitempty"`
	ConvertedLink string `json:"converted_link,omitempty"`

	// SeverityScore равен 0, если значение в таблице отсутствует
	SeverityScore float64 `json:"severity_score"`
	HasSeverity   bool    `json:"has_severity"`
}

// HasThumbnail - есть ли у записи ссылка на превью фотографии
func (p PotholeReport) HasThumbnail() bool {
	return p.ConvertedLink != ""
}
