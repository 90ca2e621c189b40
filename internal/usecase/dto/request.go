package dto

// AnnotationsRequest - параметры прогона. Незаданные поля берутся из конфигурации.
type AnnotationsRequest struct {
	Seed int64 `query:"seed" json:"seed" validate:"min=0"`
	Size int   `query:"size" json:"size" validate:"min=1,max=10000"`
}
