package mapview

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render пишет HTML страницу с заголовком, описанием и холстом карты
func Render(w io.Writer, canvas Canvas) error {
	if err := pageTemplate.ExecuteTemplate(w, "map.html", canvas); err != nil {
		return fmt.Errorf("render map page: %w", err)
	}
	return nil
}
