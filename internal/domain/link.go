package domain

import (
	"fmt"
	"strings"

	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

const thumbnailBaseURL = "https://drive.google.com/thumbnail?id="

// ConvertDriveLink превращает ссылку вида .../d/<ID>/view... в прямую ссылку на превью.
// Ссылка без разделителей /d/ и /view считается повреждённой.
func ConvertDriveLink(link string) (string, error) {
	_, rest, found := strings.Cut(link, "/d/")
	if !found {
		return "", fmt.Errorf("%w: missing /d/ in %q", errors.ErrMalformedLink, link)
	}

	fileID, _, found := strings.Cut(rest, "/view")
	if !found {
		return "", fmt.Errorf("%w: missing /view in %q", errors.ErrMalformedLink, link)
	}
	if fileID == "" {
		return "", fmt.Errorf("%w: empty file id in %q", errors.ErrMalformedLink, link)
	}

	return thumbnailBaseURL + fileID, nil
}
