package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

func TestConvertDriveLink(t *testing.T) {
	t.Run("share link", func(t *testing.T) {
		got, err := ConvertDriveLink("https://drive.google.com/file/d/ABC123/view?usp=sharing")
		require.NoError(t, err)
		assert.Equal(t, "https://drive.google.com/thumbnail?id=ABC123", got)
	})

	t.Run("any host", func(t *testing.T) {
		got, err := ConvertDriveLink("https://host/d/ABC123/view?x=1")
		require.NoError(t, err)
		assert.Equal(t, "https://drive.google.com/thumbnail?id=ABC123", got)
	})

	t.Run("id with dashes and underscores", func(t *testing.T) {
		got, err := ConvertDriveLink("https://drive.google.com/file/d/1a-B_c9/view")
		require.NoError(t, err)
		assert.Equal(t, "https://drive.google.com/thumbnail?id=1a-B_c9", got)
	})

	malformed := []string{
		"https://drive.google.com/open?id=ABC123",
		"https://drive.google.com/file/d/ABC123",
		"https://drive.google.com/file/d//view",
		"not a link",
	}
	for _, link := range malformed {
		t.Run("malformed "+link, func(t *testing.T) {
			got, err := ConvertDriveLink(link)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, errors.ErrMalformedLink)
		})
	}
}
