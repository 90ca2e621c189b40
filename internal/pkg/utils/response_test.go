package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", errors.ErrInvalidRequest, fiber.StatusBadRequest, "INVALID_REQUEST"},
		{"wrapped app error", fmt.Errorf("sample: %w", errors.ErrInsufficientData), fiber.StatusUnprocessableEntity, "INSUFFICIENT_DATA"},
		{"unknown error", stderrors.New("boom"), fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return SendError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out ErrorResponse
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.wantCode, out.Error.Code)
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(37.7749, -122.4194))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))
}
