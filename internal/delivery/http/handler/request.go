package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/validator"
	"github.com/alexanderquispe/pothole-dashboard/internal/usecase/dto"
)

// parseAnnotationsRequest читает seed/size из query поверх значений по умолчанию
func parseAnnotationsRequest(c *fiber.Ctx, defaults dto.AnnotationsRequest) (dto.AnnotationsRequest, error) {
	req := defaults
	if err := c.QueryParser(&req); err != nil {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"query": err.Error(),
		})
	}

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}
