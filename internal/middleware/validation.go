package middleware

import (
	"arctic-chronicler/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedMissionIDKey = "validated_mission_id"
	ValidatedYearKey      = "validated_year"
	ValidatedLayersKey    = "validated_layers"
)

// ValidationMiddleware validates path and query parameters before handlers run
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateMissionID checks the :id path parameter
func (vm *ValidationMiddleware) ValidateMissionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		missionID := c.Params("id")
		if errs := vm.validator.ValidateMissionID(missionID); len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedMissionIDKey, missionID)
		return c.Next()
	}
}

// ValidateTimelineQuery parses the :year path parameter and the layers query
func (vm *ValidationMiddleware) ValidateTimelineQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, errs := vm.validator.ParseYear(c.Params("year"))
		if len(errs) > 0 {
			return errs
		}
		layers, errs := vm.validator.ParseLayers(c.Query("layers"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedYearKey, year)
		c.Locals(ValidatedLayersKey, layers)
		return c.Next()
	}
}
