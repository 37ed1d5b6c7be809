package handlers

import (
	"errors"

	"github.com/hamzaiqbal08/committee_fund/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var validate = validator.New()

// currentCaller rebuilds the engine's caller identity from the JWT claims the
// Protected middleware verified.
func currentCaller(c *fiber.Ctx) services.Caller {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	callerID, _ := uuid.Parse(claims["user_id"].(string))
	isOrganizer, _ := claims["is_organizer"].(bool)

	return services.Caller{ID: callerID, IsOrganizer: isOrganizer}
}

// serviceError maps the engine's error taxonomy onto HTTP statuses in one
// place, so handlers never hand-pick codes.
func serviceError(c *fiber.Ctx, err error) error {
	var (
		validationErr  *services.ValidationError
		permissionErr  *services.PermissionError
		notFoundErr    *services.NotFoundError
		conflictErr    *services.ConflictError
		eligibilityErr *services.EligibilityError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	case errors.As(err, &permissionErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": permissionErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflictErr.Error()})
	case errors.As(err, &eligibilityErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": eligibilityErr.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}
