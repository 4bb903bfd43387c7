package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/davyken/Job-Fusion/internal/apperrors"
)

const (
	localUserID   = "userID"
	localUserRole = "userRole"

	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

// Identity reads the user identity forwarded by the auth proxy. The core
// stays role-agnostic; individual handlers decide what they require.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localUserID, c.Get("X-User-Id"))
		c.Locals(localUserRole, c.Get("X-User-Role"))
		return c.Next()
	}
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

func userRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localUserRole).(string)
	return role
}

// statusFromError maps the error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	var remote *apperrors.RemoteServiceError

	switch {
	case errors.Is(err, apperrors.ErrUnsupportedFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrExtractionFailed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &remote), errors.Is(err, apperrors.ErrMalformedModelOutput):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
