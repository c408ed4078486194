package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/services"
	"github.com/localnerve/goldphotos/internal/types"
)

// SessionCookie is the authorizer session cookie name
const SessionCookie = "cookie_session"

const localRegistrationReference = "registrationReference"

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(validator services.SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, validator, []string{"admin"}, "authorization.admin")
	}
}

// AuthUser validates that the request has user role authorization
func AuthUser(validator services.SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, validator, []string{"user"}, "authorization.user")
	}
}

// OptionalUser records the caller when a valid user session is present and
// lets anonymous requests through
func OptionalUser(validator services.SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cookie := c.Cookies(SessionCookie); cookie != "" {
			if session, err := validator.ValidateSession(cookie, []string{"user"}); err == nil {
				c.Locals(localRegistrationReference, session.UserID)
			}
		}
		return c.Next()
	}
}

// RegistrationReference returns the authenticated caller's registration reference,
// or "" on routes without authorization
func RegistrationReference(c *fiber.Ctx) string {
	ref, _ := c.Locals(localRegistrationReference).(string)
	return ref
}

func authorize(c *fiber.Ctx, validator services.SessionValidator, roles []string, errorType string) error {
	cookie := c.Cookies(SessionCookie)
	if cookie == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Authorizer cookie %q not found", SessionCookie),
			Type:    errorType,
		}
	}

	session, err := validator.ValidateSession(cookie, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	c.Locals(localRegistrationReference, session.UserID)

	return c.Next()
}
