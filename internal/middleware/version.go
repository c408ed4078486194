package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// DefaultAPIVersion is assumed when a request does not name one
const DefaultAPIVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header, stores it in context and echoes it
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", DefaultAPIVersion)

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = DefaultAPIVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}

// APIVersion returns the version negotiated by VersionMiddleware
func APIVersion(c *fiber.Ctx) string {
	if v, ok := c.Locals("apiVersion").(string); ok {
		return v
	}
	return DefaultAPIVersion
}
