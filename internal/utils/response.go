package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/sirupsen/logrus"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// StatusForCode maps a repository error code to an HTTP status and error type
func StatusForCode(code types.ErrorCode) (int, string) {
	switch code {
	case types.NotFound:
		return fiber.StatusNotFound, "notFound"
	case types.DuplicateKeyInsert:
		return fiber.StatusConflict, "duplicateKey"
	case types.InvalidConfiguration:
		return fiber.StatusInternalServerError, "configuration"
	case types.FailedGoldTransaction:
		return fiber.StatusPaymentRequired, "goldTransaction"
	}
	return fiber.StatusInternalServerError, "unknown"
}

// RepositoryErrorResponse sends the response for a repository failure.
// Unknown failures get a generic message; the cause is only logged.
func RepositoryErrorResponse(c *fiber.Ctx, err error, operation string) error {
	code := types.CodeOf(err)
	status, errorType := StatusForCode(code)

	entry := logrus.WithFields(logrus.Fields{
		"operation": operation,
		"code":      code,
		"url":       c.OriginalURL(),
	}).WithError(err)
	if status >= fiber.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	message := err.Error()
	if code == types.Unknown {
		message = "Internal server error"
	}
	return ErrorResponse(c, message, status, operation+"."+errorType)
}

// DeletedResponse sends a success response for deletions
func DeletedResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Success",
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// SuccessResponseStruct defines the schema for deletion success responses
type SuccessResponseStruct struct {
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}
