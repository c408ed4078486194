package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/types"
)

func TestPingService(t *testing.T) {
	server := httptest.NewServer(nil)
	defer server.Close()

	if err := PingService(context.Background(), server.URL, time.Second); err != nil {
		t.Errorf("Expected the test server to be reachable: %v", err)
	}
	if err := PingService(context.Background(), "not a url", time.Second); err == nil {
		t.Error("Expected an error for a URL without a host")
	}

	addr := server.URL
	server.Close()
	if err := PingService(context.Background(), addr, 200*time.Millisecond); err == nil {
		t.Error("Expected an error for a closed server")
	}
}

func TestStatusForCode(t *testing.T) {
	cases := map[types.ErrorCode]int{
		types.NotFound:              fiber.StatusNotFound,
		types.DuplicateKeyInsert:    fiber.StatusConflict,
		types.InvalidConfiguration:  fiber.StatusInternalServerError,
		types.FailedGoldTransaction: fiber.StatusPaymentRequired,
		types.Unknown:               fiber.StatusInternalServerError,
	}
	for code, want := range cases {
		if got, _ := StatusForCode(code); got != want {
			t.Errorf("%s: expected %d, got %d", code, want, got)
		}
	}
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/custom", func(c *fiber.Ctx) error {
		return &types.CustomError{Code: fiber.StatusForbidden, Message: "no", Type: "authorization.user"}
	})
	app.Get("/repo", func(c *fiber.Ctx) error {
		return types.UnknownError(errors.New("disk on fire"), "read photo")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	for path, want := range map[string]struct {
		status  int
		errType string
		message string
	}{
		"/custom": {fiber.StatusForbidden, "authorization.user", "no"},
		"/repo":   {fiber.StatusInternalServerError, "request.unknown", "Internal server error"},
		"/fiber":  {fiber.StatusTeapot, "unknown", "short and stout"},
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		if resp.StatusCode != want.status {
			t.Errorf("%s: expected status %d, got %d", path, want.status, resp.StatusCode)
		}
		var body ErrorResponseStruct
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if body.Type != want.errType || body.Message != want.message || body.Ok {
			t.Errorf("%s: unexpected body %+v", path, body)
		}
	}
}
