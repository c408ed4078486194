// common.go
//
// Photo sharing and gold economy data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of goldphotos.
// goldphotos is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// goldphotos is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with goldphotos.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/middleware"
	"github.com/localnerve/goldphotos/internal/repository"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/localnerve/goldphotos/internal/utils"
	"github.com/sirupsen/logrus"
)

// Handler serves the photo, user and gold routes from a repository
type Handler struct {
	Repo         repository.Repository
	Validate     *validator.Validate
	NewPhotoGold int
}

// New creates a Handler. newPhotoGold is awarded to the owner of each inserted photo.
func New(repo repository.Repository, newPhotoGold int) *Handler {
	return &Handler{
		Repo:         repo,
		Validate:     validator.New(validator.WithRequiredStructEnabled()),
		NewPhotoGold: newPhotoGold,
	}
}

// parseBody decodes and validates a request body struct
func (h *Handler) parseBody(c *fiber.Ctx, out interface{}, errorType string) error {
	if err := decodeBody(c, out, errorType); err != nil {
		return err
	}
	return h.validate(out, errorType)
}

func decodeBody(c *fiber.Ctx, out interface{}, errorType string) error {
	if err := c.BodyParser(out); err != nil {
		return &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("Invalid request body: %v", err),
			Type:    errorType,
		}
	}
	return nil
}

func (h *Handler) validate(value interface{}, errorType string) error {
	err := h.Validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
		}
		err = errors.New(strings.Join(msgs, ", "))
	}
	return &types.CustomError{
		Code:    fiber.StatusBadRequest,
		Message: fmt.Sprintf("Validation failed: %v", err),
		Type:    errorType,
	}
}

// queryInt reads a non-negative integer query parameter, or def when it is absent
func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("Query parameter '%s' must be a non-negative integer, got '%s'", name, raw),
			Type:    "query." + name,
		}
	}
	return n, nil
}

// caller resolves the authenticated caller to a registered user
func (h *Handler) caller(c *fiber.Ctx) (contracts.UserContract, error) {
	ref := middleware.RegistrationReference(c)
	if ref == "" {
		return contracts.UserContract{}, &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "No authenticated user",
			Type:    "authorization.user",
		}
	}

	user, err := h.Repo.GetUser(c.UserContext(), "", ref)
	if err != nil {
		return contracts.UserContract{}, err
	}
	if user.IsEmpty() {
		return contracts.UserContract{}, types.NotFoundError("user with registration %s", ref)
	}
	return user, nil
}

// failed sends the error response for a handler failure
func failed(c *fiber.Ctx, err error, operation string) error {
	var custom *types.CustomError
	if errors.As(err, &custom) {
		logrus.WithFields(logrus.Fields{
			"operation":  operation,
			"type":       custom.Type,
			"apiVersion": middleware.APIVersion(c),
		}).Debug("request rejected")
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}
	return utils.RepositoryErrorResponse(c, err, operation)
}
