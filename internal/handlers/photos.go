// photos.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/middleware"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/localnerve/goldphotos/internal/utils"
)

const (
	// DefaultHeroCount is the number of hero photos when count is absent
	DefaultHeroCount = 10
	// DefaultHeroDaysOld is the hero photo window in days when daysOld is absent
	DefaultHeroDaysOld = 7
)

// StatusRequest is the body of a photo status change
type StatusRequest struct {
	Status contracts.PhotoStatus `json:"status" validate:"required,oneof=Active UnderReview ObjectionableContent DeletedByOwner"`
}

// GetPhoto handles GET /api/photos/:id
// @Summary Get a photo
// @Description Get a photo with its annotations
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} contracts.PhotoContract
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos/{id} [get]
func (h *Handler) GetPhoto(c *fiber.Ctx) error {
	photo, err := h.Repo.GetPhoto(c.UserContext(), c.Params("id"))
	if err != nil {
		return failed(c, err, "getPhoto")
	}
	return utils.SuccessResponse(c, photo, fiber.StatusOK)
}

// GetHeroPhotos handles GET /api/photos/hero
// @Summary Hero photos
// @Description Get the recent photos with the most gold
// @Tags Photos
// @Produce json
// @Param count query int false "Number of photos" default(10)
// @Param daysOld query int false "Window in days" default(7)
// @Success 200 {array} contracts.PhotoContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos/hero [get]
func (h *Handler) GetHeroPhotos(c *fiber.Ctx) error {
	count, err := queryInt(c, "count", DefaultHeroCount)
	if err != nil {
		return failed(c, err, "getHeroPhotos")
	}
	daysOld, err := queryInt(c, "daysOld", DefaultHeroDaysOld)
	if err != nil {
		return failed(c, err, "getHeroPhotos")
	}

	photos, err := h.Repo.GetHeroPhotos(c.UserContext(), count, daysOld)
	if err != nil {
		return failed(c, err, "getHeroPhotos")
	}
	return utils.SuccessResponse(c, photos, fiber.StatusOK)
}

// GetAnnotations handles GET /api/photos/:id/annotations
// @Summary Photo annotations
// @Description Get the annotations of a photo
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {array} contracts.AnnotationContract
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /photos/{id}/annotations [get]
func (h *Handler) GetAnnotations(c *fiber.Ctx) error {
	annotations, err := h.Repo.GetAnnotations(c.UserContext(), c.Params("id"))
	if err != nil {
		return failed(c, err, "getAnnotations")
	}
	return utils.SuccessResponse(c, annotations, fiber.StatusOK)
}

// InsertPhoto handles POST /api/photos
// @Summary Upload a photo
// @Description Insert a photo owned by the caller. The owner is awarded the configured new photo gold.
// @Tags Photos
// @Accept json
// @Produce json
// @Param photo body contracts.PhotoContract true "Photo"
// @Success 201 {object} contracts.PhotoContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 402 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /photos [post]
func (h *Handler) InsertPhoto(c *fiber.Ctx) error {
	var photo contracts.PhotoContract
	if err := h.parseBody(c, &photo, "insertPhoto.body"); err != nil {
		return failed(c, err, "insertPhoto")
	}

	owner, err := h.caller(c)
	if err != nil {
		return failed(c, err, "insertPhoto")
	}
	photo.User = owner

	inserted, err := h.Repo.InsertPhoto(c.UserContext(), photo, h.NewPhotoGold)
	if err != nil {
		return failed(c, err, "insertPhoto")
	}
	return utils.SuccessResponse(c, inserted, fiber.StatusCreated)
}

// UpdatePhoto handles PUT /api/photos/:id
// @Summary Update a photo
// @Description Change the category and description of a photo owned by the caller
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param photo body contracts.PhotoContract true "Photo"
// @Success 200 {object} contracts.PhotoContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /photos/{id} [put]
func (h *Handler) UpdatePhoto(c *fiber.Ctx) error {
	var photo contracts.PhotoContract
	if err := h.parseBody(c, &photo, "updatePhoto.body"); err != nil {
		return failed(c, err, "updatePhoto")
	}
	photo.ID = c.Params("id")

	owner, err := h.caller(c)
	if err != nil {
		return failed(c, err, "updatePhoto")
	}
	stored, err := h.Repo.GetPhoto(c.UserContext(), photo.ID)
	if err != nil {
		return failed(c, err, "updatePhoto")
	}
	if stored.User.UserID != owner.UserID {
		return failed(c, &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Only the owner may update a photo",
			Type:    "updatePhoto.owner",
		}, "updatePhoto")
	}

	updated, err := h.Repo.UpdatePhoto(c.UserContext(), photo)
	if err != nil {
		return failed(c, err, "updatePhoto")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// UpdatePhotoStatus handles PUT /api/photos/:id/status
// @Summary Moderate a photo
// @Description Change the status of a photo
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param status body StatusRequest true "New status"
// @Success 200 {object} contracts.PhotoContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /photos/{id}/status [put]
func (h *Handler) UpdatePhotoStatus(c *fiber.Ctx) error {
	var body StatusRequest
	if err := h.parseBody(c, &body, "updatePhotoStatus.body"); err != nil {
		return failed(c, err, "updatePhotoStatus")
	}

	updated, err := h.Repo.UpdatePhotoStatus(c.UserContext(), contracts.PhotoContract{
		ID:     c.Params("id"),
		Status: body.Status,
	})
	if err != nil {
		return failed(c, err, "updatePhotoStatus")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// DeletePhoto handles DELETE /api/photos/:id
// @Summary Delete a photo
// @Description Delete a photo owned by the caller. A profile photo cannot be deleted.
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /photos/{id} [delete]
func (h *Handler) DeletePhoto(c *fiber.Ctx) error {
	if err := h.Repo.DeletePhoto(c.UserContext(), c.Params("id"), middleware.RegistrationReference(c)); err != nil {
		return failed(c, err, "deletePhoto")
	}
	return utils.DeletedResponse(c)
}
