package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/middleware"
	"github.com/localnerve/goldphotos/internal/utils"
)

// InsertAnnotation handles POST /api/annotations
// @Summary Annotate a photo
// @Description Leave an annotation on a photo, optionally giving gold to its owner. The caller is the author.
// @Tags Annotations
// @Accept json
// @Produce json
// @Param annotation body contracts.AnnotationContract true "Annotation"
// @Success 201 {object} contracts.AnnotationContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 402 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /annotations [post]
func (h *Handler) InsertAnnotation(c *fiber.Ctx) error {
	var annotation contracts.AnnotationContract
	if err := h.parseBody(c, &annotation, "insertAnnotation.body"); err != nil {
		return failed(c, err, "insertAnnotation")
	}

	author, err := h.caller(c)
	if err != nil {
		return failed(c, err, "insertAnnotation")
	}
	annotation.From = author
	annotation.Report = nil

	inserted, err := h.Repo.InsertAnnotation(c.UserContext(), annotation)
	if err != nil {
		return failed(c, err, "insertAnnotation")
	}
	return utils.SuccessResponse(c, inserted, fiber.StatusCreated)
}

// DeleteAnnotation handles DELETE /api/annotations/:id
// @Summary Delete an annotation
// @Description Remove an annotation from its photo. Gold already given is not returned.
// @Tags Annotations
// @Produce json
// @Param id path string true "Annotation ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /annotations/{id} [delete]
func (h *Handler) DeleteAnnotation(c *fiber.Ctx) error {
	if err := h.Repo.DeleteAnnotation(c.UserContext(), c.Params("id"), middleware.RegistrationReference(c)); err != nil {
		return failed(c, err, "deleteAnnotation")
	}
	return utils.DeletedResponse(c)
}

// InsertReport handles POST /api/reports
// @Summary Report content
// @Description Report a photo or an annotation. A new report replaces the previous one.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body contracts.ReportContract true "Report"
// @Success 201 {object} contracts.ReportContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /reports [post]
func (h *Handler) InsertReport(c *fiber.Ctx) error {
	var report contracts.ReportContract
	if err := h.parseBody(c, &report, "insertReport.body"); err != nil {
		return failed(c, err, "insertReport")
	}

	inserted, err := h.Repo.InsertReport(c.UserContext(), report, middleware.RegistrationReference(c))
	if err != nil {
		return failed(c, err, "insertReport")
	}
	return utils.SuccessResponse(c, inserted, fiber.StatusCreated)
}
