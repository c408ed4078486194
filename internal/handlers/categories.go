package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/types"
	"github.com/localnerve/goldphotos/internal/utils"
)

// DefaultPreviewThumbnails is the preview size when numberOfThumbnails is absent
const DefaultPreviewThumbnails = 3

// GetCategories handles GET /api/categories
// @Summary List categories
// @Description Get all categories sorted by name
// @Tags Categories
// @Produce json
// @Success 200 {array} contracts.CategoryContract
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories [get]
func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Repo.GetCategories(c.UserContext())
	if err != nil {
		return failed(c, err, "getCategories")
	}
	return utils.SuccessResponse(c, categories, fiber.StatusOK)
}

// CreateCategories handles POST /api/categories
// @Summary Create categories
// @Description Create one category, or several from an array. Names are trimmed and must be unique regardless of case.
// @Tags Categories
// @Accept json
// @Produce json
// @Param categories body []contracts.CategoryContract true "Category or array of categories"
// @Success 201 {array} contracts.CategoryContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /categories [post]
func (h *Handler) CreateCategories(c *fiber.Ctx) error {
	var body types.FlexList[contracts.CategoryContract]
	if err := decodeBody(c, &body, "createCategories.body"); err != nil {
		return failed(c, err, "createCategories")
	}
	if len(body) == 0 {
		return utils.ErrorResponse(c, "At least one category is required", fiber.StatusBadRequest, "createCategories.body")
	}

	created := make([]contracts.CategoryContract, 0, len(body))
	for _, category := range body.Slice() {
		category.Name = contracts.NormalizeCategoryName(category.Name)
		if err := h.validate(category, "createCategories.body"); err != nil {
			return failed(c, err, "createCategories")
		}
		result, err := h.Repo.CreateCategory(c.UserContext(), category.Name)
		if err != nil {
			return failed(c, err, "createCategories")
		}
		created = append(created, result)
	}
	return utils.SuccessResponse(c, created, fiber.StatusCreated)
}

// GetCategoriesPreview handles GET /api/categories/preview
// @Summary Preview categories
// @Description Get each category with its most recent active photo thumbnails
// @Tags Categories
// @Produce json
// @Param numberOfThumbnails query int false "Thumbnails per category" default(3)
// @Success 200 {array} contracts.CategoryPreviewContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/preview [get]
func (h *Handler) GetCategoriesPreview(c *fiber.Ctx) error {
	n, err := queryInt(c, "numberOfThumbnails", DefaultPreviewThumbnails)
	if err != nil {
		return failed(c, err, "getCategoriesPreview")
	}
	previews, err := h.Repo.GetCategoriesPreview(c.UserContext(), n)
	if err != nil {
		return failed(c, err, "getCategoriesPreview")
	}
	return utils.SuccessResponse(c, previews, fiber.StatusOK)
}

// GetCategoryPhotoStream handles GET /api/categories/:id/photos
// @Summary Category photo stream
// @Description Get one page of the active photos of a category, newest first
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Param continuationToken query string false "Token from the previous page"
// @Success 200 {object} contracts.PagedResponse[contracts.PhotoContract]
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /categories/{id}/photos [get]
func (h *Handler) GetCategoryPhotoStream(c *fiber.Ctx) error {
	page, err := h.Repo.GetCategoryPhotoStream(c.UserContext(), c.Params("id"), c.Query("continuationToken"))
	if err != nil {
		return failed(c, err, "getCategoryPhotoStream")
	}
	return utils.SuccessResponse(c, page, fiber.StatusOK)
}
