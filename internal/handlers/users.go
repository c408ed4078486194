package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/contracts"
	"github.com/localnerve/goldphotos/internal/middleware"
	"github.com/localnerve/goldphotos/internal/utils"
)

// GetMe handles GET /api/users/me
// @Summary Current user
// @Description Get the caller's user, registering it with welcome gold on first sight
// @Tags Users
// @Produce json
// @Success 200 {object} contracts.UserContract
// @Success 201 {object} contracts.UserContract
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /users/me [get]
func (h *Handler) GetMe(c *fiber.Ctx) error {
	ref := middleware.RegistrationReference(c)

	user, err := h.Repo.GetUser(c.UserContext(), "", ref)
	if err != nil {
		return failed(c, err, "getMe")
	}
	if !user.IsEmpty() {
		return utils.SuccessResponse(c, user, fiber.StatusOK)
	}

	user, err = h.Repo.CreateUser(c.UserContext(), ref)
	if err != nil {
		return failed(c, err, "getMe")
	}
	return utils.SuccessResponse(c, user, fiber.StatusCreated)
}

// UpdateMe handles PUT /api/users/me
// @Summary Update the current user
// @Description Change the caller's profile photo. The first profile photo is rewarded with gold.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body contracts.UserContract true "User"
// @Success 200 {object} contracts.UserContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /users/me [put]
func (h *Handler) UpdateMe(c *fiber.Ctx) error {
	var body contracts.UserContract
	if err := decodeBody(c, &body, "updateMe.body"); err != nil {
		return failed(c, err, "updateMe")
	}

	user, err := h.caller(c)
	if err != nil {
		return failed(c, err, "updateMe")
	}
	user.ProfilePhotoID = body.ProfilePhotoID
	user.ProfilePhotoURL = body.ProfilePhotoURL

	updated, err := h.Repo.UpdateUser(c.UserContext(), user)
	if err != nil {
		return failed(c, err, "updateMe")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusOK)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Description Get a user by id
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} contracts.UserContract
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.Repo.GetUser(c.UserContext(), id, "")
	if err != nil {
		return failed(c, err, "getUser")
	}
	if user.IsEmpty() {
		return utils.NotFoundResponse(c, "User '"+id+"' not found")
	}
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// GetUserPhotoStream handles GET /api/users/:id/photos
// @Summary User photo stream
// @Description Get one page of a user's photos, newest first. Owners also see their non-active photos.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Param continuationToken query string false "Token from the previous page"
// @Success 200 {object} contracts.PagedResponse[contracts.PhotoContract]
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id}/photos [get]
func (h *Handler) GetUserPhotoStream(c *fiber.Ctx) error {
	id := c.Params("id")

	includeNonActive := false
	if ref := middleware.RegistrationReference(c); ref != "" {
		owner, err := h.Repo.GetUser(c.UserContext(), id, "")
		if err != nil {
			return failed(c, err, "getUserPhotoStream")
		}
		includeNonActive = !owner.IsEmpty() && owner.RegistrationReference == ref
	}

	page, err := h.Repo.GetUserPhotoStream(c.UserContext(), id, c.Query("continuationToken"), includeNonActive)
	if err != nil {
		return failed(c, err, "getUserPhotoStream")
	}
	return utils.SuccessResponse(c, page, fiber.StatusOK)
}

// GetMyTransactions handles GET /api/users/me/transactions
// @Summary Gold ledger
// @Description Get one page of the gold the caller received, newest first
// @Tags Users
// @Produce json
// @Param continuationToken query string false "Token from the previous page"
// @Success 200 {object} contracts.PagedResponse[contracts.GoldTransactionContract]
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /users/me/transactions [get]
func (h *Handler) GetMyTransactions(c *fiber.Ctx) error {
	user, err := h.caller(c)
	if err != nil {
		return failed(c, err, "getMyTransactions")
	}

	page, err := h.Repo.GetGoldTransactions(c.UserContext(), user.UserID, c.Query("continuationToken"))
	if err != nil {
		return failed(c, err, "getMyTransactions")
	}
	return utils.SuccessResponse(c, page, fiber.StatusOK)
}

// InsertIapPurchase handles POST /api/iap
// @Summary Fulfill a purchase
// @Description Credit the caller with the gold of an in-app purchase receipt. Each receipt is fulfilled once.
// @Tags Gold
// @Accept json
// @Produce json
// @Param purchase body contracts.IapPurchaseContract true "Purchase receipt"
// @Success 201 {object} contracts.UserContract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 402 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /iap [post]
func (h *Handler) InsertIapPurchase(c *fiber.Ctx) error {
	var purchase contracts.IapPurchaseContract
	if err := h.parseBody(c, &purchase, "insertIapPurchase.body"); err != nil {
		return failed(c, err, "insertIapPurchase")
	}

	user, err := h.caller(c)
	if err != nil {
		return failed(c, err, "insertIapPurchase")
	}
	purchase.UserID = user.UserID

	updated, err := h.Repo.InsertIapPurchase(c.UserContext(), purchase)
	if err != nil {
		return failed(c, err, "insertIapPurchase")
	}
	return utils.SuccessResponse(c, updated, fiber.StatusCreated)
}
