package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/goldphotos/internal/middleware"
	"github.com/localnerve/goldphotos/internal/services"
)

// Register mounts the API routes on router
func Register(router fiber.Router, h *Handler, sessions services.SessionValidator) {
	user := middleware.AuthUser(sessions)
	admin := middleware.AuthAdmin(sessions)

	// Categories (public GET, admin POST)
	router.Get("/categories", h.GetCategories)
	router.Post("/categories", admin, h.CreateCategories)
	router.Get("/categories/preview", h.GetCategoriesPreview)
	router.Get("/categories/:id/photos", h.GetCategoryPhotoStream)

	// Photos
	router.Get("/photos/hero", h.GetHeroPhotos)
	router.Get("/photos/:id", h.GetPhoto)
	router.Get("/photos/:id/annotations", h.GetAnnotations)
	router.Post("/photos", user, h.InsertPhoto)
	router.Put("/photos/:id/status", admin, h.UpdatePhotoStatus)
	router.Put("/photos/:id", user, h.UpdatePhoto)
	router.Delete("/photos/:id", user, h.DeletePhoto)

	// Annotations and reports
	router.Post("/annotations", user, h.InsertAnnotation)
	router.Delete("/annotations/:id", user, h.DeleteAnnotation)
	router.Post("/reports", user, h.InsertReport)

	// Users and gold
	router.Get("/users/me", user, h.GetMe)
	router.Put("/users/me", user, h.UpdateMe)
	router.Get("/users/me/transactions", user, h.GetMyTransactions)
	router.Get("/users/:id", h.GetUser)
	router.Get("/users/:id/photos", middleware.OptionalUser(sessions), h.GetUserPhotoStream)
	router.Post("/iap", user, h.InsertIapPurchase)
	router.Get("/leaderboard", h.GetLeaderboard)
}
