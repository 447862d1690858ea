package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postcalendar/internal/api/handlers"
	"github.com/maheshrc27/postcalendar/internal/api/middleware"
)

type Handlers struct {
	Post         *handlers.PostHandler
	Calendar     *handlers.CalendarHandler
	Platform     *handlers.PlatformHandler
	Media        *handlers.MediaHandler
	PublisherKey *middleware.PublisherKeyMiddleware
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	api.Get("/platforms", h.Platform.ListPlatforms)
	api.Get("/platforms/:id", h.Platform.PlatformInfo)

	api.Get("/drafts", h.Post.ListDrafts)
	api.Post("/drafts", h.Post.CreateDraft)
	api.Post("/drafts/:id/promote", h.Post.PromoteDraft)

	api.Get("/posts", h.Post.ListPosts)
	api.Post("/posts", h.Post.CreatePost)
	api.Get("/posts/:id", h.Post.PostInfo)
	api.Post("/posts/:id/move", h.Post.MovePost)
	api.Post("/posts/:id/status", h.PublisherKey.PublisherKey(), h.Post.UpdateStatus)

	api.Get("/calendar", h.Calendar.View)
	api.Post("/calendar/drop", h.Calendar.Drop)

	api.Post("/media", h.Media.Upload)
}
