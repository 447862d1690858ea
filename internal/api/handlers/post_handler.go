package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/internal/service"
	"github.com/maheshrc27/postcalendar/internal/transfer"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	s   service.PostService
	now func() time.Time
}

func NewPostHandler(service service.PostService, loc *time.Location) *PostHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &PostHandler{
		s:   service,
		now: func() time.Time { return time.Now().In(loc) },
	}
}

func (h *PostHandler) CreateDraft(c *fiber.Ctx) error {
	var req transfer.DraftCreation
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, errInvalidJSON)
	}

	draft, err := h.s.CreateDraft(c.Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(draft)
}

func (h *PostHandler) ListDrafts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.ListDrafts(c.Context()))
}

func (h *PostHandler) PromoteDraft(c *fiber.Ctx) error {
	var req transfer.PromoteRequest
	if err := parseBody(c, &req); err != nil {
		return errorResponse(c, err)
	}

	day, err := parseDate(req.Date, h.now)
	if err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.PromoteDraft(c.Context(), c.Params("id"), day, req.Time)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var req transfer.PostCreation
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, errInvalidJSON)
	}

	post, err := h.s.CreateScheduled(c.Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts returns every scheduled post, or only one day's posts when a date
// query is given.
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	if date := c.Query("date"); date != "" {
		day, err := parseDate(date, h.now)
		if err != nil {
			return errorResponse(c, err)
		}

		posts := h.s.PostsForDate(c.Context(), day)
		if posts == nil {
			posts = []*models.ScheduledPost{}
		}
		return c.Status(fiber.StatusOK).JSON(posts)
	}

	return c.Status(fiber.StatusOK).JSON(h.s.ListScheduled(c.Context()))
}

func (h *PostHandler) PostInfo(c *fiber.Ctx) error {
	post, err := h.s.PostInfo(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) MovePost(c *fiber.Ctx) error {
	var req transfer.MoveRequest
	if err := parseBody(c, &req); err != nil {
		return errorResponse(c, err)
	}

	day, err := parseDate(req.Date, h.now)
	if err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.MoveScheduled(c.Context(), c.Params("id"), day)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// UpdateStatus is called by an external publisher once delivery settled.
func (h *PostHandler) UpdateStatus(c *fiber.Ctx) error {
	var req transfer.StatusUpdate
	if err := parseBody(c, &req); err != nil {
		return errorResponse(c, err)
	}

	post, err := h.s.UpdateStatus(c.Context(), c.Params("id"), models.PostStatus(req.Status))
	if err != nil {
		return errorResponse(c, err)
	}

	if req.Error != "" {
		logrus.WithFields(logrus.Fields{
			"post_id": post.ID,
			"status":  post.Status,
		}).Warn(req.Error)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}
