package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/dragdrop"
	"github.com/maheshrc27/postcalendar/internal/service"
	"github.com/maheshrc27/postcalendar/internal/transfer"
)

type CalendarHandler struct {
	cs   service.CalendarService
	drop *dragdrop.Controller
	now  func() time.Time
}

func NewCalendarHandler(cs service.CalendarService, drop *dragdrop.Controller, loc *time.Location) *CalendarHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarHandler{
		cs:   cs,
		drop: drop,
		now:  func() time.Time { return time.Now().In(loc) },
	}
}

// View renders the week or month around anchor (default today).
func (h *CalendarHandler) View(c *fiber.Ctx) error {
	mode, err := calendar.ParseViewMode(c.Query("view"))
	if err != nil {
		return errorResponse(c, err)
	}

	anchor, err := parseDate(c.Query("anchor"), h.now)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(h.cs.View(c.Context(), anchor, mode))
}

// Drop applies a drag from the calendar or the drafts sidebar onto a day.
func (h *CalendarHandler) Drop(c *fiber.Ctx) error {
	var req transfer.DropRequest
	if err := parseBody(c, &req); err != nil {
		return errorResponse(c, err)
	}

	item, err := req.Item.ToItem()
	if err != nil {
		return errorResponse(c, &service.ValidationError{Field: "kind", Message: err.Error()})
	}

	day, err := parseDate(req.Date, h.now)
	if err != nil {
		return errorResponse(c, err)
	}

	out, err := h.drop.Drop(c.Context(), item, dragdrop.Target{Day: day, Time: req.Time})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(transfer.DropResponse{
		Action:  out.Action,
		Skipped: out.Skipped,
		Post:    out.Post,
	})
}
