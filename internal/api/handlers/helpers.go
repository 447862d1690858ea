package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postcalendar/internal/calendar"
	"github.com/maheshrc27/postcalendar/internal/repository"
	"github.com/maheshrc27/postcalendar/internal/service"
	"github.com/sirupsen/logrus"
)

var errInvalidJSON = errors.New("unable to parse json")

// errorResponse maps service errors onto status codes.
func errorResponse(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
			"field": verr.Field,
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, repository.ErrMalformedInput),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, calendar.ErrInvalidView),
		errors.Is(err, service.ErrUnsupportedMedia),
		errors.Is(err, errInvalidJSON):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrStorageDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}
}

// parseBody decodes and validates a JSON request body.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logrus.Debug(err.Error())
		return errInvalidJSON
	}
	return service.ValidateRequest(out)
}

// parseDate reads a YYYY-MM-DD value, falling back to today when empty.
func parseDate(value string, now func() time.Time) (time.Time, error) {
	if value == "" {
		return calendar.StartOfDay(now()), nil
	}
	d, err := calendar.ParseDate(value)
	if err != nil {
		return time.Time{}, &service.ValidationError{Field: "date", Message: "must match 2006-01-02"}
	}
	return d, nil
}
