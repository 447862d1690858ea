package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postcalendar/internal/service"
)

type PlatformHandler struct {
	ps service.PlatformService
}

func NewPlatformHandler(ps service.PlatformService) *PlatformHandler {
	return &PlatformHandler{ps: ps}
}

func (h *PlatformHandler) ListPlatforms(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.ps.List())
}

func (h *PlatformHandler) PlatformInfo(c *fiber.Ctx) error {
	info, ok := h.ps.Lookup(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown platform",
		})
	}

	return c.Status(fiber.StatusOK).JSON(info)
}
