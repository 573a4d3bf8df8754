package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	applog "dealradar/internal/log"
	"dealradar/internal/services"
)

type SampleHandler struct {
	Sample *services.SampleService
}

// Load serves POST /api/sample-deals: replace the collection with the
// fixed demo inventory.
func (h *SampleHandler) Load(c *fiber.Ctx) error {
	n, err := h.Sample.Load()
	if err != nil {
		applog.Error(c, "sample.load.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load sample deals"})
	}
	applog.Info(c, "sample.load.ok", map[string]any{"count": n})
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Generated %d sample deals", n),
		"count":   n,
	})
}
