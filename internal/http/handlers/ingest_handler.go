package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"dealradar/internal/domain"
	applog "dealradar/internal/log"
	"dealradar/internal/services"
	"dealradar/internal/validate"
)

type IngestHandler struct {
	Ingest *services.IngestService
}

// Trigger serves POST /api/scrape-deals: fetch and replace the deals for
// one location scope.
func (h *IngestHandler) Trigger(c *fiber.Ctx) error {
	location, ok := validate.LocationName(c.Query("location"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid location"})
	}
	lat, ok := validate.Coord(c.Query("lat"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid lat"})
	}
	lng, ok := validate.Coord(c.Query("lng"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid lng"})
	}
	category, ok := validate.Category(c.Query("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}

	report, err := h.Ingest.Ingest(c.Context(), services.IngestParams{
		Location: location,
		Lat:      lat,
		Lng:      lng,
		Category: category,
	})
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		applog.Error(c, "ingest.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "ingestion failed"})
	}

	applog.Info(c, "ingest.ok", map[string]any{"accepted": report.Accepted, "sources": report.Sources})
	return c.JSON(fiber.Map{
		"message":        fmt.Sprintf("Scraped %d deals from %d stores", report.Accepted, report.Sources),
		"accepted_count": report.Accepted,
		"source_count":   report.Sources,
		"failures":       report.Failures,
	})
}
