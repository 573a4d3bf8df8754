package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "dealradar/internal/log"
	"dealradar/internal/services"
	"dealradar/internal/validate"
)

type DealHandler struct {
	Deals *services.DealService
}

func (h *DealHandler) Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to the Real-Time Local Deal Finder API"})
}

// List serves GET /api/deals: deals over a discount floor, optionally
// narrowed by category and by proximity to the caller.
func (h *DealHandler) List(c *fiber.Ctx) error {
	lat, ok := validate.Coord(c.Query("lat"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "lat"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid lat"})
	}
	lng, ok := validate.Coord(c.Query("lng"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "lng"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid lng"})
	}
	category, ok := validate.Category(c.Query("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	radius, ok := validate.Float(c.Query("radius"), services.DefaultRadius)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid radius"})
	}
	minDiscount, ok := validate.Float(c.Query("min_discount"), services.DefaultMinDiscount)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid min_discount"})
	}

	deals, err := h.Deals.Query(services.QueryParams{
		MinDiscount: minDiscount,
		Category:    category,
		Lat:         lat,
		Lng:         lng,
		Radius:      radius,
	})
	if err != nil {
		applog.Error(c, "deals.query.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load deals"})
	}
	return c.JSON(deals)
}
