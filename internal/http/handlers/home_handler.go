package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "dealradar/internal/log"
	"dealradar/internal/services"
)

type HomeHandler struct {
	Deals *services.DealService
}

// Home renders a small browse page over the current deal set.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	deals, err := h.Deals.Query(services.QueryParams{MinDiscount: services.DefaultMinDiscount})
	if err != nil {
		applog.Error(c, "home.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not load deals. Please retry.",
		})
	}
	return render(c, "home", fiber.Map{"Deals": deals, "Count": len(deals)})
}
