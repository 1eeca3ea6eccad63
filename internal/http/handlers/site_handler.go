package handlers

import (
	applog "crestview/internal/log"
	"crestview/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SiteHandler serves the static marketing pages.
type SiteHandler struct {
	Plans    *services.FloorPlanService
	WhatsApp string
}

func (h *SiteHandler) Home(c *fiber.Ctx) error {
	plans, err := h.Plans.List()
	if err != nil {
		applog.Error(c, "home.plans.fail", err, nil)
		plans = nil // the page still renders without the plan strip
	}
	return render(c, "home", fiber.Map{"Plans": plans, "WhatsApp": h.WhatsApp})
}
