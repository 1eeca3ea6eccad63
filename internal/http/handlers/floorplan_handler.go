package handlers

import (
	applog "crestview/internal/log"
	"crestview/internal/services"
	"crestview/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FloorPlanHandler struct {
	Plans *services.FloorPlanService
}

// Detail renders the plan modal content.
func (h *FloorPlanHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "plan"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This plan is not available"})
	}
	p, err := h.Plans.Get(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This plan is not available"})
	}
	return render(c, "floorplan", fiber.Map{"Plan": p})
}
