package handlers

import (
	applog "crestview/internal/log"
	"crestview/internal/services"
	"crestview/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// UnitHandler carries the admin-only unit mutations. Every mutation
// redirects back to /inventory, which re-reads the collection whether
// the mutation succeeded or not.
type UnitHandler struct {
	Units *services.UnitService
}

func unitFormFromRequest(c *fiber.Ctx) validate.UnitForm {
	return validate.UnitForm{
		Floor:      c.FormValue("floor"),
		UnitNumber: c.FormValue("unit_number"),
		BHKType:    c.FormValue("bhk_type"),
		SizeSqft:   c.FormValue("size_sqft"),
		Price:      c.FormValue("price"),
		Status:     c.FormValue("status"),
	}
}

// POST /admin/units
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	form := unitFormFromRequest(c)
	p, msg := validate.Unit(form)
	if msg != "" {
		applog.Security(c, "unit.validation.fail", map[string]any{"reason": msg})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}
	u, err := h.Units.Create(p)
	if err != nil {
		applog.Error(c, "unit.create.fail", err, map[string]any{"unit_number": p.UnitNumber})
		return c.Status(fiber.StatusBadRequest).SendString("Failed to add unit. Please try again.")
	}
	applog.Audit(c, "unit.create", map[string]any{"unit_id": u.ID, "unit_number": u.UnitNumber})
	return c.Redirect("/inventory")
}

// POST /admin/units/:id
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	form := unitFormFromRequest(c)
	p, msg := validate.Unit(form)
	if msg != "" {
		applog.Security(c, "unit.validation.fail", map[string]any{"reason": msg, "unit_id": id})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}
	u, err := h.Units.Update(id, p)
	if err != nil {
		applog.Error(c, "unit.update.fail", err, map[string]any{"unit_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("Failed to update unit. Please try again.")
	}
	applog.Audit(c, "unit.update", map[string]any{"unit_id": u.ID})
	return c.Redirect("/inventory")
}

// POST /admin/units/:id/status
func (h *UnitHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	status, ok := validate.UnitStatus(c.FormValue("status"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Status must be Available, Booked or Sold")
	}
	u, err := h.Units.UpdateStatus(id, status)
	if err != nil {
		applog.Error(c, "unit.status.fail", err, map[string]any{"unit_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("Failed to update unit. Please try again.")
	}
	applog.Audit(c, "unit.status", map[string]any{"unit_id": u.ID, "status": u.Status})
	return c.Redirect("/inventory")
}

// POST /admin/units/:id/delete
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	if err := h.Units.Delete(id); err != nil {
		applog.Error(c, "unit.delete.fail", err, map[string]any{"unit_id": id})
		// The list still re-renders from a fresh read after a failed
		// delete; the admin sees current state either way.
		return c.Redirect("/inventory")
	}
	applog.Audit(c, "unit.delete", map[string]any{"unit_id": id})
	return c.Redirect("/inventory")
}
