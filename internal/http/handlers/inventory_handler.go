package handlers

import (
	applog "crestview/internal/log"
	"crestview/internal/services"
	"crestview/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	Units *services.UnitService
	Inv   *services.InventoryService
	Plans *services.FloorPlanService
	Auth  *services.AuthService
}

// Page renders the public inventory view: the full unit table, an
// availability summary derived from it, the catalog and the floor-plan
// cards. When an admin session resolves, the mutation controls render.
func (h *InventoryHandler) Page(c *fiber.Ctx) error {
	units, err := h.Units.List()
	if err != nil {
		applog.Error(c, "inventory.units.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}

	bhk := c.Query("bhk")
	catalog, err := h.Inv.Catalog(bhk)
	if err != nil {
		applog.Error(c, "inventory.catalog.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}
	plans, err := h.Plans.List()
	if err != nil {
		applog.Error(c, "inventory.plans.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}

	// Counts always come from the full unit slice.
	sum, err := h.Inv.Availability("")
	if err != nil {
		applog.Error(c, "inventory.availability.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inventory"})
	}

	isAdmin := false
	if sid := c.Cookies("sid"); sid != "" {
		if a, err := h.Auth.CurrentAdmin(sid); err == nil && a != nil {
			isAdmin = true
			c.Locals("admin", a)
		}
	}

	return render(c, "inventory", fiber.Map{
		"Units":    units,
		"Catalog":  catalog,
		"Plans":    plans,
		"Summary":  sum,
		"BHK":      bhk,
		"IsAdmin":  isAdmin,
		"Statuses": []string{"Available", "Booked", "Sold"},
		"BHKTypes": []string{"1 BHK", "2 BHK", "3 BHK", "4 BHK"},
	})
}

// Availability is the JSON summary API, optionally narrowed to one BHK
// type.
func (h *InventoryHandler) Availability(c *fiber.Ctx) error {
	bhk := c.Query("bhk")
	if bhk != "" {
		if v, ok := validate.BHKType(bhk); ok {
			bhk = v
		} else {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown bhk type"})
		}
	}
	sum, err := h.Inv.Availability(bhk)
	if err != nil {
		applog.Error(c, "availability.fail", err, map[string]any{"bhk": bhk})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not compute availability"})
	}
	return c.JSON(sum)
}
