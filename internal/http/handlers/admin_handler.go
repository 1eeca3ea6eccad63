package handlers

import (
	"time"

	applog "crestview/internal/log"
	"crestview/internal/services"
	"crestview/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the booking dashboard: list, aggregate counters,
// per-row status/delete actions and the CSV download.
type AdminHandler struct {
	Bookings *services.BookingService
}

// GET /admin/dashboard?status=
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	all, err := h.Bookings.List()
	if err != nil {
		applog.Error(c, "admin.bookings.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load bookings"})
	}

	status := c.Query("status", "all")
	if status != "all" {
		if st, ok := validate.BookingStatus(status); ok {
			status = st
		} else {
			status = "all"
		}
	}

	// Counters from the unfiltered collection; the filter only narrows
	// the rendered rows.
	stats := services.Stats(all)
	filtered := services.FilterByStatus(all, status)

	return render(c, "admin_dashboard", fiber.Map{
		"Bookings": filtered,
		"Stats":    stats,
		"Filter":   status,
		"Shown":    len(filtered),
	})
}

// POST /admin/bookings/:id/status
// The new status comes from the form body only; the ?status query on
// the action URL is the active dashboard filter, carried for the
// redirect back.
func (h *AdminHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status := string(c.Request().PostArgs().Peek("status"))
	if !ok || status == "" {
		return c.Status(400).SendString("missing id or status")
	}
	b, err := h.Bookings.UpdateStatus(id, status)
	if err != nil {
		applog.Error(c, "admin.bookings.update.fail", err, map[string]any{"booking_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.bookings.update", map[string]any{"booking_id": id, "status": b.Status})
	return c.Redirect("/admin/dashboard?status=" + c.Query("status", "all"))
}

// POST /admin/bookings/:id/delete
// The confirm step lives in the form; by the time this runs the admin
// has already confirmed.
func (h *AdminHandler) DeleteBooking(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Bookings.Delete(id); err != nil {
		applog.Error(c, "admin.bookings.delete.fail", err, map[string]any{"booking_id": id})
		// Redirect anyway: the dashboard re-reads the collection after
		// every row action, failed or not.
		return c.Redirect("/admin/dashboard?status=" + c.Query("status", "all"))
	}
	applog.Audit(c, "admin.bookings.delete", map[string]any{"booking_id": id})
	return c.Redirect("/admin/dashboard?status=" + c.Query("status", "all"))
}

// GET /admin/bookings.csv?status=
// Exports the filtered view, not the whole table.
func (h *AdminHandler) ExportCSV(c *fiber.Ctx) error {
	all, err := h.Bookings.List()
	if err != nil {
		applog.Error(c, "admin.bookings.export.fail", err, nil)
		return c.Status(500).SendString("could not export bookings")
	}
	status := c.Query("status", "all")
	filtered := services.FilterByStatus(all, status)

	body, err := services.ExportCSV(filtered)
	if err != nil {
		applog.Error(c, "admin.bookings.export.fail", err, nil)
		return c.Status(500).SendString("could not export bookings")
	}

	applog.Audit(c, "admin.bookings.export", map[string]any{"rows": len(filtered), "filter": status})
	name := "bookings-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(body)
}
