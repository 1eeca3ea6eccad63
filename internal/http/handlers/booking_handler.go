package handlers

import (
	applog "crestview/internal/log"
	"crestview/internal/services"
	"crestview/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookingHandler struct {
	Bookings *services.BookingService
	WhatsApp string
}

// Procurement renders the visit-booking page with a fresh idempotency
// token baked into the form.
func (h *BookingHandler) Procurement(c *fiber.Ctx) error {
	return render(c, "procurement", fiber.Map{
		"RequestID": uuid.NewString(),
		"WhatsApp":  h.WhatsApp,
		"Form":      fiber.Map{"Name": "", "Contact": "", "BHKType": ""},
	})
}

// Create handles the booking form post. Validation failures re-render
// the form with the one violated rule and the submitted values; the
// same request token is kept so a retry stays idempotent.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	form := validate.BookingForm{
		Name:    c.FormValue("name"),
		Contact: c.FormValue("contact"),
		BHKType: c.FormValue("bhk_type"),
	}
	reqID := c.FormValue("request_id")

	p, msg := validate.Booking(form)
	if msg != "" {
		applog.Security(c, "booking.validation.fail", map[string]any{"reason": msg})
		return c.Status(fiber.StatusBadRequest).Render("procurement", fiber.Map{
			"Err":       msg,
			"RequestID": reqID,
			"WhatsApp":  h.WhatsApp,
			"Form":      fiber.Map{"Name": form.Name, "Contact": form.Contact, "BHKType": form.BHKType},
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	b, err := h.Bookings.Create(p, reqID)
	if err != nil {
		applog.Error(c, "booking.create.fail", err, map[string]any{"request_id": reqID})
		return c.Status(fiber.StatusInternalServerError).Render("procurement", fiber.Map{
			"Err":       "There was an error processing your booking. Please try again.",
			"RequestID": reqID,
			"WhatsApp":  h.WhatsApp,
			"Form":      fiber.Map{"Name": form.Name, "Contact": form.Contact, "BHKType": form.BHKType},
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	applog.Audit(c, "booking.create", map[string]any{"booking_id": b.ID, "bhk": b.BHKType})
	return render(c, "booking_success", fiber.Map{"Booking": b})
}
