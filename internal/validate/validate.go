package validate

import (
	"regexp"
	"strconv"
	"strings"

	"crestview/internal/phone"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reBHK   = regexp.MustCompile(`^[1-4] BHK$`)
)

// Unit statuses accepted from forms.
var unitStatuses = map[string]bool{"Available": true, "Booked": true, "Sold": true}

// Booking statuses accepted from the dashboard actions.
var bookingStatuses = map[string]bool{"pending": true, "confirmed": true, "cancelled": true}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (unit/booking/plan ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func BHKType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reBHK.MatchString(s)
}

func UnitStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, unitStatuses[s]
}

func BookingStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, bookingStatuses[s]
}

// wholeNumber parses an integer field, truncating a fractional part
// ("655.5" counts as 655).
func wholeNumber(s string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// UnitForm is the raw add/edit-unit submission before validation.
type UnitForm struct {
	Floor      string
	UnitNumber string
	BHKType    string
	SizeSqft   string
	Price      string
	Status     string
}

// ParsedUnit is a UnitForm that passed validation.
type ParsedUnit struct {
	Floor      int
	UnitNumber string
	BHKType    string
	SizeSqft   int
	Price      float64
	Status     string
}

// Unit checks a unit form in a fixed order and stops at the first
// violation: required fields, then numeric ranges, then enums. The
// returned message is shown to the admin as-is.
func Unit(f UnitForm) (ParsedUnit, string) {
	var p ParsedUnit

	p.UnitNumber = strings.TrimSpace(f.UnitNumber)
	if p.UnitNumber == "" {
		return p, "Unit number is required"
	}
	if strings.TrimSpace(f.BHKType) == "" {
		return p, "BHK type is required"
	}

	floor, ok := wholeNumber(f.Floor)
	if !ok || floor < 1 {
		return p, "Floor must be a valid number greater than 0"
	}
	p.Floor = floor

	size, ok := wholeNumber(f.SizeSqft)
	if !ok || size < 1 {
		return p, "Size must be a valid number greater than 0"
	}
	p.SizeSqft = size

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price < 0 {
		return p, "Price must be a valid number greater than or equal to 0"
	}
	p.Price = price

	bhk, ok := BHKType(f.BHKType)
	if !ok {
		return p, "BHK type must be one of 1 BHK to 4 BHK"
	}
	p.BHKType = bhk

	status := strings.TrimSpace(f.Status)
	if status == "" {
		status = "Available"
	}
	if !unitStatuses[status] {
		return p, "Status must be Available, Booked or Sold"
	}
	p.Status = status

	return p, ""
}

// BookingForm is the raw visit-booking submission.
type BookingForm struct {
	Name    string
	Contact string
	BHKType string
}

// ParsedBooking is a BookingForm that passed validation; Contact is
// already normalized.
type ParsedBooking struct {
	Name    string
	Contact string
	BHKType string
}

// Booking checks the visit-booking form: presence first, then the
// phone format. First violation wins.
func Booking(f BookingForm) (ParsedBooking, string) {
	var p ParsedBooking

	p.Name = strings.TrimSpace(f.Name)
	if p.Name == "" {
		return p, "Please enter your name"
	}
	if strings.TrimSpace(f.Contact) == "" {
		return p, "Please enter your contact number"
	}
	if strings.TrimSpace(f.BHKType) == "" {
		return p, "Please select your preferred BHK type"
	}

	p.Contact = phone.Normalize(f.Contact)
	if !phone.Validate(p.Contact).Valid {
		return p, "Please enter a valid international phone number (e.g., +919876543210)"
	}

	bhk, ok := BHKType(f.BHKType)
	if !ok {
		return p, "Please select your preferred BHK type"
	}
	p.BHKType = bhk

	return p, ""
}
