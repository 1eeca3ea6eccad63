package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okUnitForm() UnitForm {
	return UnitForm{
		Floor:      "1",
		UnitNumber: "101",
		BHKType:    "2 BHK",
		SizeSqft:   "650",
		Price:      "4500000",
		Status:     "Available",
	}
}

func TestUnitAccepts(t *testing.T) {
	p, msg := Unit(okUnitForm())
	require.Empty(t, msg)
	assert.Equal(t, 1, p.Floor)
	assert.Equal(t, "101", p.UnitNumber)
	assert.Equal(t, "2 BHK", p.BHKType)
	assert.Equal(t, 650, p.SizeSqft)
	assert.Equal(t, 4500000.0, p.Price)
	assert.Equal(t, "Available", p.Status)
}

func TestUnitTrimsUnitNumber(t *testing.T) {
	f := okUnitForm()
	f.UnitNumber = "  201A  "
	p, msg := Unit(f)
	require.Empty(t, msg)
	assert.Equal(t, "201A", p.UnitNumber)
}

func TestUnitFirstViolationWins(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*UnitForm)
		want   string
	}{
		{"missing unit number", func(f *UnitForm) { f.UnitNumber = "  " }, "Unit number is required"},
		{"missing bhk", func(f *UnitForm) { f.BHKType = "" }, "BHK type is required"},
		{"floor zero", func(f *UnitForm) { f.Floor = "0" }, "Floor must be a valid number greater than 0"},
		{"floor junk", func(f *UnitForm) { f.Floor = "abc" }, "Floor must be a valid number greater than 0"},
		{"size zero", func(f *UnitForm) { f.SizeSqft = "0" }, "Size must be a valid number greater than 0"},
		{"negative price", func(f *UnitForm) { f.Price = "-1" }, "Price must be a valid number greater than or equal to 0"},
		{"bad bhk", func(f *UnitForm) { f.BHKType = "5 BHK" }, "BHK type must be one of 1 BHK to 4 BHK"},
		{"bad status", func(f *UnitForm) { f.Status = "Reserved" }, "Status must be Available, Booked or Sold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := okUnitForm()
			tc.mutate(&f)
			_, msg := Unit(f)
			assert.Equal(t, tc.want, msg)
		})
	}
}

// Decimal input for the integer fields truncates instead of failing.
func TestUnitTruncatesDecimalFloorAndSize(t *testing.T) {
	f := okUnitForm()
	f.Floor = "2.9"
	f.SizeSqft = "655.5"
	p, msg := Unit(f)
	require.Empty(t, msg)
	assert.Equal(t, 2, p.Floor)
	assert.Equal(t, 655, p.SizeSqft)

	// truncation happens before the range check
	f = okUnitForm()
	f.Floor = "0.9"
	_, msg = Unit(f)
	assert.Equal(t, "Floor must be a valid number greater than 0", msg)
}

func TestUnitStatusDefaultsToAvailable(t *testing.T) {
	f := okUnitForm()
	f.Status = ""
	p, msg := Unit(f)
	require.Empty(t, msg)
	assert.Equal(t, "Available", p.Status)
}

func TestBookingAcceptsAndNormalizes(t *testing.T) {
	p, msg := Booking(BookingForm{Name: "  Asha Rao ", Contact: "+91 98765 43210", BHKType: "3 BHK"})
	require.Empty(t, msg)
	assert.Equal(t, "Asha Rao", p.Name)
	assert.Equal(t, "+919876543210", p.Contact)
	assert.Equal(t, "3 BHK", p.BHKType)
}

func TestBookingFirstViolationWins(t *testing.T) {
	_, msg := Booking(BookingForm{})
	assert.Equal(t, "Please enter your name", msg)

	_, msg = Booking(BookingForm{Name: "A"})
	assert.Equal(t, "Please enter your contact number", msg)

	_, msg = Booking(BookingForm{Name: "A", Contact: "9876543210"})
	assert.Equal(t, "Please select your preferred BHK type", msg)

	_, msg = Booking(BookingForm{Name: "A", Contact: "12-34", BHKType: "2 BHK"})
	assert.Equal(t, "Please enter a valid international phone number (e.g., +919876543210)", msg)
}

func TestStatusEnums(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled"} {
		_, ok := BookingStatus(s)
		assert.True(t, ok, s)
	}
	_, ok := BookingStatus("archived")
	assert.False(t, ok)

	for _, s := range []string{"Available", "Booked", "Sold"} {
		_, ok := UnitStatus(s)
		assert.True(t, ok, s)
	}
	_, ok = UnitStatus("available")
	assert.False(t, ok)
}
