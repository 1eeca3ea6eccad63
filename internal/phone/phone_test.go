package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCountryMatch(t *testing.T) {
	cases := []struct {
		in      string
		country string
	}{
		{"+919876543210", "IN"},
		{"919876543210", "IN"},
		{"9876543210", "IN"},
		{"+91 98765 43210", "IN"},
		{"98765-43210", "IN"},
		{"+12025550123", "US"},
		{"(202) 555-0123", "US"},
		{"+447912345678", "UK"},
		{"+97142345678", "AE"},
		{"+966512345678", "SA"},
	}
	for _, tc := range cases {
		got := Validate(tc.in)
		assert.True(t, got.Valid, "expected %q valid", tc.in)
		assert.Equal(t, tc.country, got.Country, "country for %q", tc.in)
	}
}

func TestValidateGenericFallback(t *testing.T) {
	// No country pattern matches, but the shape is a plausible
	// international number: optional +CC then 7-15 digits.
	for _, in := range []string{"+4912345678", "1234567", "+33123456789"} {
		got := Validate(in)
		assert.True(t, got.Valid, "fallback should accept %q", in)
		assert.Empty(t, got.Country)
	}
}

func TestValidateRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "123456", "+1234567890123456789", "98-76"} {
		assert.False(t, Validate(in).Valid, "should reject %q", in)
	}
}

func TestNormalize(t *testing.T) {
	// Separator stripping.
	assert.Equal(t, "+919876543210", Normalize("+91 98765 43210"))
	assert.Equal(t, "+919876543210", Normalize("+91-98765-(43210)"))
	// Bare national shape longer than 10 digits gains a "+".
	assert.Equal(t, "+919876543210", Normalize("919876543210"))
	// 10-digit local numbers are left alone.
	assert.Equal(t, "9876543210", Normalize("98765-43210"))
	// Leading zero never gets a "+".
	assert.Equal(t, "09198765432101", Normalize("09198765432101"))
}

func TestValidateIsDeterministic(t *testing.T) {
	a := Validate("+919876543210")
	b := Validate("+919876543210")
	assert.Equal(t, a, b)
}
