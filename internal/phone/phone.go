// Package phone validates and normalizes contact numbers collected by
// the visit-booking form. Matching is pattern-based and deterministic:
// a small set of country patterns is tried in a fixed order, with a
// permissive international fallback for everything else.
package phone

import "regexp"

type Result struct {
	Valid   bool
	Country string // ISO code of the first matching pattern, empty for the generic fallback
}

type countryPattern struct {
	code string
	re   *regexp.Regexp
}

// Order matters: the first match wins and names the country.
var countryPatterns = []countryPattern{
	{"IN", regexp.MustCompile(`^(\+91|91)?[6-9]\d{9}$`)},
	{"US", regexp.MustCompile(`^(\+1|1)?[2-9]\d{2}[2-9]\d{2}\d{4}$`)},
	{"UK", regexp.MustCompile(`^(\+44|44)?[1-9]\d{8,9}$`)},
	{"AE", regexp.MustCompile(`^(\+971|971)?[2-9]\d{7}$`)},
	{"SA", regexp.MustCompile(`^(\+966|966)?[1-9]\d{7,8}$`)},
}

var (
	reSeparators   = regexp.MustCompile(`[\s\-()]`)
	reFallback     = regexp.MustCompile(`^(\+\d{1,3})?\d{7,15}$`)
	reBareNational = regexp.MustCompile(`^[1-9]\d{10,14}$`)
)

// Validate strips spaces, hyphens and parentheses, then tests the
// cleaned string against the country patterns. Numbers matching no
// specific country still pass if they look like an international
// number: optional 1-3 digit country code, 7-15 digits.
func Validate(raw string) Result {
	clean := reSeparators.ReplaceAllString(raw, "")
	for _, cp := range countryPatterns {
		if cp.re.MatchString(clean) {
			return Result{Valid: true, Country: cp.code}
		}
	}
	return Result{Valid: reFallback.MatchString(clean)}
}

// Normalize strips the same separators and prepends "+" when the value
// reads as a bare national number with a country code already in front
// (more than 10 digits, leading non-zero).
func Normalize(raw string) string {
	clean := reSeparators.ReplaceAllString(raw, "")
	if len(clean) > 10 && clean[0] != '+' && reBareNational.MatchString(clean) {
		clean = "+" + clean
	}
	return clean
}
