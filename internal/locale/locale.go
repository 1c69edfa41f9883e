// Package locale holds the static table of supported countries.
// Each entry carries the data the generators need: name pools, the
// international dialing prefix and a phone number template.
package locale

import "errors"

// ErrNotFound is returned when a country code matches no entry.
var ErrNotFound = errors.New("country not found")

// Country describes one supported locale.
type Country struct {
	// Code is the ISO 3166-1 alpha-2 code, unique across the registry.
	Code string `json:"code"`
	Name string `json:"name"`

	// DialPrefix is the international calling prefix, e.g. "+49".
	DialPrefix string `json:"dial_prefix"`

	// PhoneFormat is the full number template. Literal characters are
	// copied verbatim; every 'X' is replaced with a random digit.
	PhoneFormat string `json:"phone_format"`

	// NoZeroLead forces the first variable digit to 1-9. Set for
	// formats where the subscriber segment starts the number and a
	// leading zero would look like a trunk prefix.
	NoZeroLead bool `json:"no_zero_lead"`

	FirstNames []string `json:"-"`
	LastNames  []string `json:"-"`
}

var byCode = func() map[string]Country {
	m := make(map[string]Country, len(countries))
	for _, c := range countries {
		m[c.Code] = c
	}
	return m
}()

// Lookup returns the country for an ISO code.
func Lookup(code string) (Country, error) {
	c, ok := byCode[code]
	if !ok {
		return Country{}, ErrNotFound
	}
	return c, nil
}

// All returns every supported country in registry order.
func All() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// Default returns the fallback country used when no selection is available.
func Default() Country {
	return countries[0]
}
