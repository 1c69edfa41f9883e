package locale

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	c, err := Lookup("US")
	if err != nil {
		t.Fatalf("Lookup(US) error: %v", err)
	}
	if c.Name != "United States" {
		t.Errorf("name = %q, want United States", c.Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("ZZ")
	if err != ErrNotFound {
		t.Errorf("Lookup(ZZ) error = %v, want ErrNotFound", err)
	}
}

func TestLookupCaseSensitive(t *testing.T) {
	// codes are stored uppercase; lowercase input is a caller bug
	if _, err := Lookup("us"); err != ErrNotFound {
		t.Errorf("Lookup(us) error = %v, want ErrNotFound", err)
	}
}

func TestCodesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range All() {
		if seen[c.Code] {
			t.Errorf("duplicate country code %q", c.Code)
		}
		seen[c.Code] = true
	}
}

func TestAllStableOrder(t *testing.T) {
	a := All()
	b := All()
	if len(a) != len(b) {
		t.Fatalf("All() lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Code != b[i].Code {
			t.Errorf("order not stable at %d: %q vs %q", i, a[i].Code, b[i].Code)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Code = "XX"
	if _, err := Lookup("XX"); err == nil {
		t.Error("mutating All() result should not affect the registry")
	}
}

func TestDefault(t *testing.T) {
	if Default().Code != "US" {
		t.Errorf("default country = %q, want US", Default().Code)
	}
}

func TestRegistryDataWellFormed(t *testing.T) {
	for _, c := range All() {
		t.Run(c.Code, func(t *testing.T) {
			if len(c.Code) != 2 || c.Code != strings.ToUpper(c.Code) {
				t.Errorf("code %q is not a two-letter uppercase code", c.Code)
			}
			if c.Name == "" {
				t.Error("empty display name")
			}
			if len(c.FirstNames) == 0 || len(c.LastNames) == 0 {
				t.Error("empty name pool")
			}
			if !strings.HasPrefix(c.PhoneFormat, c.DialPrefix) {
				t.Errorf("format %q does not start with dial prefix %q", c.PhoneFormat, c.DialPrefix)
			}
			if !strings.Contains(c.PhoneFormat, "X") {
				t.Errorf("format %q has no variable digits", c.PhoneFormat)
			}
		})
	}
}
