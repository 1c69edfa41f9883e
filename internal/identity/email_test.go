package identity

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/zarlcorp/zpersona/internal/maildomain"
)

func TestEmailRandomDomainFromPool(t *testing.T) {
	g := New()
	for range 100 {
		email, err := g.Email("John", "Doe", maildomain.Random)
		if err != nil {
			t.Fatalf("Email: %v", err)
		}
		domain := strings.SplitN(email, "@", 2)[1]
		if !maildomain.Contains(domain) {
			t.Errorf("domain %q not in the pool", domain)
		}
	}
}

func TestEmailEmptyChoiceIsRandom(t *testing.T) {
	g := New()
	email, err := g.Email("John", "Doe", "")
	if err != nil {
		t.Fatalf("Email: %v", err)
	}
	domain := strings.SplitN(email, "@", 2)[1]
	if !maildomain.Contains(domain) {
		t.Errorf("empty choice should draw from the pool, got %q", domain)
	}
}

func TestEmailExplicitDomain(t *testing.T) {
	g := New()
	email, err := g.Email("John", "Doe", "example.com")
	if err != nil {
		t.Fatalf("Email: %v", err)
	}
	if !strings.HasSuffix(email, "@example.com") {
		t.Errorf("email %q should end with @example.com", email)
	}
}

func TestEmailInvalidDomain(t *testing.T) {
	tests := []string{"not a domain", "nodot", "a@b.com", ".lead.com"}

	g := New()
	for _, d := range tests {
		if _, err := g.Email("John", "Doe", d); !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("Email(%q) error = %v, want ErrInvalidDomain", d, err)
		}
	}
}

func TestEmailLocalPartShape(t *testing.T) {
	g := New()
	re := regexp.MustCompile(`^johndoe\d{4}$`)

	for range 50 {
		email, err := g.Email("John", "Doe", "example.com")
		if err != nil {
			t.Fatalf("Email: %v", err)
		}
		local := strings.SplitN(email, "@", 2)[0]
		if !re.MatchString(local) {
			t.Errorf("local part %q, want johndoe + 4 digits", local)
		}
	}
}

func TestEmailRandomSuffixVaries(t *testing.T) {
	g := New()
	a, _ := g.Email("John", "Doe", "example.com")
	different := false
	for range 10 {
		b, _ := g.Email("John", "Doe", "example.com")
		if a != b {
			different = true
			break
		}
	}
	if !different {
		t.Errorf("suffix should vary across calls: got %q repeatedly", a)
	}
}

func TestEmailTransliteratesNames(t *testing.T) {
	tests := []struct {
		first, last string
		wantPrefix  string
	}{
		{"José", "Muñoz", "josemunoz"},
		{"François", "Lefèvre", "francoislefevre"},
		{"Jürgen", "Klöß", "jurgenkloss"},
		{"Åsa", "Sjöberg", "asasjoberg"},
		{"Łukasz", "Wójcik", "lukaszwojcik"},
		{"Théo", "Français", "theofrancais"},
	}

	g := New()
	for _, tt := range tests {
		email, err := g.Email(tt.first, tt.last, "example.com")
		if err != nil {
			t.Fatalf("Email(%s %s): %v", tt.first, tt.last, err)
		}
		local := strings.SplitN(email, "@", 2)[0]
		if !strings.HasPrefix(local, tt.wantPrefix) {
			t.Errorf("Email(%s %s) local part = %q, want prefix %q", tt.first, tt.last, local, tt.wantPrefix)
		}
	}
}

func TestEmailLocalPartAlwaysASCII(t *testing.T) {
	g := New()
	re := regexp.MustCompile(`^[a-z0-9]+$`)
	names := [][2]string{
		{"de Jong", "van den Berg"},
		{"De Luca", "D'Angelo"},
		{"Anne-Marie", "O'Neil"},
		{"雪", "山田"}, // no ASCII decomposition at all
	}

	for _, n := range names {
		email, err := g.Email(n[0], n[1], "example.com")
		if err != nil {
			t.Fatalf("Email(%s %s): %v", n[0], n[1], err)
		}
		local := strings.SplitN(email, "@", 2)[0]
		if !re.MatchString(local) {
			t.Errorf("local part %q contains characters outside [a-z0-9]", local)
		}
	}
}

func TestEmailFallbackHandleWhenNameFoldsAway(t *testing.T) {
	g := New()
	email, err := g.Email("雪", "山", "example.com")
	if err != nil {
		t.Fatalf("Email: %v", err)
	}
	local := strings.SplitN(email, "@", 2)[0]
	if len(local) <= 4 {
		t.Errorf("local part %q should be a handle plus suffix, not digits alone", local)
	}
}

func TestAsciiFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"josé", "jose"},
		{"straße", "strasse"},
		{"łódź", "lodz"},
		{"søren", "soren"},
		{"čech", "cech"},
		{"already-ascii 42", "alreadyascii42"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := asciiFold(tt.in); got != tt.want {
			t.Errorf("asciiFold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
