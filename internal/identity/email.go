package identity

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/zarlcorp/zpersona/internal/maildomain"
)

// fallbackHandles is used when a name folds to nothing, e.g. a pool
// entry written in a script with no ASCII decomposition.
var fallbackHandles = []string{
	"wolf", "hawk", "lark", "fern", "reed", "moss", "dune", "vale",
}

// foldReplacer maps lowercase runes that NFD cannot decompose to ASCII.
var foldReplacer = strings.NewReplacer(
	"ß", "ss",
	"ø", "o",
	"æ", "ae",
	"œ", "oe",
	"ł", "l",
	"đ", "d",
	"þ", "th",
	"ð", "d",
)

// stripMarks removes combining marks after canonical decomposition,
// turning é into e, ü into u and so on.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Email composes an address from generated name parts and a domain
// choice. The local part is the lowercased, ASCII-folded concatenation
// of both names plus a four-digit suffix against accidental collisions.
func (g *Generator) Email(first, last, domainChoice string) (string, error) {
	domain, err := g.resolveDomain(domainChoice)
	if err != nil {
		return "", err
	}

	local := asciiFold(strings.ToLower(first + last))
	if local == "" {
		local = g.pick(fallbackHandles)
	}

	suffix := fmt.Sprintf("%04d", g.src.Intn(10000))
	return local + suffix + "@" + domain, nil
}

func (g *Generator) resolveDomain(choice string) (string, error) {
	if maildomain.IsRandom(choice) {
		return g.pick(maildomain.All()), nil
	}
	if !maildomain.Valid(choice) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, choice)
	}
	return choice, nil
}

// asciiFold reduces s to ASCII letters and digits. Diacritics are
// stripped via Unicode decomposition; runes with no ASCII form are
// dropped so they never leak into an email local part.
func asciiFold(s string) string {
	s = foldReplacer.Replace(s)

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
