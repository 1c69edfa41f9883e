package identity

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/maildomain"
)

// password character classes
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allPassChars = lowerChars + upperChars + digitChars + symbolChars

	defaultPasswordLen = 20
)

// adult age window for generated birthdays, inclusive
const (
	minAge = 18
	maxAge = 65
)

// ErrConfig marks a registry-data defect: an empty name pool or an
// unusable phone template. It is a build-time problem, not a runtime
// condition to recover from.
var ErrConfig = errors.New("bad locale data")

// ErrInvalidDomain is returned when an explicit domain choice fails
// syntactic validation.
var ErrInvalidDomain = errors.New("invalid email domain")

// Source supplies the randomness for generation. Implementations must
// return a uniform int in [0, n).
type Source interface {
	Intn(n int) int
}

// cryptoSource draws from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// Generator produces random identity data.
type Generator struct {
	src Source
}

// New creates a generator backed by crypto/rand.
func New() *Generator {
	return &Generator{src: cryptoSource{}}
}

// NewWithSource creates a generator with an explicit random source.
// Deterministic sources make generated content reproducible in tests.
func NewWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Generate produces a complete identity for a country. domainChoice is
// either an explicit domain, or empty / maildomain.Random to draw one
// from the pool. Any sub-generator failure aborts the whole record.
func (g *Generator) Generate(c locale.Country, domainChoice string) (Record, error) {
	first, last, err := g.Name(c)
	if err != nil {
		return Record{}, err
	}

	phone, err := g.Phone(c)
	if err != nil {
		return Record{}, err
	}

	email, err := g.Email(first, last, domainChoice)
	if err != nil {
		return Record{}, err
	}

	return Record{
		FirstName: first,
		LastName:  last,
		Country:   c.Code,
		Email:     email,
		Phone:     phone,
		Birthday:  g.Birthday(),
		Password:  g.Password(defaultPasswordLen),
		CreatedAt: time.Now(),
	}, nil
}

// GenerateCode resolves a country code through the registry and
// generates an identity for it. Unknown codes surface locale.ErrNotFound.
func (g *Generator) GenerateCode(code, domainChoice string) (Record, error) {
	c, err := locale.Lookup(code)
	if err != nil {
		return Record{}, fmt.Errorf("generate identity: %q: %w", code, err)
	}
	return g.Generate(c, domainChoice)
}

// Name picks a first/last name pair from the country's pools,
// independently and uniformly.
func (g *Generator) Name(c locale.Country) (first, last string, err error) {
	if len(c.FirstNames) == 0 {
		return "", "", fmt.Errorf("%w: %s: empty first name pool", ErrConfig, c.Code)
	}
	if len(c.LastNames) == 0 {
		return "", "", fmt.Errorf("%w: %s: empty last name pool", ErrConfig, c.Code)
	}
	return g.pick(c.FirstNames), g.pick(c.LastNames), nil
}

// Birthday generates a date of birth uniformly distributed over the
// days between maxAge and minAge years ago.
func (g *Generator) Birthday() time.Time {
	now := time.Now().UTC()
	oldest := now.AddDate(-maxAge, 0, 0)
	youngest := now.AddDate(-minAge, 0, 0)

	days := int(youngest.Sub(oldest).Hours() / 24)
	d := oldest.AddDate(0, 0, g.src.Intn(days+1))

	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Phone synthesizes a number from the country's template: literal
// characters are copied, each 'X' becomes a random digit. With
// NoZeroLead the first variable digit is drawn from 1-9.
func (g *Generator) Phone(c locale.Country) (string, error) {
	if !strings.Contains(c.PhoneFormat, "X") {
		return "", fmt.Errorf("%w: %s: phone format %q has no digit positions", ErrConfig, c.Code, c.PhoneFormat)
	}

	buf := []byte(c.PhoneFormat)
	first := true
	for i, ch := range buf {
		if ch != 'X' {
			continue
		}
		if first && c.NoZeroLead {
			buf[i] = '1' + byte(g.src.Intn(9))
		} else {
			buf[i] = '0' + byte(g.src.Intn(10))
		}
		first = false
	}

	return string(buf), nil
}

// Password generates a password of the given length containing at least
// one character from each class (lower, upper, digit, symbol).
func (g *Generator) Password(length int) string {
	if length < 4 {
		length = 4
	}

	buf := make([]byte, length)

	// guarantee one from each class
	buf[0] = g.pickByte(lowerChars)
	buf[1] = g.pickByte(upperChars)
	buf[2] = g.pickByte(digitChars)
	buf[3] = g.pickByte(symbolChars)

	for i := 4; i < length; i++ {
		buf[i] = g.pickByte(allPassChars)
	}

	// shuffle using Fisher-Yates
	for i := length - 1; i > 0; i-- {
		j := g.src.Intn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Countries lists the supported locales for selection UIs.
func (g *Generator) Countries() []locale.Country {
	return locale.All()
}

// Domains lists the email domain pool for selection UIs.
func (g *Generator) Domains() []string {
	return maildomain.All()
}

// pick returns a random element from a string slice.
func (g *Generator) pick(s []string) string {
	return s[g.src.Intn(len(s))]
}

// pickByte returns a random byte from a string.
func (g *Generator) pickByte(s string) byte {
	return s[g.src.Intn(len(s))]
}
