// Package identity generates disposable personal data shaped by a
// country configuration. Generation is pure: immutable registries in,
// one complete record out, with all randomness behind an injectable
// source (crypto/rand by default).
package identity

import "time"

// Record holds a complete generated persona.
type Record struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Country   string    `json:"country"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Birthday  time.Time `json:"birthday"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
