// Package maildomain holds the pool of email domains identities are
// composed against, plus the sentinel that asks for a random pick.
package maildomain

import "strings"

// Random is the reserved domain choice meaning "pick one from the pool".
// It is never itself a pool member.
const Random = "random"

// pool is the build-time domain set, ordered for stable listing.
var pool = []string{
	"zburn.id",
	"mailfog.net",
	"driftbox.io",
	"paperpost.org",
	"hushline.email",
	"graymail.cc",
	"inkwell.codes",
	"sidedoor.dev",
}

// All returns the domain pool in stable order.
func All() []string {
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// Contains reports whether d is a pool member.
func Contains(d string) bool {
	for _, p := range pool {
		if p == d {
			return true
		}
	}
	return false
}

// IsRandom reports whether v is the random sentinel. An empty choice is
// treated the same way.
func IsRandom(v string) bool {
	return v == "" || v == Random
}

// Valid reports whether d is a syntactically plausible email domain:
// at least one interior dot, no whitespace, no '@'.
func Valid(d string) bool {
	if d == "" || d == Random {
		return false
	}
	if strings.ContainsAny(d, " \t\n@") {
		return false
	}
	if strings.HasPrefix(d, ".") || strings.HasSuffix(d, ".") {
		return false
	}
	return strings.Contains(d, ".")
}
