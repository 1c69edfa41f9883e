package tui

import (
	"encoding/json"
	"fmt"

	"github.com/zarlcorp/core/pkg/zstore"

	"github.com/zarlcorp/zpersona/internal/maildomain"
)

// configEnvelope wraps a JSON-encoded config value so heterogeneous
// config types can share a single zstore collection.
type configEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Preferences holds the user's persisted generation defaults.
type Preferences struct {
	// CountryCode overrides geolocation when set.
	CountryCode string `json:"country_code,omitempty"`

	// DomainChoice is either an explicit pool domain or the random
	// sentinel.
	DomainChoice string `json:"domain_choice,omitempty"`

	// AutoDetect enables the startup geolocation lookup.
	AutoDetect bool `json:"auto_detect"`
}

func defaultPreferences() Preferences {
	return Preferences{
		DomainChoice: maildomain.Random,
		AutoDetect:   true,
	}
}

// loadConfig reads a typed config from the envelope collection.
// Missing or unreadable configs yield the zero value.
func loadConfig[T any](col *zstore.Collection[configEnvelope], key string) T {
	var zero T
	if col == nil {
		return zero
	}

	env, err := col.Get(key)
	if err != nil {
		return zero
	}

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return zero
	}

	return v
}

// saveConfig persists a typed config into the envelope collection.
func saveConfig[T any](col *zstore.Collection[configEnvelope], key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return col.Put(key, configEnvelope{Data: data})
}
