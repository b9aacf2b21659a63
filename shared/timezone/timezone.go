// Package timezone resolves the application timezone (APP_TIMEZONE, IANA names only) and
// renders instants in it. Calendar dates stored in DATE columns are kept at UTC midnight
// by the callers; only instants pass through this package.
package timezone

import (
	"estate/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	location *time.Location
	once     sync.Once
)

// Location returns the application timezone. It is loaded on first use and falls back to UTC.
func Location() *time.Location {
	once.Do(func() {
		location = load(config.Get().App.Timezone)
	})

	return location
}

// Now returns the current instant in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}
