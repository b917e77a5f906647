package weather

import "time"

// DefaultFreshness is how long a cached snapshot stays usable before a
// lookup goes back to the provider.
const DefaultFreshness = time.Hour

// IsFresh reports whether a snapshot observed at observedAt is still
// usable at now, given the staleness threshold ttl.
func IsFresh(observedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(observedAt) < ttl
}
