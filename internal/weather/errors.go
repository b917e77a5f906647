package weather

import (
	"errors"
	"fmt"
)

// ErrLocationNotFound marks a forecast request for a location the
// provider could not resolve. Callers processing multiple locations
// should skip the offender and continue with the rest.
var ErrLocationNotFound = errors.New("location not found")

// ProviderError is a non-success response from the remote provider.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}
