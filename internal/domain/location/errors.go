package location

import "errors"

// Location domain errors
var (
	// ErrLocationUnavailable signals a failed device geolocation attempt
	// (permission denied, unsupported). Callers keep their prior state and
	// surface a retryable warning, never a fatal error.
	ErrLocationUnavailable = errors.New("device location is unavailable")

	ErrPresetNotFound = errors.New("location preset not found")
	ErrPresetExists   = errors.New("location preset with this name already exists")
)
