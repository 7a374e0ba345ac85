package location

import (
	"context"

	"github.com/kerjahub/hris-portal-go/internal/pkg/validator"
)

// ResolveRequest carries one location choice plus the caller's prior
// resolution, so a failed device fix can leave it untouched.
type ResolveRequest struct {
	PresetKey   string   `json:"preset_key,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Address     string   `json:"address,omitempty"`
	Unavailable bool     `json:"unavailable,omitempty"`

	Prior Resolved `json:"prior"`
}

func (r *ResolveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Choice converts the request into a resolver choice.
func (r *ResolveRequest) Choice() Choice {
	return Choice{
		PresetKey:   r.PresetKey,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Address:     r.Address,
		Unavailable: r.Unavailable,
	}
}

// PresetResponse is the read model for one preset.
type PresetResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Service defines business logic for location presets and resolution.
type Service interface {
	// ListPresets retrieves all presets.
	ListPresets(ctx context.Context) ([]PresetResponse, error)

	// Resolve turns a symbolic choice into location evidence.
	Resolve(ctx context.Context, req ResolveRequest) (Resolved, error)

	// SeedDefaults populates the preset table on a fresh install. It is a
	// no-op when any preset already exists.
	SeedDefaults(ctx context.Context) error
}
