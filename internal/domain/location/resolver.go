package location

import (
	"github.com/kerjahub/hris-portal-go/internal/pkg/utils"
)

// CustomName labels a resolution produced by a map click or device fix when
// no preset was chosen first.
const CustomName = "Custom"

// Choice is a user's symbolic location selection: a preset key, an explicit
// coordinate pair from a map click or device geolocation, or both across
// successive interactions. Unavailable marks a failed device geolocation
// attempt.
type Choice struct {
	PresetKey   string
	Latitude    *float64
	Longitude   *float64
	Address     string
	Unavailable bool
}

// Resolver turns a symbolic choice into the record's immutable location
// evidence. It performs no I/O: presets are handed in by whoever loaded
// them.
type Resolver struct {
	presets map[string]Preset
}

func NewResolver(presets []Preset) *Resolver {
	m := make(map[string]Preset, len(presets))
	for _, p := range presets {
		m[p.Name] = p
	}
	return &Resolver{presets: m}
}

// Resolve applies one choice on top of the prior resolution and returns the
// new value. Resolution rules:
//
//   - A preset with fixed coordinates wins outright: any previously chosen
//     map position is overwritten.
//   - A symbolic preset (no coordinates) keeps its name, clears the
//     coordinates, and carries the user-entered address until a map fix
//     arrives.
//   - Explicit coordinates keep the prior name (or "Custom" when there is
//     none) and are normalized to 6 decimal places.
//   - A failed device fix returns ErrLocationUnavailable and the prior value
//     unchanged, so the caller can retry.
func (r *Resolver) Resolve(prior Resolved, choice Choice) (Resolved, error) {
	if choice.Unavailable {
		return prior, ErrLocationUnavailable
	}

	if choice.PresetKey != "" {
		preset, ok := r.presets[choice.PresetKey]
		if !ok {
			return prior, ErrPresetNotFound
		}
		if preset.HasCoordinates() {
			lat := utils.RoundCoordinate(*preset.Latitude)
			lng := utils.RoundCoordinate(*preset.Longitude)
			return Resolved{
				Name:      preset.Name,
				Address:   preset.Address,
				Latitude:  &lat,
				Longitude: &lng,
			}, nil
		}
		address := choice.Address
		if address == "" {
			address = prior.Address
		}
		return Resolved{
			Name:    preset.Name,
			Address: address,
		}, nil
	}

	if choice.Latitude != nil && choice.Longitude != nil {
		lat := utils.RoundCoordinate(*choice.Latitude)
		lng := utils.RoundCoordinate(*choice.Longitude)
		name := prior.Name
		if name == "" {
			name = CustomName
		}
		return Resolved{
			Name:      name,
			Address:   prior.Address,
			Latitude:  &lat,
			Longitude: &lng,
		}, nil
	}

	// Nothing actionable in the choice; keep what we had.
	return prior, nil
}

// Nearest returns the preset with fixed coordinates closest to the given
// device fix, and its distance in meters. Symbolic presets are skipped.
func (r *Resolver) Nearest(lat, lng float64) (Preset, float64, bool) {
	var (
		best     Preset
		bestDist float64
		found    bool
	)
	for _, p := range r.presets {
		if !p.HasCoordinates() {
			continue
		}
		d := utils.HaversineDistanceMeters(lat, lng, *p.Latitude, *p.Longitude)
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, bestDist, found
}
