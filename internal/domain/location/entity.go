package location

import "time"

// Preset is a named office location offered as a quick-select alternative to
// manual map interaction. Nil coordinates mark a symbolic preset ("Remote"):
// the free map / device-geolocation path applies until the user supplies a
// fix.
type Preset struct {
	ID        string
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates reports whether the preset carries a fixed coordinate pair.
func (p *Preset) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Resolved is the immutable location evidence attached to a checkclock
// record at creation time.
type Resolved struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
