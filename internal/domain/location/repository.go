package location

import "context"

// Repository defines data access for location presets.
type Repository interface {
	// List retrieves all presets ordered by name.
	List(ctx context.Context) ([]Preset, error)

	// GetByName retrieves one preset by its unique name.
	GetByName(ctx context.Context, name string) (Preset, error)

	// Create persists a new preset.
	Create(ctx context.Context, preset Preset) (Preset, error)
}
