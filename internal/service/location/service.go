package location

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/fixtures"
)

type LocationServiceImpl struct {
	repo location.Repository
}

func NewLocationService(repo location.Repository) location.Service {
	return &LocationServiceImpl{repo: repo}
}

// ListPresets implements location.Service.
func (s *LocationServiceImpl) ListPresets(ctx context.Context) ([]location.PresetResponse, error) {
	presets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list location presets: %w", err)
	}

	responses := make([]location.PresetResponse, 0, len(presets))
	for _, p := range presets {
		responses = append(responses, location.PresetResponse{
			ID:        p.ID,
			Name:      p.Name,
			Address:   p.Address,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}
	return responses, nil
}

// Resolve implements location.Service. The resolver itself is pure; this
// wrapper only loads the preset table for it.
func (s *LocationServiceImpl) Resolve(ctx context.Context, req location.ResolveRequest) (location.Resolved, error) {
	if err := req.Validate(); err != nil {
		return location.Resolved{}, err
	}

	presets, err := s.repo.List(ctx)
	if err != nil {
		return location.Resolved{}, fmt.Errorf("failed to load location presets: %w", err)
	}

	resolver := location.NewResolver(presets)
	return resolver.Resolve(req.Prior, req.Choice())
}

// SeedDefaults implements location.Service. A fresh install gets the
// standard quick-select presets; any existing row means an admin already
// curated the table and it is left alone.
func (s *LocationServiceImpl) SeedDefaults(ctx context.Context) error {
	presets, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check location presets: %w", err)
	}
	if len(presets) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, preset := range fixtures.GetDefaultLocationPresets() {
		preset.ID = uuid.New().String()
		preset.CreatedAt = now
		preset.UpdatedAt = now
		if _, err := s.repo.Create(ctx, preset); err != nil {
			return fmt.Errorf("failed to seed location preset %q: %w", preset.Name, err)
		}
	}
	return nil
}
