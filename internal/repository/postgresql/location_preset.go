package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjahub/hris-portal-go/internal/domain/location"
	"github.com/kerjahub/hris-portal-go/internal/pkg/database"
)

type locationPresetRepositoryImpl struct {
	db *database.DB
}

func NewLocationPresetRepository(db *database.DB) location.Repository {
	return &locationPresetRepositoryImpl{db: db}
}

// List implements location.Repository.
func (r *locationPresetRepositoryImpl) List(ctx context.Context) ([]location.Preset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM location_presets
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []location.Preset
	for rows.Next() {
		var p location.Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// GetByName implements location.Repository.
func (r *locationPresetRepositoryImpl) GetByName(ctx context.Context, name string) (location.Preset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM location_presets
		WHERE name = $1
	`

	var p location.Preset
	err := q.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.Address, &p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Preset{}, location.ErrPresetNotFound
		}
		return location.Preset{}, err
	}
	return p, nil
}

// Create implements location.Repository.
func (r *locationPresetRepositoryImpl) Create(ctx context.Context, preset location.Preset) (location.Preset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO location_presets (id, name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, address, latitude, longitude, created_at, updated_at
	`

	var created location.Preset
	err := q.QueryRow(ctx, query, preset.ID, preset.Name, preset.Address, preset.Latitude, preset.Longitude).Scan(
		&created.ID,
		&created.Name,
		&created.Address,
		&created.Latitude,
		&created.Longitude,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.Preset{}, location.ErrPresetExists
		}
		return location.Preset{}, err
	}
	return created, nil
}
