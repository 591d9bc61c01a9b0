package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

var _ repository.ZoneRepository = (*ZoneRepo)(nil)

// ZoneRepo implémentation du port ZoneRepository sur PostgreSQL (pool ou tx).
type ZoneRepo struct {
	q Querier
}

// NewZoneRepository construit l'adaptateur de persistance des zones.
func NewZoneRepository(q Querier) *ZoneRepo {
	return &ZoneRepo{q: q}
}

// Create persiste une nouvelle zone.
func (r *ZoneRepo) Create(ctx context.Context, zone *entity.Zone) error {
	query := `
		INSERT INTO zones (id, name, type, department, city, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		zone.ID, zone.Name, zone.Type, zone.Department, zone.City, zone.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

// GetByID retourne la zone, ou (nil, nil) si elle n'existe pas.
func (r *ZoneRepo) GetByID(ctx context.Context, id string) (*entity.Zone, error) {
	query := `
		SELECT id, name, type, department, city, created_at
		FROM zones WHERE id = $1`
	var z entity.Zone
	err := r.q.QueryRow(ctx, query, id).Scan(
		&z.ID, &z.Name, &z.Type, &z.Department, &z.City, &z.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return &z, nil
}

// List retourne toutes les zones triées par nom.
func (r *ZoneRepo) List(ctx context.Context) ([]*entity.Zone, error) {
	query := `
		SELECT id, name, type, department, city, created_at
		FROM zones ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		var z entity.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Type, &z.Department, &z.City, &z.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}

// Update écrase les champs de la zone.
func (r *ZoneRepo) Update(ctx context.Context, zone *entity.Zone) error {
	query := `
		UPDATE zones SET name = $2, type = $3, department = $4, city = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		zone.ID, zone.Name, zone.Type, zone.Department, zone.City,
	)
	if err != nil {
		return fmt.Errorf("update zone: %w", err)
	}
	return nil
}

// Delete supprime la zone ; no-op si l'id n'existe pas.
func (r *ZoneRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	return nil
}
