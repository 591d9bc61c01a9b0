package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implémentation du port PriceRepository sur PostgreSQL (pool ou tx).
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construit l'adaptateur de persistance des relevés de prix.
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

const selectPriceWithRefs = `
	SELECT pr.id, pr.product_id, pr.zone_id, pr.price, pr.date, pr.notes, pr.created_by, pr.created_at,
	       p.name, p.unit, z.name
	FROM prices pr
	JOIN products p ON p.id = pr.product_id
	JOIN zones    z ON z.id = pr.zone_id`

// Create persiste un nouveau relevé de prix.
func (r *PriceRepo) Create(ctx context.Context, price *entity.Price) error {
	query := `
		INSERT INTO prices (id, product_id, zone_id, price, date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		price.ID, price.ProductID, price.ZoneID, price.Amount,
		price.Date, price.Notes, price.CreatedBy, price.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

// GetByID retourne le relevé, ou (nil, nil) s'il n'existe pas.
func (r *PriceRepo) GetByID(ctx context.Context, id string) (*entity.Price, error) {
	query := `
		SELECT id, product_id, zone_id, price, date, notes, created_by, created_at
		FROM prices WHERE id = $1`
	var p entity.Price
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProductID, &p.ZoneID, &p.Amount, &p.Date, &p.Notes, &p.CreatedBy, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price: %w", err)
	}
	return &p, nil
}

// List retourne tous les relevés, les plus récents d'abord.
func (r *PriceRepo) List(ctx context.Context) ([]*repository.PriceWithRefs, error) {
	return r.list(ctx, selectPriceWithRefs+` ORDER BY pr.date DESC`)
}

// ListByProduct retourne les relevés d'un produit, les plus récents d'abord.
func (r *PriceRepo) ListByProduct(ctx context.Context, productID string) ([]*repository.PriceWithRefs, error) {
	return r.list(ctx, selectPriceWithRefs+` WHERE pr.product_id = $1 ORDER BY pr.date DESC`, productID)
}

// ListByZone retourne les relevés d'une zone, les plus récents d'abord.
func (r *PriceRepo) ListByZone(ctx context.Context, zoneID string) ([]*repository.PriceWithRefs, error) {
	return r.list(ctx, selectPriceWithRefs+` WHERE pr.zone_id = $1 ORDER BY pr.date DESC`, zoneID)
}

// LatestPerProduct retourne le relevé le plus récent de chaque produit.
// Jointure sur le max(date) par produit, comme l'écran « derniers prix ».
func (r *PriceRepo) LatestPerProduct(ctx context.Context) ([]*repository.PriceWithRefs, error) {
	query := selectPriceWithRefs + `
	JOIN (
		SELECT product_id, MAX(date) AS max_date
		FROM prices
		GROUP BY product_id
	) last ON last.product_id = pr.product_id AND last.max_date = pr.date
	ORDER BY pr.date DESC`
	return r.list(ctx, query)
}

func (r *PriceRepo) list(ctx context.Context, query string, args ...any) ([]*repository.PriceWithRefs, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()
	var list []*repository.PriceWithRefs
	for rows.Next() {
		var p repository.PriceWithRefs
		if err := rows.Scan(
			&p.ID, &p.ProductID, &p.ZoneID, &p.Amount, &p.Date, &p.Notes, &p.CreatedBy, &p.CreatedAt,
			&p.ProductName, &p.ProductUnit, &p.ZoneName,
		); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update écrase les champs du relevé.
func (r *PriceRepo) Update(ctx context.Context, price *entity.Price) error {
	query := `
		UPDATE prices SET product_id = $2, zone_id = $3, price = $4, date = $5, notes = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		price.ID, price.ProductID, price.ZoneID, price.Amount, price.Date, price.Notes,
	)
	if err != nil {
		return fmt.Errorf("update price: %w", err)
	}
	return nil
}

// Delete supprime le relevé ; no-op si l'id n'existe pas.
func (r *PriceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price: %w", err)
	}
	return nil
}
