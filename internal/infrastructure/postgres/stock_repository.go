package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implémentation du port StockRepository sur PostgreSQL (pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construit l'adaptateur de persistance des relevés de stock.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// selectStockWithRefs colonnes des listes : relevé + nom/unité du produit + nom de la zone.
const selectStockWithRefs = `
	SELECT s.id, s.product_id, s.zone_id, s.quantity, s.date, s.notes, s.created_by, s.created_at,
	       p.name, p.unit, z.name
	FROM stocks s
	JOIN products p ON p.id = s.product_id
	JOIN zones    z ON z.id = s.zone_id`

// Create persiste un nouveau relevé de stock.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, product_id, zone_id, quantity, date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		stock.ID, stock.ProductID, stock.ZoneID, stock.Quantity,
		stock.Date, stock.Notes, stock.CreatedBy, stock.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID retourne le relevé, ou (nil, nil) s'il n'existe pas.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	query := `
		SELECT id, product_id, zone_id, quantity, date, notes, created_by, created_at
		FROM stocks WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductID, &s.ZoneID, &s.Quantity, &s.Date, &s.Notes, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// List retourne tous les relevés, les plus récents d'abord.
func (r *StockRepo) List(ctx context.Context) ([]*repository.StockWithRefs, error) {
	return r.list(ctx, selectStockWithRefs+` ORDER BY s.date DESC`)
}

// ListByProduct retourne les relevés d'un produit, les plus récents d'abord.
func (r *StockRepo) ListByProduct(ctx context.Context, productID string) ([]*repository.StockWithRefs, error) {
	return r.list(ctx, selectStockWithRefs+` WHERE s.product_id = $1 ORDER BY s.date DESC`, productID)
}

// ListByZone retourne les relevés d'une zone, les plus récents d'abord.
func (r *StockRepo) ListByZone(ctx context.Context, zoneID string) ([]*repository.StockWithRefs, error) {
	return r.list(ctx, selectStockWithRefs+` WHERE s.zone_id = $1 ORDER BY s.date DESC`, zoneID)
}

func (r *StockRepo) list(ctx context.Context, query string, args ...any) ([]*repository.StockWithRefs, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockWithRefs
	for rows.Next() {
		var s repository.StockWithRefs
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.ZoneID, &s.Quantity, &s.Date, &s.Notes, &s.CreatedBy, &s.CreatedAt,
			&s.ProductName, &s.ProductUnit, &s.ZoneName,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update écrase les champs du relevé.
func (r *StockRepo) Update(ctx context.Context, stock *entity.Stock) error {
	query := `
		UPDATE stocks SET product_id = $2, zone_id = $3, quantity = $4, date = $5, notes = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		stock.ID, stock.ProductID, stock.ZoneID, stock.Quantity, stock.Date, stock.Notes,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete supprime le relevé ; no-op si l'id n'existe pas.
func (r *StockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
