package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo requêtes d'agrégation en lecture seule pour le tableau de bord.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construit l'adaptateur d'agrégation.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountAll retourne les totaux des quatre tables métier en une seule requête.
func (r *DashboardRepo) CountAll(ctx context.Context) (repository.EntityCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products),
	    (SELECT COUNT(*) FROM zones),
	    (SELECT COUNT(*) FROM stocks),
	    (SELECT COUNT(*) FROM prices)`
	var c repository.EntityCounts
	err := r.q.QueryRow(ctx, query).Scan(&c.Products, &c.Zones, &c.Stocks, &c.Prices)
	if err != nil {
		return repository.EntityCounts{}, fmt.Errorf("dashboard.CountAll: %w", err)
	}
	return c, nil
}

// CountProductsByCategory regroupe les produits par catégorie.
func (r *DashboardRepo) CountProductsByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	const query = `
	SELECT category, COUNT(*)
	FROM products
	GROUP BY category
	ORDER BY category`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.CountProductsByCategory: %w", err)
	}
	defer rows.Close()
	var results []repository.CategoryCount
	for rows.Next() {
		var c repository.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("dashboard.CountProductsByCategory scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// AveragePriceByDay moyenne des prix par jour calendaire depuis `since`, ordre chronologique.
func (r *DashboardRepo) AveragePriceByDay(ctx context.Context, since time.Time) ([]repository.PricePoint, error) {
	const query = `
	SELECT date_trunc('day', date) AS day, AVG(price)
	FROM prices
	WHERE date >= $1
	GROUP BY day
	ORDER BY day`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("dashboard.AveragePriceByDay: %w", err)
	}
	defer rows.Close()
	var results []repository.PricePoint
	for rows.Next() {
		var p repository.PricePoint
		if err := rows.Scan(&p.Day, &p.Average); err != nil {
			return nil, fmt.Errorf("dashboard.AveragePriceByDay scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// TopStocks les `limit` plus grandes quantités relevées, avec le nom du produit.
func (r *DashboardRepo) TopStocks(ctx context.Context, limit int) ([]repository.StockLevel, error) {
	const query = `
	SELECT p.name, s.quantity
	FROM stocks s
	JOIN products p ON p.id = s.product_id
	ORDER BY s.quantity DESC
	LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopStocks: %w", err)
	}
	defer rows.Close()
	var results []repository.StockLevel
	for rows.Next() {
		var s repository.StockLevel
		if err := rows.Scan(&s.ProductName, &s.Quantity); err != nil {
			return nil, fmt.Errorf("dashboard.TopStocks scan: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// LowStocks relevés strictement sous le seuil, quantité croissante, joints pour l'affichage.
func (r *DashboardRepo) LowStocks(ctx context.Context, threshold decimal.Decimal, limit int) ([]repository.LowStockAlert, error) {
	const query = `
	SELECT p.name, z.name, s.quantity, p.unit
	FROM stocks s
	JOIN products p ON p.id = s.product_id
	JOIN zones    z ON z.id = s.zone_id
	WHERE s.quantity < $1
	ORDER BY s.quantity
	LIMIT $2`
	rows, err := r.q.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LowStocks: %w", err)
	}
	defer rows.Close()
	var results []repository.LowStockAlert
	for rows.Next() {
		var a repository.LowStockAlert
		if err := rows.Scan(&a.ProductName, &a.ZoneName, &a.Quantity, &a.Unit); err != nil {
			return nil, fmt.Errorf("dashboard.LowStocks scan: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// LatestStocks les `limit` derniers relevés de stock.
func (r *DashboardRepo) LatestStocks(ctx context.Context, limit int) ([]*repository.StockWithRefs, error) {
	stockRepo := NewStockRepository(r.q)
	list, err := stockRepo.list(ctx, selectStockWithRefs+` ORDER BY s.date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LatestStocks: %w", err)
	}
	return list, nil
}

// LatestPrices les `limit` derniers relevés de prix.
func (r *DashboardRepo) LatestPrices(ctx context.Context, limit int) ([]*repository.PriceWithRefs, error) {
	priceRepo := NewPriceRepository(r.q)
	list, err := priceRepo.list(ctx, selectPriceWithRefs+` ORDER BY pr.date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LatestPrices: %w", err)
	}
	return list, nil
}
