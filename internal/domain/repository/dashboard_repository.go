package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EntityCounts totaux par table, pour les cartes du tableau de bord et /api/stats.
type EntityCounts struct {
	Products int
	Zones    int
	Stocks   int
	Prices   int
}

// CategoryCount nombre de produits par catégorie.
type CategoryCount struct {
	Category string
	Count    int
}

// PricePoint prix moyen d'un jour calendaire.
type PricePoint struct {
	Day     time.Time
	Average decimal.Decimal
}

// StockLevel quantité relevée pour un produit (widget top stocks).
type StockLevel struct {
	ProductName string
	Quantity    decimal.Decimal
}

// LowStockAlert relevé sous le seuil, joint avec produit et zone pour l'affichage.
type LowStockAlert struct {
	ProductName string
	ZoneName    string
	Quantity    decimal.Decimal
	Unit        string
}

// DashboardRepository requêtes d'agrégation en lecture seule.
// Recalculées à chaque requête — pas de cache.
type DashboardRepository interface {
	CountAll(ctx context.Context) (EntityCounts, error)
	CountProductsByCategory(ctx context.Context) ([]CategoryCount, error)
	// AveragePriceByDay moyenne des prix par jour calendaire depuis `since`, triée par jour.
	AveragePriceByDay(ctx context.Context, since time.Time) ([]PricePoint, error)
	// TopStocks les `limit` plus grandes quantités relevées, avec le nom du produit.
	TopStocks(ctx context.Context, limit int) ([]StockLevel, error)
	// LowStocks relevés de quantité strictement inférieure au seuil, triés par quantité croissante.
	LowStocks(ctx context.Context, threshold decimal.Decimal, limit int) ([]LowStockAlert, error)
	LatestStocks(ctx context.Context, limit int) ([]*StockWithRefs, error)
	LatestPrices(ctx context.Context, limit int) ([]*PriceWithRefs, error)
}
