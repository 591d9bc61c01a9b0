package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hounsa/agrisuivi/internal/application/analytics"
	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

// fakeDashboardRepo implémentation en mémoire du port DashboardRepository.
// Chaque champ est rendu tel quel ; le filtrage par seuil est simulé dans LowStocks.
type fakeDashboardRepo struct {
	counts     repository.EntityCounts
	categories []repository.CategoryCount
	trend      []repository.PricePoint
	top        []repository.StockLevel
	lowStocks  []repository.LowStockAlert
	stocks     []*repository.StockWithRefs
	prices     []*repository.PriceWithRefs

	gotThreshold decimal.Decimal
	gotSince     time.Time
}

func (r *fakeDashboardRepo) CountAll(context.Context) (repository.EntityCounts, error) {
	return r.counts, nil
}

func (r *fakeDashboardRepo) CountProductsByCategory(context.Context) ([]repository.CategoryCount, error) {
	return r.categories, nil
}

func (r *fakeDashboardRepo) AveragePriceByDay(_ context.Context, since time.Time) ([]repository.PricePoint, error) {
	r.gotSince = since
	return r.trend, nil
}

func (r *fakeDashboardRepo) TopStocks(_ context.Context, limit int) ([]repository.StockLevel, error) {
	if len(r.top) > limit {
		return r.top[:limit], nil
	}
	return r.top, nil
}

func (r *fakeDashboardRepo) LowStocks(_ context.Context, threshold decimal.Decimal, _ int) ([]repository.LowStockAlert, error) {
	r.gotThreshold = threshold
	var out []repository.LowStockAlert
	for _, a := range r.lowStocks {
		if a.Quantity.LessThan(threshold) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeDashboardRepo) LatestStocks(_ context.Context, limit int) ([]*repository.StockWithRefs, error) {
	if len(r.stocks) > limit {
		return r.stocks[:limit], nil
	}
	return r.stocks, nil
}

func (r *fakeDashboardRepo) LatestPrices(_ context.Context, limit int) ([]*repository.PriceWithRefs, error) {
	if len(r.prices) > limit {
		return r.prices[:limit], nil
	}
	return r.prices, nil
}

func TestGetStats(t *testing.T) {
	repo := &fakeDashboardRepo{
		counts: repository.EntityCounts{Products: 10, Zones: 8, Stocks: 30, Prices: 40},
	}
	uc := analytics.NewDashboardUseCase(repo, analytics.Config{})

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.ProductsCount)
	assert.Equal(t, 8, stats.ZonesCount)
	assert.Equal(t, 30, stats.StocksCount)
	assert.Equal(t, 40, stats.PricesCount)
}

func TestGetOverview_AssembleToutesLesSections(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeDashboardRepo{
		counts: repository.EntityCounts{Products: 2, Zones: 1, Stocks: 3, Prices: 2},
		categories: []repository.CategoryCount{
			{Category: "Céréale", Count: 4},
			{Category: "Légume", Count: 2},
		},
		trend: []repository.PricePoint{
			{Day: day, Average: decimal.NewFromInt(500)},
			{Day: day.AddDate(0, 0, 1), Average: decimal.NewFromInt(525)},
		},
		top: []repository.StockLevel{
			{ProductName: "Maïs", Quantity: decimal.NewFromInt(4500)},
		},
		lowStocks: []repository.LowStockAlert{
			{ProductName: "Tomate", ZoneName: "Marché Dantokpa", Quantity: decimal.NewFromInt(45), Unit: "kg"},
			{ProductName: "Riz", ZoneName: "Dépôt de Parakou", Quantity: decimal.NewFromInt(150), Unit: "sac"},
		},
		stocks: []*repository.StockWithRefs{
			{Stock: entity.Stock{Quantity: decimal.NewFromInt(45), Date: day}, ProductName: "Tomate", ProductUnit: "kg", ZoneName: "Marché Dantokpa"},
		},
		prices: []*repository.PriceWithRefs{
			{Price: entity.Price{Amount: decimal.NewFromInt(500), Date: day}, ProductName: "Maïs", ProductUnit: "kg", ZoneName: "Marché Dantokpa"},
		},
	}
	uc := analytics.NewDashboardUseCase(repo, analytics.Config{LowStockThreshold: 100, TrendDays: 7})

	overview, err := uc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Stats.ProductsCount)
	assert.Equal(t, []string{"Céréale", "Légume"}, overview.CategoryLabels)
	assert.Equal(t, []int{4, 2}, overview.CategoryData)

	assert.Equal(t, []string{"10/06", "11/06"}, overview.PriceDates)
	assert.Equal(t, []float64{500, 525}, overview.PriceData)

	assert.Equal(t, []string{"Maïs"}, overview.StockLabels)
	assert.Equal(t, []float64{4500}, overview.StockData)

	// Seul le relevé sous le seuil de 100 devient une alerte
	require.Len(t, overview.LowStockAlerts, 1)
	assert.Equal(t, "Tomate", overview.LowStockAlerts[0].ProductName)
	assert.Equal(t, "45", overview.LowStockAlerts[0].Quantity)
	assert.True(t, repo.gotThreshold.Equal(decimal.NewFromInt(100)))

	require.Len(t, overview.LatestStocks, 1)
	assert.Equal(t, "Tomate", overview.LatestStocks[0].ProductName)
	require.Len(t, overview.LatestPrices, 1)
	assert.Equal(t, "500", overview.LatestPrices[0].Value)
}

func TestGetOverview_SansDonneesDeCategorie(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{}, analytics.Config{})

	overview, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Aucune donnée"}, overview.CategoryLabels)
	assert.Equal(t, []int{1}, overview.CategoryData)
}

func TestGetOverview_FenetreDeTendanceConfigurable(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo, analytics.Config{TrendDays: 30})

	_, err := uc.GetOverview(context.Background())
	require.NoError(t, err)

	// La borne basse doit remonter d'environ 30 jours
	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, repo.gotSince, time.Minute)
}
