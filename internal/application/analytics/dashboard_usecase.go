// Package analytics contient le cas d'usage du tableau de bord :
// agrégats en lecture seule recalculés à chaque requête.
package analytics

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

const (
	dashboardTopStocks    = 5  // barres du widget top stocks
	dashboardLowStockRows = 10 // lignes max du tableau d'alertes
	dashboardLatestRows   = 5  // derniers relevés affichés
	chartLabelMaxRunes    = 15 // troncature des noms de produits sur l'axe
)

// Config seuils et fenêtres du tableau de bord.
type Config struct {
	LowStockThreshold int // quantité en dessous de laquelle un relevé devient une alerte
	TrendDays         int // fenêtre glissante de la courbe des prix
}

// DashboardUseCase construit la vue d'ensemble du tableau de bord.
//
// Source de données : DashboardRepository (requêtes read-only).
// Aucune écriture, aucun cache — tout est recalculé par requête.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	cfg  Config
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(repo repository.DashboardRepository, cfg Config) *DashboardUseCase {
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 100
	}
	if cfg.TrendDays <= 0 {
		cfg.TrendDays = 7
	}
	return &DashboardUseCase{repo: repo, cfg: cfg}
}

// GetStats retourne les totaux par table (cartes du tableau de bord et /api/stats).
func (uc *DashboardUseCase) GetStats(ctx context.Context) (dto.StatsResponse, error) {
	counts, err := uc.repo.CountAll(ctx)
	if err != nil {
		return dto.StatsResponse{}, fmt.Errorf("dashboard: totaux: %w", err)
	}
	return dto.StatsResponse{
		ProductsCount: counts.Products,
		ZonesCount:    counts.Zones,
		StocksCount:   counts.Stocks,
		PricesCount:   counts.Prices,
	}, nil
}

// GetOverview assemble toutes les données du tableau de bord.
//
// Trois goroutines regroupent les sept requêtes d'agrégation :
//  1. totaux + répartition par catégorie
//  2. courbe des prix + top stocks
//  3. alertes stock faible + derniers relevés
func (uc *DashboardUseCase) GetOverview(ctx context.Context) (*dto.DashboardOverview, error) {
	since := time.Now().AddDate(0, 0, -uc.cfg.TrendDays)
	threshold := decimal.NewFromInt(int64(uc.cfg.LowStockThreshold))

	type countsResult struct {
		counts     repository.EntityCounts
		categories []repository.CategoryCount
		err        error
	}
	type chartsResult struct {
		trend []repository.PricePoint
		top   []repository.StockLevel
		err   error
	}
	type rowsResult struct {
		alerts       []repository.LowStockAlert
		latestStocks []*repository.StockWithRefs
		latestPrices []*repository.PriceWithRefs
		err          error
	}

	countsCh := make(chan countsResult, 1)
	chartsCh := make(chan chartsResult, 1)
	rowsCh := make(chan rowsResult, 1)

	go func() {
		counts, err := uc.repo.CountAll(ctx)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		categories, err := uc.repo.CountProductsByCategory(ctx)
		countsCh <- countsResult{counts: counts, categories: categories, err: err}
	}()
	go func() {
		trend, err := uc.repo.AveragePriceByDay(ctx, since)
		if err != nil {
			chartsCh <- chartsResult{err: err}
			return
		}
		top, err := uc.repo.TopStocks(ctx, dashboardTopStocks)
		chartsCh <- chartsResult{trend: trend, top: top, err: err}
	}()
	go func() {
		alerts, err := uc.repo.LowStocks(ctx, threshold, dashboardLowStockRows)
		if err != nil {
			rowsCh <- rowsResult{err: err}
			return
		}
		stocks, err := uc.repo.LatestStocks(ctx, dashboardLatestRows)
		if err != nil {
			rowsCh <- rowsResult{err: err}
			return
		}
		prices, err := uc.repo.LatestPrices(ctx, dashboardLatestRows)
		rowsCh <- rowsResult{alerts: alerts, latestStocks: stocks, latestPrices: prices, err: err}
	}()

	counts := <-countsCh
	charts := <-chartsCh
	rows := <-rowsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: totaux et catégories: %w", counts.err)
	}
	if charts.err != nil {
		return nil, fmt.Errorf("dashboard: graphiques: %w", charts.err)
	}
	if rows.err != nil {
		return nil, fmt.Errorf("dashboard: alertes et derniers relevés: %w", rows.err)
	}

	out := &dto.DashboardOverview{
		Stats: dto.StatsResponse{
			ProductsCount: counts.counts.Products,
			ZonesCount:    counts.counts.Zones,
			StocksCount:   counts.counts.Stocks,
			PricesCount:   counts.counts.Prices,
		},
	}

	for _, c := range counts.categories {
		out.CategoryLabels = append(out.CategoryLabels, c.Category)
		out.CategoryData = append(out.CategoryData, c.Count)
	}
	if len(out.CategoryLabels) == 0 {
		// Le graphique en anneau a besoin d'au moins une part
		out.CategoryLabels = []string{"Aucune donnée"}
		out.CategoryData = []int{1}
	}

	for _, p := range charts.trend {
		out.PriceDates = append(out.PriceDates, p.Day.Format("02/01"))
		avg, _ := p.Average.Float64()
		out.PriceData = append(out.PriceData, avg)
	}

	for _, s := range charts.top {
		out.StockLabels = append(out.StockLabels, truncateLabel(s.ProductName))
		qty, _ := s.Quantity.Float64()
		out.StockData = append(out.StockData, qty)
	}

	for _, a := range rows.alerts {
		out.LowStockAlerts = append(out.LowStockAlerts, dto.LowStockAlertDTO{
			ProductName: a.ProductName,
			ZoneName:    a.ZoneName,
			Quantity:    a.Quantity.String(),
			Unit:        a.Unit,
		})
	}
	for _, s := range rows.latestStocks {
		out.LatestStocks = append(out.LatestStocks, dto.ObservationDTO{
			ProductName: s.ProductName,
			ZoneName:    s.ZoneName,
			Value:       s.Quantity.String(),
			Unit:        s.ProductUnit,
			Date:        s.Date,
		})
	}
	for _, p := range rows.latestPrices {
		out.LatestPrices = append(out.LatestPrices, dto.ObservationDTO{
			ProductName: p.ProductName,
			ZoneName:    p.ZoneName,
			Value:       p.Amount.String(),
			Unit:        p.ProductUnit,
			Date:        p.Date,
		})
	}

	return out, nil
}

// truncateLabel coupe les noms trop longs pour l'axe du graphique.
func truncateLabel(s string) string {
	if utf8.RuneCountInString(s) <= chartLabelMaxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:chartLabelMaxRunes]) + "..."
}
