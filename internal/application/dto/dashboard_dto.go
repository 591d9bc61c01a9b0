package dto

import "time"

// StatsResponse totaux par table (/api/stats et cartes du tableau de bord).
type StatsResponse struct {
	ProductsCount int `json:"products_count"`
	ZonesCount    int `json:"zones_count"`
	StocksCount   int `json:"stocks_count"`
	PricesCount   int `json:"prices_count"`
}

// LowStockAlertDTO ligne d'alerte stock faible affichée sur le tableau de bord.
type LowStockAlertDTO struct {
	ProductName string `json:"product_name"`
	ZoneName    string `json:"zone_name"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
}

// ObservationDTO dernier relevé (stock ou prix) affiché sur le tableau de bord.
type ObservationDTO struct {
	ProductName string    `json:"product_name"`
	ZoneName    string    `json:"zone_name"`
	Value       string    `json:"value"` // quantité ou prix, déjà formaté
	Unit        string    `json:"unit"`
	Date        time.Time `json:"date"`
}

// DashboardOverview données complètes du tableau de bord, prêtes pour les graphiques.
// Les paires Labels/Data alimentent directement Chart.js côté template.
type DashboardOverview struct {
	Stats StatsResponse

	CategoryLabels []string
	CategoryData   []int

	PriceDates []string  // jours formatés JJ/MM, ordre chronologique
	PriceData  []float64 // prix moyen du jour

	StockLabels []string // noms de produits tronqués pour l'axe du graphique
	StockData   []float64

	LowStockAlerts []LowStockAlertDTO
	LatestStocks   []ObservationDTO
	LatestPrices   []ObservationDTO
}
