package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hounsa/agrisuivi/internal/application/analytics"
	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/application/usecase"
)

// APIHandler surface JSON read-only sous /api. Toutes les routes sont derrière RequireUserAPI.
type APIHandler struct {
	productUC   *usecase.ProductUseCase
	zoneUC      *usecase.ZoneUseCase
	stockUC     *usecase.StockUseCase
	priceUC     *usecase.PriceUseCase
	dashboardUC *analytics.DashboardUseCase
}

// NewAPIHandler construit le handler.
func NewAPIHandler(productUC *usecase.ProductUseCase, zoneUC *usecase.ZoneUseCase, stockUC *usecase.StockUseCase, priceUC *usecase.PriceUseCase, dashboardUC *analytics.DashboardUseCase) *APIHandler {
	return &APIHandler{
		productUC:   productUC,
		zoneUC:      zoneUC,
		stockUC:     stockUC,
		priceUC:     priceUC,
		dashboardUC: dashboardUC,
	}
}

func apiError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Erreur lors du chargement",
	})
}

// Products GET /api/products.
func (h *APIHandler) Products(c *fiber.Ctx) error {
	products, err := h.productUC.List(c.Context())
	if err != nil {
		return apiError(c)
	}
	return c.JSON(dto.ToProductResponses(products))
}

// Zones GET /api/zones.
func (h *APIHandler) Zones(c *fiber.Ctx) error {
	zones, err := h.zoneUC.List(c.Context())
	if err != nil {
		return apiError(c)
	}
	return c.JSON(dto.ToZoneResponses(zones))
}

// Stocks GET /api/stocks.
func (h *APIHandler) Stocks(c *fiber.Ctx) error {
	stocks, err := h.stockUC.List(c.Context())
	if err != nil {
		return apiError(c)
	}
	return c.JSON(dto.ToStockResponses(stocks))
}

// Prices GET /api/prices.
func (h *APIHandler) Prices(c *fiber.Ctx) error {
	prices, err := h.priceUC.List(c.Context())
	if err != nil {
		return apiError(c)
	}
	return c.JSON(dto.ToPriceResponses(prices))
}

// Stats GET /api/stats : totaux par table.
func (h *APIHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardUC.GetStats(c.Context())
	if err != nil {
		return apiError(c)
	}
	return c.JSON(stats)
}
