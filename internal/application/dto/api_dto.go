package dto

import (
	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

// Convertisseurs entité -> réponse JSON pour la surface /api.
// Les listes vides sortent en [] plutôt qu'en null.

// ToProductResponses convertit une liste de produits.
func ToProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Unit:        p.Unit,
			Description: p.Description,
			CreatedBy:   p.CreatedBy,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out
}

// ToZoneResponses convertit une liste de zones.
func ToZoneResponses(zones []*entity.Zone) []ZoneResponse {
	out := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, ZoneResponse{
			ID:         z.ID,
			Name:       z.Name,
			Type:       z.Type,
			Department: z.Department,
			City:       z.City,
			CreatedAt:  z.CreatedAt,
		})
	}
	return out
}

// ToStockResponses convertit une liste de relevés de stock joints.
func ToStockResponses(stocks []*repository.StockWithRefs) []StockResponse {
	out := make([]StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, StockResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			ZoneID:      s.ZoneID,
			ZoneName:    s.ZoneName,
			Quantity:    s.Quantity,
			Unit:        s.ProductUnit,
			Date:        s.Date,
			Notes:       s.Notes,
			CreatedBy:   s.CreatedBy,
		})
	}
	return out
}

// ToPriceResponses convertit une liste de relevés de prix joints.
func ToPriceResponses(prices []*repository.PriceWithRefs) []PriceResponse {
	out := make([]PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, PriceResponse{
			ID:          p.ID,
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			ZoneID:      p.ZoneID,
			ZoneName:    p.ZoneName,
			Price:       p.Amount,
			Unit:        p.ProductUnit,
			Date:        p.Date,
			Notes:       p.Notes,
			CreatedBy:   p.CreatedBy,
		})
	}
	return out
}
