package repository

import (
	"context"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// StockWithRefs ligne de stock jointe avec le nom du produit, son unité et le nom de la zone,
// pour l'affichage des listes sans requête supplémentaire.
type StockWithRefs struct {
	entity.Stock
	ProductName string
	ProductUnit string
	ZoneName    string
}

// StockRepository port de persistance pour les relevés de stock.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	// List retourne tous les relevés, les plus récents d'abord.
	List(ctx context.Context) ([]*StockWithRefs, error)
	ListByProduct(ctx context.Context, productID string) ([]*StockWithRefs, error)
	ListByZone(ctx context.Context, zoneID string) ([]*StockWithRefs, error)
	Update(ctx context.Context, stock *entity.Stock) error
	Delete(ctx context.Context, id string) error
}
