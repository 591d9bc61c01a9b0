package repository

import (
	"context"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// PriceWithRefs ligne de prix jointe avec le nom du produit, son unité et le nom de la zone.
type PriceWithRefs struct {
	entity.Price
	ProductName string
	ProductUnit string
	ZoneName    string
}

// PriceRepository port de persistance pour les relevés de prix.
type PriceRepository interface {
	Create(ctx context.Context, price *entity.Price) error
	GetByID(ctx context.Context, id string) (*entity.Price, error)
	// List retourne tous les relevés, les plus récents d'abord.
	List(ctx context.Context) ([]*PriceWithRefs, error)
	ListByProduct(ctx context.Context, productID string) ([]*PriceWithRefs, error)
	ListByZone(ctx context.Context, zoneID string) ([]*PriceWithRefs, error)
	// LatestPerProduct retourne le relevé le plus récent de chaque produit.
	LatestPerProduct(ctx context.Context) ([]*PriceWithRefs, error)
	Update(ctx context.Context, price *entity.Price) error
	Delete(ctx context.Context, id string) error
}
