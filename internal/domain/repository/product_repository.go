package repository

import (
	"context"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// ProductRepository port de persistance pour les produits.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List retourne tous les produits triés par nom (pour les listes et les menus déroulants).
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete est un no-op si l'id n'existe pas.
	Delete(ctx context.Context, id string) error
}
