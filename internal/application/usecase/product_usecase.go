package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

// ProductUseCase cas d'usage CRUD pour les produits.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create persiste un nouveau produit. createdBy est l'id de l'utilisateur connecté.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductForm, createdBy *string) (*entity.Product, error) {
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Unit:        in.Unit,
		Description: strings.TrimSpace(in.Description),
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retourne le produit, ou (nil, nil) s'il n'existe pas.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// List retourne tous les produits triés par nom.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.List(ctx)
}

// Update écrase les champs du produit avec ceux du formulaire (last-write-wins).
// Retourne (nil, nil) si le produit n'existe pas.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductForm) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Category = in.Category
	product.Unit = in.Unit
	product.Description = strings.TrimSpace(in.Description)
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete supprime le produit ; no-op si l'id n'existe pas.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
