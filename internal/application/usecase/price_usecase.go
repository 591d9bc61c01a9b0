package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hounsa/agrisuivi/internal/application/dto"
	"github.com/hounsa/agrisuivi/internal/domain"
	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

// PriceUseCase cas d'usage CRUD pour les relevés de prix. Même forme que StockUseCase.
type PriceUseCase struct {
	repo        repository.PriceRepository
	productRepo repository.ProductRepository
	zoneRepo    repository.ZoneRepository
}

// NewPriceUseCase construit le cas d'usage.
func NewPriceUseCase(repo repository.PriceRepository, productRepo repository.ProductRepository, zoneRepo repository.ZoneRepository) *PriceUseCase {
	return &PriceUseCase{repo: repo, productRepo: productRepo, zoneRepo: zoneRepo}
}

// Create persiste un nouveau relevé après vérification de l'existence du produit et de la zone.
func (uc *PriceUseCase) Create(ctx context.Context, in dto.PriceForm, createdBy *string) (*entity.Price, error) {
	if err := uc.checkRefs(ctx, in.ProductID, in.ZoneID); err != nil {
		return nil, err
	}
	now := time.Now()
	price := &entity.Price{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		ZoneID:    in.ZoneID,
		Amount:    in.PriceValue(),
		Date:      in.ObservedAt(now),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedBy: createdBy,
		CreatedAt: now,
	}
	if err := uc.repo.Create(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// GetByID retourne le relevé, ou (nil, nil) s'il n'existe pas.
func (uc *PriceUseCase) GetByID(ctx context.Context, id string) (*entity.Price, error) {
	return uc.repo.GetByID(ctx, id)
}

// List retourne tous les relevés, les plus récents d'abord.
func (uc *PriceUseCase) List(ctx context.Context) ([]*repository.PriceWithRefs, error) {
	return uc.repo.List(ctx)
}

// ListByProduct retourne les relevés d'un produit.
func (uc *PriceUseCase) ListByProduct(ctx context.Context, productID string) ([]*repository.PriceWithRefs, error) {
	return uc.repo.ListByProduct(ctx, productID)
}

// ListByZone retourne les relevés d'une zone.
func (uc *PriceUseCase) ListByZone(ctx context.Context, zoneID string) ([]*repository.PriceWithRefs, error) {
	return uc.repo.ListByZone(ctx, zoneID)
}

// LatestPerProduct retourne le relevé le plus récent de chaque produit.
func (uc *PriceUseCase) LatestPerProduct(ctx context.Context) ([]*repository.PriceWithRefs, error) {
	return uc.repo.LatestPerProduct(ctx)
}

// Update écrase les champs du relevé (last-write-wins). Retourne (nil, nil) s'il n'existe pas.
func (uc *PriceUseCase) Update(ctx context.Context, id string, in dto.PriceForm) (*entity.Price, error) {
	price, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, nil
	}
	if err := uc.checkRefs(ctx, in.ProductID, in.ZoneID); err != nil {
		return nil, err
	}
	price.ProductID = in.ProductID
	price.ZoneID = in.ZoneID
	price.Amount = in.PriceValue()
	price.Date = in.ObservedAt(price.Date)
	price.Notes = strings.TrimSpace(in.Notes)
	if err := uc.repo.Update(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// Delete supprime le relevé ; no-op si l'id n'existe pas.
func (uc *PriceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *PriceUseCase) checkRefs(ctx context.Context, productID, zoneID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	zone, err := uc.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return err
	}
	if zone == nil {
		return domain.ErrNotFound
	}
	return nil
}
