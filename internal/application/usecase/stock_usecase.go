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

// StockUseCase cas d'usage CRUD pour les relevés de stock.
// Chaque Create insère une nouvelle ligne d'observation — jamais de fusion.
type StockUseCase struct {
	repo        repository.StockRepository
	productRepo repository.ProductRepository
	zoneRepo    repository.ZoneRepository
}

// NewStockUseCase construit le cas d'usage.
func NewStockUseCase(repo repository.StockRepository, productRepo repository.ProductRepository, zoneRepo repository.ZoneRepository) *StockUseCase {
	return &StockUseCase{repo: repo, productRepo: productRepo, zoneRepo: zoneRepo}
}

// Create persiste un nouveau relevé après vérification de l'existence du produit et de la zone.
func (uc *StockUseCase) Create(ctx context.Context, in dto.StockForm, createdBy *string) (*entity.Stock, error) {
	if err := uc.checkRefs(ctx, in.ProductID, in.ZoneID); err != nil {
		return nil, err
	}
	now := time.Now()
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		ZoneID:    in.ZoneID,
		Quantity:  in.QuantityValue(),
		Date:      in.ObservedAt(now),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedBy: createdBy,
		CreatedAt: now,
	}
	if err := uc.repo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// GetByID retourne le relevé, ou (nil, nil) s'il n'existe pas.
func (uc *StockUseCase) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	return uc.repo.GetByID(ctx, id)
}

// List retourne tous les relevés, les plus récents d'abord.
func (uc *StockUseCase) List(ctx context.Context) ([]*repository.StockWithRefs, error) {
	return uc.repo.List(ctx)
}

// ListByProduct retourne les relevés d'un produit.
func (uc *StockUseCase) ListByProduct(ctx context.Context, productID string) ([]*repository.StockWithRefs, error) {
	return uc.repo.ListByProduct(ctx, productID)
}

// ListByZone retourne les relevés d'une zone.
func (uc *StockUseCase) ListByZone(ctx context.Context, zoneID string) ([]*repository.StockWithRefs, error) {
	return uc.repo.ListByZone(ctx, zoneID)
}

// Update écrase les champs du relevé (last-write-wins). Retourne (nil, nil) s'il n'existe pas.
func (uc *StockUseCase) Update(ctx context.Context, id string, in dto.StockForm) (*entity.Stock, error) {
	stock, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	if err := uc.checkRefs(ctx, in.ProductID, in.ZoneID); err != nil {
		return nil, err
	}
	stock.ProductID = in.ProductID
	stock.ZoneID = in.ZoneID
	stock.Quantity = in.QuantityValue()
	stock.Date = in.ObservedAt(stock.Date)
	stock.Notes = strings.TrimSpace(in.Notes)
	if err := uc.repo.Update(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// Delete supprime le relevé ; no-op si l'id n'existe pas.
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// checkRefs vérifie que le produit et la zone référencés existent.
func (uc *StockUseCase) checkRefs(ctx context.Context, productID, zoneID string) error {
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
