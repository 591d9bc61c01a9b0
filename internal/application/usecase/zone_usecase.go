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

// ZoneUseCase cas d'usage CRUD pour les zones.
type ZoneUseCase struct {
	repo repository.ZoneRepository
}

// NewZoneUseCase construit le cas d'usage.
func NewZoneUseCase(repo repository.ZoneRepository) *ZoneUseCase {
	return &ZoneUseCase{repo: repo}
}

// Create persiste une nouvelle zone.
func (uc *ZoneUseCase) Create(ctx context.Context, in dto.ZoneForm) (*entity.Zone, error) {
	zone := &entity.Zone{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		Type:       in.Type,
		Department: strings.TrimSpace(in.Department),
		City:       strings.TrimSpace(in.City),
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// GetByID retourne la zone, ou (nil, nil) si elle n'existe pas.
func (uc *ZoneUseCase) GetByID(ctx context.Context, id string) (*entity.Zone, error) {
	return uc.repo.GetByID(ctx, id)
}

// List retourne toutes les zones triées par nom.
func (uc *ZoneUseCase) List(ctx context.Context) ([]*entity.Zone, error) {
	return uc.repo.List(ctx)
}

// Update écrase les champs de la zone avec ceux du formulaire.
// Retourne (nil, nil) si la zone n'existe pas.
func (uc *ZoneUseCase) Update(ctx context.Context, id string, in dto.ZoneForm) (*entity.Zone, error) {
	zone, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, nil
	}
	zone.Name = strings.TrimSpace(in.Name)
	zone.Type = in.Type
	zone.Department = strings.TrimSpace(in.Department)
	zone.City = strings.TrimSpace(in.City)
	if err := uc.repo.Update(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// Delete supprime la zone ; no-op si l'id n'existe pas.
func (uc *ZoneUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
