package repository

import (
	"context"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// ZoneRepository port de persistance pour les zones (marchés, dépôts...).
type ZoneRepository interface {
	Create(ctx context.Context, zone *entity.Zone) error
	GetByID(ctx context.Context, id string) (*entity.Zone, error)
	// List retourne toutes les zones triées par nom.
	List(ctx context.Context) ([]*entity.Zone, error)
	Update(ctx context.Context, zone *entity.Zone) error
	Delete(ctx context.Context, id string) error
}
