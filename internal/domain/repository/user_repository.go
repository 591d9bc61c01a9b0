package repository

import (
	"context"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
)

// UserRepository port de persistance pour les utilisateurs.
// Les méthodes Get* retournent (nil, nil) quand la ligne n'existe pas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
