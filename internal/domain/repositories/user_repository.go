package repositories

import (
	"context"

	"shopfront/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	Exists(ctx context.Context, email, phone string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*entities.User, error)
}
