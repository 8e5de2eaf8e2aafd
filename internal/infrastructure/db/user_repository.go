package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shopfront/internal/domain/entities"
	"shopfront/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		CreatedAt: userEntity.CreatedAt,
		Email:     userEntity.Email,
		Phone:     userEntity.Phone,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		// Two concurrent signups with the same email race; the unique
		// index on email is the arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entities.ErrDuplicateEmail
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) Exists(ctx context.Context, email, phone string) (bool, error) {
	user, err := r.FindByEmailAndPhone(ctx, email, phone)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ? AND phone = ?", email, phone).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:        userModel.ID,
		CreatedAt: userModel.CreatedAt,
		Email:     userModel.Email,
		Phone:     userModel.Phone,
	}
}
