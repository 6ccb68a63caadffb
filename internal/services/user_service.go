package services

import (
	"context"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

// UserService owns user balance reads and writes.
type UserService interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	ChargeBalance(ctx context.Context, userID int64, amount float64) (*models.User, error)
	CheckBalance(ctx context.Context, userID int64, amount float64) (bool, error)
}

type userService struct {
	store repositories.Store
}

func NewUserService(store repositories.Store) UserService {
	return &userService{store: store}
}

func (s *userService) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return s.store.Users().GetByID(ctx, id)
}

// ChargeBalance credits amount to the user's balance. The amount must be
// strictly positive; this is the authoritative rule even though the HTTP DTO
// only requires it to be non-negative.
func (s *userService) ChargeBalance(ctx context.Context, userID int64, amount float64) (*models.User, error) {
	if amount <= 0 {
		return nil, &common.InvalidArgumentError{Field: "amount", Message: "charge amount must be positive"}
	}
	return s.store.Users().AdjustBalance(ctx, userID, amount)
}

func (s *userService) CheckBalance(ctx context.Context, userID int64, amount float64) (bool, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.Balance >= amount, nil
}
