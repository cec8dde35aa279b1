package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "techshop/internal/errors"
	"techshop/internal/model"
	"techshop/internal/repository"
)

// UserService exposes profile operations for authenticated users.
type UserService interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User, patch model.UserPatch) (*model.User, error)
	Activity(ctx context.Context, user *model.User) (*model.Activity, error)
}

type userService struct {
	repo      repository.UserRepository
	orderRepo repository.OrderRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, orderRepo repository.OrderRepository) UserService {
	return &userService{repo: repo, orderRepo: orderRepo}
}

// GetByEmail resolves a token subject to a user.
func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of patch. A new password is re-hashed.
// A changed email is not checked for uniqueness here; the unique index rejects collisions.
func (s *userService) UpdateProfile(ctx context.Context, user *model.User, patch model.UserPatch) (*model.User, error) {
	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Email != "" {
		user.Email = patch.Email
	}
	if patch.Password != "" {
		hashed, err := hashPassword(patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Activity summarizes the user's orders.
func (s *userService) Activity(ctx context.Context, user *model.User) (*model.Activity, error) {
	count, err := s.orderRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	activity := &model.Activity{
		TotalOrders:    int(count),
		AccountCreated: user.CreatedAt,
	}
	if count == 0 {
		return activity, nil
	}

	latest, err := s.orderRepo.LatestByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("latest order: %w", err)
	}
	activity.LastOrderDate = &latest.CreatedAt
	return activity, nil
}
