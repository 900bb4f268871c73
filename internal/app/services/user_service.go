package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/pkg/auth"
)

// UserService defines the interface for portal user management
type UserService interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return 0, err
	}
	user.PasswordHash = hash
	user.Password = ""
	return s.userRepo.Create(ctx, user)
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, user *models.User) error {
	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.Password = ""
	return s.userRepo.Update(ctx, user)
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
