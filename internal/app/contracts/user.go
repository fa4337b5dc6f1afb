package contracts

import (
	"context"

	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/dto/requests"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	FindUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error)
	DeleteUserByID(ctx context.Context, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}
