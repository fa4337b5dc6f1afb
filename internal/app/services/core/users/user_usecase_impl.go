package users

import (
	"context"
	"sync"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/dto/requests"
	"kemandirian-service/internal/pkg/exceptions"
	"kemandirian-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("UserUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:       utils.GenerateRecordID(),
		Username: request.Username,
		Password: string(hashedPassword),
		FullName: request.FullName,
		Role:     request.Role,
	}
	user.SetCreatedAtUpdatedAt()

	if _, err := uc.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) FindUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	return user, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("UserUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.Role != "" {
		user.Role = request.Role
	}
	if request.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		user.Password = string(hashedPassword)
	}
	user.SetUpdatedAt()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) DeleteUserByID(ctx context.Context, userID string) error {
	return uc.UserRepository.DeleteByID(ctx, userID)
}
