package usecase

import (
	"context"

	"github.com/google/uuid"

	"review-coordinator/internal/domain"
)

// UserUseCase реализует бизнес-логику для работы с пользователями.
type UserUseCase struct {
	userRepo domain.UserRepository
	prRepo   domain.PRRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository, prRepo domain.PRRepository) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		prRepo:   prRepo,
	}
}

// CreateUser создает нового активного пользователя с уникальным именем.
func (uc *UserUseCase) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Username: username,
		IsActive: true,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (uc *UserUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	return uc.userRepo.GetByID(ctx, userID)
}

// ListUsers возвращает всех пользователей.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.List(ctx)
}

// DeleteUser удаляет пользователя. Существующие назначения на ревью
// и членство в команде удаляются каскадно на уровне хранилища.
func (uc *UserUseCase) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrInvalidUserID
	}

	return uc.userRepo.Delete(ctx, userID)
}

// SetUserActive устанавливает флаг активности пользователя. Деактивация
// исключает пользователя из будущих выборов ревьюверов, но не снимает
// уже существующие назначения.
func (uc *UserUseCase) SetUserActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	return uc.userRepo.UpdateActiveStatus(ctx, userID, isActive)
}

// GetUserReviewPRs возвращает PR, где пользователь назначен ревьювером.
func (uc *UserUseCase) GetUserReviewPRs(ctx context.Context, userID string) ([]*domain.PullRequest, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.prRepo.ListByReviewer(ctx, userID)
}
