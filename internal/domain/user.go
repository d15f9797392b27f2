package domain

import "context"

// User представляет сущность пользователя в системе.
type User struct {
	ID       string
	Username string
	TeamName string // пустая строка, если пользователь не состоит в команде
	IsActive bool
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, userID string) error
	UpdateActiveStatus(ctx context.Context, userID string, isActive bool) (*User, error)
	FilterExisting(ctx context.Context, userIDs []string) ([]string, error)
	ListActiveCandidates(ctx context.Context, memberIDs, excludeIDs []string, limit int) ([]*User, error)
}
