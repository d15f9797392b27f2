package domain

import "context"

// Team представляет команду с участниками.
type Team struct {
	ID      string
	Name    string
	Members []*User
}

// TeamRepository определяет контракт для работы с хранилищем команд.
type TeamRepository interface {
	CreateWithMembers(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, teamID string) (*Team, error)
	GetByName(ctx context.Context, teamName string) (*Team, error)
	List(ctx context.Context) ([]*Team, error)
	Delete(ctx context.Context, teamID string) error
	ExistsTeam(ctx context.Context, teamID string) (bool, error)
}

// MemberRepository определяет контракт для работы с членством в командах.
// Таблица team_members — единственный источник истины о том, в какой команде состоит пользователь.
type MemberRepository interface {
	AddMembers(ctx context.Context, teamID string, userIDs []string) error
	Remove(ctx context.Context, teamID, userID string) error
	ListByTeam(ctx context.Context, teamID string) ([]*User, error)
	ListUserIDs(ctx context.Context, teamID string) ([]string, error)
	GetTeamIDByUser(ctx context.Context, userID string) (string, error)
	ListAssigned(ctx context.Context, userIDs []string) ([]string, error)
}
