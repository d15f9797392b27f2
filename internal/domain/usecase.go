package domain

import "context"

// TeamUseCase определяет бизнес-логику для работы с командами.
type TeamUseCase interface {
	CreateTeam(ctx context.Context, teamName string, members []*User) (*Team, error)
	GetTeam(ctx context.Context, teamID string) (*Team, error)
	GetTeamByName(ctx context.Context, teamName string) (*Team, error)
	ListTeams(ctx context.Context) ([]*Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
	AddTeamMembers(ctx context.Context, teamID string, userIDs []string) (*Team, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) error
}

// UserUseCase определяет бизнес-логику для работы с пользователями.
type UserUseCase interface {
	CreateUser(ctx context.Context, username string) (*User, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	DeleteUser(ctx context.Context, userID string) error
	SetUserActive(ctx context.Context, userID string, isActive bool) (*User, error)
	GetUserReviewPRs(ctx context.Context, userID string) ([]*PullRequest, error)
}

// PRUseCase определяет бизнес-логику для работы с Pull Request'ами.
type PRUseCase interface {
	CreatePR(ctx context.Context, prID, title, authorID string) (*PullRequest, error)
	MergePR(ctx context.Context, prID string) (*PullRequest, error)
	ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*PullRequest, string, error)
}
