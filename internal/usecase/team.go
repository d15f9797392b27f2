package usecase

import (
	"context"

	"github.com/google/uuid"

	"review-coordinator/internal/domain"
)

// TeamUseCase реализует бизнес-логику для работы с командами.
type TeamUseCase struct {
	teamRepo   domain.TeamRepository
	memberRepo domain.MemberRepository
	userRepo   domain.UserRepository
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(
	teamRepo domain.TeamRepository,
	memberRepo domain.MemberRepository,
	userRepo domain.UserRepository,
) domain.TeamUseCase {
	return &TeamUseCase{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

// CreateTeam создает команду с участниками. Переданные участники создаются
// или обновляются, а их членство переносится в новую команду.
func (uc *TeamUseCase) CreateTeam(ctx context.Context, teamName string, members []*domain.User) (*domain.Team, error) {
	if teamName == "" {
		return nil, domain.ErrInvalidTeamName
	}
	for _, member := range members {
		if member.ID == "" {
			return nil, domain.ErrInvalidUserID
		}
		if member.Username == "" {
			return nil, domain.ErrInvalidUsername
		}
		member.TeamName = teamName
	}

	team := &domain.Team{
		ID:      uuid.NewString(),
		Name:    teamName,
		Members: members,
	}

	if err := uc.teamRepo.CreateWithMembers(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeam возвращает команду по идентификатору вместе с участниками.
func (uc *TeamUseCase) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return uc.withMembers(ctx, team)
}

// GetTeamByName возвращает команду по названию вместе с участниками.
func (uc *TeamUseCase) GetTeamByName(ctx context.Context, teamName string) (*domain.Team, error) {
	if teamName == "" {
		return nil, domain.ErrInvalidTeamName
	}

	team, err := uc.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	return uc.withMembers(ctx, team)
}

// ListTeams возвращает все команды вместе с участниками.
func (uc *TeamUseCase) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := uc.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, team := range teams {
		if _, err := uc.withMembers(ctx, team); err != nil {
			return nil, err
		}
	}

	return teams, nil
}

// DeleteTeam удаляет команду. Членства участников удаляются каскадно,
// сами пользователи остаются.
func (uc *TeamUseCase) DeleteTeam(ctx context.Context, teamID string) error {
	return uc.teamRepo.Delete(ctx, teamID)
}

// AddTeamMembers добавляет существующих пользователей в команду.
// Все пользователи должны существовать, и ни один не должен уже состоять в команде.
func (uc *TeamUseCase) AddTeamMembers(ctx context.Context, teamID string, userIDs []string) (*domain.Team, error) {
	userIDs = dedupe(userIDs)
	if len(userIDs) == 0 {
		return nil, domain.ErrNoMembersInBatch
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	found, err := uc.userRepo.FilterExisting(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(userIDs) {
		return nil, domain.ErrUserNotFound
	}

	assigned, err := uc.memberRepo.ListAssigned(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	if len(assigned) > 0 {
		return nil, domain.ErrTeamMemberAlreadyExists
	}

	if err := uc.memberRepo.AddMembers(ctx, teamID, userIDs); err != nil {
		return nil, err
	}

	return uc.GetTeam(ctx, teamID)
}

// RemoveTeamMember удаляет пользователя из команды.
func (uc *TeamUseCase) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTeamNotFound
	}

	return uc.memberRepo.Remove(ctx, teamID, userID)
}

func (uc *TeamUseCase) withMembers(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	members, err := uc.memberRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
