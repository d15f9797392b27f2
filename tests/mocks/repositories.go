// Package mocks содержит testify-моки доменных репозиториев для юнит-тестов.
package mocks

import (
	"context"

	"review-coordinator/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository — мок domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepository) UpdateActiveStatus(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	args := m.Called(ctx, userID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) FilterExisting(ctx context.Context, userIDs []string) ([]string, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *UserRepository) ListActiveCandidates(ctx context.Context, memberIDs, excludeIDs []string, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, memberIDs, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// TeamRepository — мок domain.TeamRepository.
type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) CreateWithMembers(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamRepository) GetByName(ctx context.Context, teamName string) (*domain.Team, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *TeamRepository) Delete(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *TeamRepository) ExistsTeam(ctx context.Context, teamID string) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

// MemberRepository — мок domain.MemberRepository.
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) AddMembers(ctx context.Context, teamID string, userIDs []string) error {
	args := m.Called(ctx, teamID, userIDs)
	return args.Error(0)
}

func (m *MemberRepository) Remove(ctx context.Context, teamID, userID string) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MemberRepository) ListByTeam(ctx context.Context, teamID string) ([]*domain.User, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MemberRepository) ListUserIDs(ctx context.Context, teamID string) ([]string, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MemberRepository) GetTeamIDByUser(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MemberRepository) ListAssigned(ctx context.Context, userIDs []string) ([]string, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// PRRepository — мок domain.PRRepository.
type PRRepository struct {
	mock.Mock
}

func (m *PRRepository) CreateWithReviewers(ctx context.Context, pr *domain.PullRequest, reviewerIDs []string) error {
	args := m.Called(ctx, pr, reviewerIDs)
	return args.Error(0)
}

func (m *PRRepository) GetByID(ctx context.Context, prID string) (*domain.PullRequest, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PRRepository) ExistsPR(ctx context.Context, prID string) (bool, error) {
	args := m.Called(ctx, prID)
	return args.Bool(0), args.Error(1)
}

func (m *PRRepository) Merge(ctx context.Context, prID string) (*domain.PullRequest, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PRRepository) IsUserReviewer(ctx context.Context, prID, userID string) (bool, error) {
	args := m.Called(ctx, prID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *PRRepository) GetReviewers(ctx context.Context, prID string) ([]string, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *PRRepository) ReassignReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error {
	args := m.Called(ctx, prID, oldReviewerID, newReviewerID)
	return args.Error(0)
}

func (m *PRRepository) ListByReviewer(ctx context.Context, userID string) ([]*domain.PullRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PullRequest), args.Error(1)
}
