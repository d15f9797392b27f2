package usecase_test

import (
	"context"
	"errors"
	"testing"

	"review-coordinator/internal/domain"
	"review-coordinator/internal/usecase"
	"review-coordinator/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func TestReviewerSelector_SelectCandidates_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	memberRepo := &mocks.MemberRepository{}
	userRepo := &mocks.UserRepository{}
	selector := usecase.NewReviewerSelector(memberRepo, userRepo)

	candidates := []*domain.User{
		{ID: "u2", Username: "Bob", IsActive: true},
		{ID: "u3", Username: "Charlie", IsActive: true},
	}

	// Mock expectations
	memberRepo.On("ListUserIDs", ctx, "team-1").Return([]string{"u1", "u2", "u3"}, nil)
	userRepo.On("ListActiveCandidates", ctx, []string{"u1", "u2", "u3"}, []string{"u1"}, 2).Return(candidates, nil)

	// Execute
	result, err := selector.SelectCandidates(ctx, "team-1", 2, []string{"u1"})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, candidates, result)

	memberRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestReviewerSelector_SelectCandidates_ZeroCount(t *testing.T) {
	ctx := context.Background()
	memberRepo := &mocks.MemberRepository{}
	userRepo := &mocks.UserRepository{}
	selector := usecase.NewReviewerSelector(memberRepo, userRepo)

	result, err := selector.SelectCandidates(ctx, "team-1", 0, nil)

	assert.NoError(t, err)
	assert.Empty(t, result)
	memberRepo.AssertNotCalled(t, "ListUserIDs")
	userRepo.AssertNotCalled(t, "ListActiveCandidates")
}

func TestReviewerSelector_SelectCandidates_EmptyTeam(t *testing.T) {
	ctx := context.Background()
	memberRepo := &mocks.MemberRepository{}
	userRepo := &mocks.UserRepository{}
	selector := usecase.NewReviewerSelector(memberRepo, userRepo)

	memberRepo.On("ListUserIDs", ctx, "team-1").Return([]string{}, nil)

	result, err := selector.SelectCandidates(ctx, "team-1", 2, nil)

	assert.NoError(t, err)
	assert.Empty(t, result)
	userRepo.AssertNotCalled(t, "ListActiveCandidates")
	memberRepo.AssertExpectations(t)
}

func TestReviewerSelector_SelectCandidates_RepoError(t *testing.T) {
	ctx := context.Background()
	memberRepo := &mocks.MemberRepository{}
	userRepo := &mocks.UserRepository{}
	selector := usecase.NewReviewerSelector(memberRepo, userRepo)

	memberRepo.On("ListUserIDs", ctx, "team-1").Return(nil, errors.New("db down"))

	result, err := selector.SelectCandidates(ctx, "team-1", 2, nil)

	assert.Error(t, err)
	assert.Nil(t, result)
}
