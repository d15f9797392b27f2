package usecase

import (
	"context"

	"review-coordinator/internal/domain"
)

// DefaultReviewerCount — число ревьюверов, назначаемых при создании PR.
const DefaultReviewerCount = 2

// ReviewerSelector выбирает кандидатов в ревьюверы среди участников команды.
type ReviewerSelector struct {
	memberRepo domain.MemberRepository
	userRepo   domain.UserRepository
}

// NewReviewerSelector создает новый экземпляр ReviewerSelector.
func NewReviewerSelector(memberRepo domain.MemberRepository, userRepo domain.UserRepository) *ReviewerSelector {
	return &ReviewerSelector{
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

// SelectCandidates возвращает до count активных участников команды teamID,
// исключая excludeIDs. Кандидаты упорядочены по идентификатору, поэтому при
// неизменном состоянии хранилища выбор детерминирован. Нехватка кандидатов
// не является ошибкой: вызывающая сторона сама решает, фатален ли пустой результат.
func (s *ReviewerSelector) SelectCandidates(ctx context.Context, teamID string, count int, excludeIDs []string) ([]*domain.User, error) {
	if count <= 0 {
		return nil, nil
	}

	memberIDs, err := s.memberRepo.ListUserIDs(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(memberIDs) == 0 {
		return nil, nil
	}

	return s.userRepo.ListActiveCandidates(ctx, memberIDs, excludeIDs, count)
}
