package usecase

import (
	"context"

	"review-coordinator/internal/domain"
)

// PRUseCase реализует бизнес-логику для работы с Pull Request'ами.
type PRUseCase struct {
	prRepo     domain.PRRepository
	userRepo   domain.UserRepository
	memberRepo domain.MemberRepository
	selector   *ReviewerSelector
}

// NewPRUseCase создает новый экземпляр PRUseCase.
func NewPRUseCase(
	prRepo domain.PRRepository,
	userRepo domain.UserRepository,
	memberRepo domain.MemberRepository,
	selector *ReviewerSelector,
) domain.PRUseCase {
	return &PRUseCase{
		prRepo:     prRepo,
		userRepo:   userRepo,
		memberRepo: memberRepo,
		selector:   selector,
	}
}

// CreatePR создает PR и автоматически назначает до двух ревьюверов из команды автора.
// Если подходящих кандидатов меньше двух, PR создается с неполным набором ревьюверов.
func (uc *PRUseCase) CreatePR(ctx context.Context, prID, title, authorID string) (*domain.PullRequest, error) {
	if prID == "" {
		return nil, domain.ErrInvalidPRID
	}
	if title == "" {
		return nil, domain.ErrInvalidPRTitle
	}
	if authorID == "" {
		return nil, domain.ErrInvalidUserID
	}

	// 1. Проверяем, что автор существует
	if _, err := uc.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	// 2. Проверяем, что PR не существует
	exists, err := uc.prRepo.ExistsPR(ctx, prID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPRAlreadyExists
	}

	// 3. Находим команду автора
	teamID, err := uc.memberRepo.GetTeamIDByUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if teamID == "" {
		return nil, domain.ErrTeamNotFound
	}

	// 4. Выбираем кандидатов, исключая самого автора
	candidates, err := uc.selector.SelectCandidates(ctx, teamID, DefaultReviewerCount, []string{authorID})
	if err != nil {
		return nil, err
	}

	reviewerIDs := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		reviewerIDs = append(reviewerIDs, candidate.ID)
	}

	// 5. Создаем PR с ревьюверами
	pr := &domain.PullRequest{
		ID:       prID,
		Title:    title,
		AuthorID: authorID,
		Status:   domain.PRStatusOpen,
	}

	if err := uc.prRepo.CreateWithReviewers(ctx, pr, reviewerIDs); err != nil {
		return nil, err
	}

	pr.AssignedReviewers = reviewerIDs
	return pr, nil
}

// MergePR помечает PR как MERGED. Операция идемпотентна.
func (uc *PRUseCase) MergePR(ctx context.Context, prID string) (*domain.PullRequest, error) {
	if prID == "" {
		return nil, domain.ErrInvalidPRID
	}

	return uc.prRepo.Merge(ctx, prID)
}

// ReassignReviewer заменяет ревьювера на другого участника его же команды.
// Замена не может быть автором PR, уже назначенным ревьювером или самим заменяемым.
func (uc *PRUseCase) ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*domain.PullRequest, string, error) {
	if prID == "" {
		return nil, "", domain.ErrInvalidPRID
	}
	if oldReviewerID == "" {
		return nil, "", domain.ErrInvalidUserID
	}

	// 1. Получаем PR и проверяем существование
	pr, err := uc.prRepo.GetByID(ctx, prID)
	if err != nil {
		return nil, "", err
	}

	// 2. Нельзя менять ревьюверов у MERGED PR
	if pr.IsMerged() {
		return nil, "", domain.ErrPRAlreadyMerged
	}

	// 3. Проверяем, что старый ревьювер существует
	if _, err := uc.userRepo.GetByID(ctx, oldReviewerID); err != nil {
		return nil, "", err
	}

	// 4. Проверяем, что старый ревьювер назначен на PR
	assigned, err := uc.prRepo.IsUserReviewer(ctx, prID, oldReviewerID)
	if err != nil {
		return nil, "", err
	}
	if !assigned {
		return nil, "", domain.ErrReviewerNotAssigned
	}

	// 5. Находим команду старого ревьювера: замена приходит из нее, а не из команды автора
	teamID, err := uc.memberRepo.GetTeamIDByUser(ctx, oldReviewerID)
	if err != nil {
		return nil, "", err
	}
	if teamID == "" {
		return nil, "", domain.ErrNoReviewerCandidate
	}

	// 6. Исключаем текущих ревьюверов, заменяемого и автора PR
	excludeIDs := make([]string, 0, len(pr.AssignedReviewers)+2)
	excludeIDs = append(excludeIDs, pr.AssignedReviewers...)
	excludeIDs = append(excludeIDs, oldReviewerID)
	if pr.AuthorID != "" {
		excludeIDs = append(excludeIDs, pr.AuthorID)
	}
	excludeIDs = dedupe(excludeIDs)

	candidates, err := uc.selector.SelectCandidates(ctx, teamID, 1, excludeIDs)
	if err != nil {
		return nil, "", err
	}
	if len(candidates) == 0 {
		return nil, "", domain.ErrNoReviewerCandidate
	}
	newReviewerID := candidates[0].ID

	// 7. Выполняем замену
	if err := uc.prRepo.ReassignReviewer(ctx, prID, oldReviewerID, newReviewerID); err != nil {
		return nil, "", err
	}

	// 8. Получаем обновленный PR
	updatedPR, err := uc.prRepo.GetByID(ctx, prID)
	if err != nil {
		return nil, "", err
	}

	return updatedPR, newReviewerID, nil
}
