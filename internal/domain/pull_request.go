package domain

import (
	"context"
	"time"
)

// Статусы пул-реквеста. Единственный допустимый переход — OPEN → MERGED.
const (
	PRStatusOpen   = "OPEN"
	PRStatusMerged = "MERGED"
)

// PullRequest представляет сущность пул-реквеста в системе.
type PullRequest struct {
	ID                string
	Title             string
	AuthorID          string // пустая строка, если автор был удален
	Status            string
	AssignedReviewers []string
	CreatedAt         time.Time
	MergedAt          *time.Time
}

// IsMerged сообщает, находится ли пул-реквест в терминальном статусе.
func (p *PullRequest) IsMerged() bool {
	return p.Status == PRStatusMerged
}

// PRRepository определяет контракт для работы с хранилищем пул-реквестов.
type PRRepository interface {
	CreateWithReviewers(ctx context.Context, pr *PullRequest, reviewerIDs []string) error
	GetByID(ctx context.Context, prID string) (*PullRequest, error)
	ExistsPR(ctx context.Context, prID string) (bool, error)
	Merge(ctx context.Context, prID string) (*PullRequest, error)
	IsUserReviewer(ctx context.Context, prID, userID string) (bool, error)
	GetReviewers(ctx context.Context, prID string) ([]string, error)
	ReassignReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error
	ListByReviewer(ctx context.Context, userID string) ([]*PullRequest, error)
}
