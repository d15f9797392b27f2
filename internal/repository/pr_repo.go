package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"review-coordinator/internal/domain"
)

// PRRepository реализует взаимодействие с данными Pull Request'ов в PostgreSQL.
type PRRepository struct {
	db *sql.DB
}

// NewPRRepository создает новый экземпляр PRRepository.
func NewPRRepository(db *sql.DB) domain.PRRepository {
	return &PRRepository{db: db}
}

// CreateWithReviewers создает PR и назначает ревьюверов одной транзакцией.
// CreatedAt и Status заполняются значениями, присвоенными хранилищем.
func (r *PRRepository) CreateWithReviewers(ctx context.Context, pr *domain.PullRequest, reviewerIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Создаем PR
	err = tx.QueryRowContext(ctx,
		`INSERT INTO pull_requests (id, title, author_id)
		 VALUES ($1, $2, $3)
		 RETURNING status, created_at`,
		pr.ID, pr.Title, pr.AuthorID,
	).Scan(&pr.Status, &pr.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPRAlreadyExists
		}
		return fmt.Errorf("failed to create PR: %w", err)
	}

	// 2. Назначаем ревьюверов
	for _, reviewerID := range reviewerIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pull_request_reviewers (pr_id, reviewer_id) VALUES ($1, $2)`,
			pr.ID, reviewerID,
		)
		if err != nil {
			return fmt.Errorf("failed to assign reviewer %s: %w", reviewerID, err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID возвращает PR вместе со списком назначенных ревьюверов.
func (r *PRRepository) GetByID(ctx context.Context, prID string) (*domain.PullRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, COALESCE(author_id, ''), status, created_at, merged_at
		 FROM pull_requests WHERE id = $1`,
		prID,
	)

	pr, err := scanPR(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get PR: %w", err)
	}

	reviewers, err := r.GetReviewers(ctx, prID)
	if err != nil {
		return nil, err
	}
	pr.AssignedReviewers = reviewers

	return pr, nil
}

// ExistsPR проверяет существование PR.
func (r *PRRepository) ExistsPR(ctx context.Context, prID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pull_requests WHERE id = $1)`,
		prID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pr exists: %w", err)
	}
	return exists, nil
}

// Merge переводит PR в статус MERGED. Операция идемпотентна:
// merged_at выставляется один раз и при повторных вызовах не меняется.
func (r *PRRepository) Merge(ctx context.Context, prID string) (*domain.PullRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE pull_requests
		 SET status = 'MERGED',
		     merged_at = COALESCE(merged_at, now()),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING id, title, COALESCE(author_id, ''), status, created_at, merged_at`,
		prID,
	)

	pr, err := scanPR(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to merge PR: %w", err)
	}

	reviewers, err := r.GetReviewers(ctx, prID)
	if err != nil {
		return nil, err
	}
	pr.AssignedReviewers = reviewers

	return pr, nil
}

// IsUserReviewer проверяет, является ли пользователь ревьювером PR.
func (r *PRRepository) IsUserReviewer(ctx context.Context, prID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pull_request_reviewers WHERE pr_id = $1 AND reviewer_id = $2)`,
		prID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reviewer assignment: %w", err)
	}
	return exists, nil
}

// GetReviewers возвращает идентификаторы ревьюверов PR, упорядоченные по идентификатору.
func (r *PRRepository) GetReviewers(ctx context.Context, prID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT reviewer_id FROM pull_request_reviewers WHERE pr_id = $1 ORDER BY reviewer_id`,
		prID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewers: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// ReassignReviewer заменяет ревьювера на нового одной транзакцией:
// удаление старой пары и вставка новой либо происходят вместе, либо не происходят вовсе.
func (r *PRRepository) ReassignReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Удаляем старого ревьювера
	res, err := tx.ExecContext(ctx,
		`DELETE FROM pull_request_reviewers WHERE pr_id = $1 AND reviewer_id = $2`,
		prID, oldReviewerID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove reviewer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removed rows: %w", err)
	}
	if affected == 0 {
		err = domain.ErrReviewerNotAssigned
		return err
	}

	// 2. Добавляем нового ревьювера
	_, err = tx.ExecContext(ctx,
		`INSERT INTO pull_request_reviewers (pr_id, reviewer_id) VALUES ($1, $2)`,
		prID, newReviewerID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign new reviewer: %w", err)
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListByReviewer возвращает PR, где пользователь назначен ревьювером,
// упорядоченные по времени создания.
func (r *PRRepository) ListByReviewer(ctx context.Context, userID string) ([]*domain.PullRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT pr.id, pr.title, COALESCE(pr.author_id, ''), pr.status, pr.created_at, pr.merged_at
		 FROM pull_requests pr
		 JOIN pull_request_reviewers prr ON prr.pr_id = pr.id
		 WHERE prr.reviewer_id = $1
		 ORDER BY pr.created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs by reviewer: %w", err)
	}
	defer rows.Close()

	prs := make([]*domain.PullRequest, 0)
	for rows.Next() {
		pr := &domain.PullRequest{}
		var mergedAt sql.NullTime
		if err := rows.Scan(&pr.ID, &pr.Title, &pr.AuthorID, &pr.Status, &pr.CreatedAt, &mergedAt); err != nil {
			return nil, fmt.Errorf("failed to scan PR: %w", err)
		}
		if mergedAt.Valid {
			pr.MergedAt = &mergedAt.Time
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate PRs: %w", err)
	}

	return prs, nil
}

func scanPR(row *sql.Row) (*domain.PullRequest, error) {
	pr := &domain.PullRequest{}
	var mergedAt sql.NullTime
	err := row.Scan(&pr.ID, &pr.Title, &pr.AuthorID, &pr.Status, &pr.CreatedAt, &mergedAt)
	if err != nil {
		return nil, err
	}
	if mergedAt.Valid {
		pr.MergedAt = &mergedAt.Time
	}
	return pr, nil
}
