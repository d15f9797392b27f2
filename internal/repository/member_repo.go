package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"review-coordinator/internal/domain"
)

// MemberRepository реализует взаимодействие с членством в командах в PostgreSQL.
type MemberRepository struct {
	db *sql.DB
}

// NewMemberRepository создает новый экземпляр MemberRepository.
func NewMemberRepository(db *sql.DB) domain.MemberRepository {
	return &MemberRepository{db: db}
}

// AddMembers добавляет пользователей в команду одной транзакцией.
// Ограничение уникальности user_id гарантирует не более одной команды на пользователя.
func (r *MemberRepository) AddMembers(ctx context.Context, teamID string, userIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, userID := range userIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`,
			teamID, userID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrTeamMemberAlreadyExists
			}
			return fmt.Errorf("failed to add member %s: %w", userID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Remove удаляет пользователя из команды.
func (r *MemberRepository) Remove(ctx context.Context, teamID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTeamMemberNotFound
	}

	return nil
}

// ListByTeam возвращает участников команды в порядке их добавления.
func (r *MemberRepository) ListByTeam(ctx context.Context, teamID string) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.username, u.is_active, t.name
		 FROM team_members tm
		 JOIN users u ON u.id = tm.user_id
		 JOIN teams t ON t.id = tm.team_id
		 WHERE tm.team_id = $1
		 ORDER BY tm.created_at, u.id`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListUserIDs возвращает идентификаторы всех участников команды.
func (r *MemberRepository) ListUserIDs(ctx context.Context, teamID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM team_members WHERE team_id = $1 ORDER BY user_id`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list member ids: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// GetTeamIDByUser возвращает идентификатор команды пользователя
// или пустую строку, если пользователь не состоит ни в одной команде.
func (r *MemberRepository) GetTeamIDByUser(ctx context.Context, userID string) (string, error) {
	var teamID string
	err := r.db.QueryRowContext(ctx,
		`SELECT team_id FROM team_members WHERE user_id = $1`,
		userID,
	).Scan(&teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get user team: %w", err)
	}
	return teamID, nil
}

// ListAssigned возвращает подмножество идентификаторов, уже состоящих в какой-либо команде.
func (r *MemberRepository) ListAssigned(ctx context.Context, userIDs []string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM team_members WHERE user_id = ANY($1)`,
		toTextArray(userIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned members: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}
