package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"review-coordinator/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, is_active) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID возвращает пользователя вместе с названием его команды, если она есть.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT u.id, u.username, u.is_active, COALESCE(t.name, '')
		 FROM users u
		 LEFT JOIN team_members tm ON tm.user_id = u.id
		 LEFT JOIN teams t ON t.id = tm.team_id
		 WHERE u.id = $1`,
		userID,
	)

	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Username, &user.IsActive, &user.TeamName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// List возвращает всех пользователей, упорядоченных по идентификатору.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.username, u.is_active, COALESCE(t.name, '')
		 FROM users u
		 LEFT JOIN team_members tm ON tm.user_id = u.id
		 LEFT JOIN teams t ON t.id = tm.team_id
		 ORDER BY u.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Delete удаляет пользователя. Членство в команде и назначения на ревью каскадируются.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// UpdateActiveStatus обновляет флаг активности пользователя.
func (r *UserRepository) UpdateActiveStatus(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`,
		userID, isActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}

// FilterExisting возвращает подмножество идентификаторов, существующих в хранилище.
func (r *UserRepository) FilterExisting(ctx context.Context, userIDs []string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM users WHERE id = ANY($1)`,
		toTextArray(userIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to filter users: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// ListActiveCandidates возвращает до limit активных пользователей из memberIDs,
// исключая excludeIDs. Порядок по идентификатору делает выбор детерминированным.
func (r *UserRepository) ListActiveCandidates(ctx context.Context, memberIDs, excludeIDs []string, limit int) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.username, u.is_active, COALESCE(t.name, '')
		 FROM users u
		 LEFT JOIN team_members tm ON tm.user_id = u.id
		 LEFT JOIN teams t ON t.id = tm.team_id
		 WHERE u.id = ANY($1)
		   AND u.is_active = TRUE
		   AND NOT (u.id = ANY($2))
		 ORDER BY u.id
		 LIMIT $3`,
		toTextArray(memberIDs), toTextArray(excludeIDs), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.IsActive, &user.TeamName); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

func scanIDs(rows *sql.Rows) ([]string, error) {
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ids: %w", err)
	}
	return ids, nil
}
