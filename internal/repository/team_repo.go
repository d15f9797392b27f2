package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"review-coordinator/internal/domain"
)

// TeamRepository реализует взаимодействие с данными команд в PostgreSQL.
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithMembers создает команду и обновляет/создает пользователей-участников.
// Существующее членство участника в другой команде переносится в новую команду.
func (r *TeamRepository) CreateWithMembers(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Создаем команду
	_, err = tx.ExecContext(ctx,
		`INSERT INTO teams (id, name) VALUES ($1, $2)`,
		team.ID, team.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamAlreadyExists
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	// 2. Создаем/обновляем участников и переносим членство
	for _, member := range team.Members {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, username, is_active)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO UPDATE
			 SET username = EXCLUDED.username,
			     is_active = EXCLUDED.is_active,
			     updated_at = now()`,
			member.ID, member.Username, member.IsActive,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrUserAlreadyExists
			}
			return fmt.Errorf("failed to upsert user %s: %w", member.ID, err)
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM team_members WHERE user_id = $1`,
			member.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to reset membership for user %s: %w", member.ID, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`,
			team.ID, member.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to add member %s: %w", member.ID, err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID возвращает команду по идентификатору без участников.
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	return r.getTeam(ctx, `SELECT id, name FROM teams WHERE id = $1`, teamID)
}

// GetByName возвращает команду по названию без участников.
func (r *TeamRepository) GetByName(ctx context.Context, teamName string) (*domain.Team, error) {
	return r.getTeam(ctx, `SELECT id, name FROM teams WHERE name = $1`, teamName)
}

func (r *TeamRepository) getTeam(ctx context.Context, query, arg string) (*domain.Team, error) {
	team := &domain.Team{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&team.ID, &team.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// List возвращает все команды без участников, упорядоченные по названию.
func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// Delete удаляет команду. Членства участников каскадируются.
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTeamNotFound
	}

	return nil
}

// ExistsTeam проверяет существование команды.
func (r *TeamRepository) ExistsTeam(ctx context.Context, teamID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`,
		teamID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}
