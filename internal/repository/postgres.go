package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// isUniqueViolation сообщает, нарушено ли ограничение уникальности PostgreSQL.
// Ограничения БД — последняя линия защиты от гонок между конкурентными запросами.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// toTextArray нормализует слайс для передачи в параметр text[]:
// nil кодируется драйвером как NULL и ломает сравнение `= ANY(...)`.
func toTextArray(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
