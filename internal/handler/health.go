package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// HealthHandler обрабатывает запросы проверки работоспособности сервиса
type HealthHandler struct {
	*BaseHandler
	db *sql.DB
}

// NewHealthHandler создает новый экземпляр HealthHandler
func NewHealthHandler(db *sql.DB, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		db:          db,
	}
}

// GetHealthz отвечает, что процесс жив
func (h *HealthHandler) GetHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetReady проверяет доступность базы данных
func (h *HealthHandler) GetReady(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WithError(err).Warn("Readiness check failed")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
