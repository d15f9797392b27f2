package handler

import (
	"net/http"

	"review-coordinator/api"
	"review-coordinator/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// PostUsers обрабатывает создание нового пользователя.
func (h *UserHandler) PostUsers(c echo.Context) error {
	var req api.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_user").WithField("username", req.Username)
	logEntry.Info("Creating user")

	user, err := h.userUseCase.CreateUser(c.Request().Context(), req.Username)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create user")
		return respondError(c, err)
	}

	logEntry.WithField("user_id", user.ID).Info("User created successfully")
	return c.JSON(http.StatusCreated, toAPIUser(user))
}

// GetUsers обрабатывает получение всех пользователей.
func (h *UserHandler) GetUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "list_users")

	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list users")
		return respondError(c, err)
	}

	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}

	return c.JSON(http.StatusOK, result)
}

// GetUserByID обрабатывает получение пользователя по идентификатору.
func (h *UserHandler) GetUserByID(c echo.Context) error {
	userID := c.Param("user_id")

	logEntry := h.logRequest(c, "get_user").WithField("user_id", userID)

	user, err := h.userUseCase.GetUser(c.Request().Context(), userID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAPIUser(user))
}

// DeleteUser обрабатывает удаление пользователя.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID := c.Param("user_id")

	logEntry := h.logRequest(c, "delete_user").WithField("user_id", userID)
	logEntry.Info("Deleting user")

	if err := h.userUseCase.DeleteUser(c.Request().Context(), userID); err != nil {
		logEntry.WithError(err).Error("Failed to delete user")
		return respondError(c, err)
	}

	logEntry.Info("User deleted successfully")
	return c.NoContent(http.StatusNoContent)
}

// PostUsersSetIsActive обрабатывает установку статуса активности пользователя.
func (h *UserHandler) PostUsersSetIsActive(c echo.Context) error {
	var req api.SetUserActiveRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind set active request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "set_user_active").WithFields(logrus.Fields{
		"user_id":   req.UserID,
		"is_active": req.IsActive,
	})
	logEntry.Info("Setting user active status")

	user, err := h.userUseCase.SetUserActive(c.Request().Context(), req.UserID, req.IsActive)
	if err != nil {
		logEntry.WithError(err).Error("Failed to set user active status")
		return respondError(c, err)
	}

	logEntry.Info("User active status updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// GetUsersGetReview обрабатывает получение списка PR, назначенных пользователю на ревью.
func (h *UserHandler) GetUsersGetReview(c echo.Context) error {
	userID := c.QueryParam("user_id")

	logEntry := h.logRequest(c, "get_user_reviews").WithField("user_id", userID)

	prs, err := h.userUseCase.GetUserReviewPRs(c.Request().Context(), userID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user review PRs")
		return respondError(c, err)
	}

	logEntry.WithField("prs_count", len(prs)).Info("User review PRs retrieved successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user_id":       userID,
		"pull_requests": toAPIPRShorts(prs),
	})
}
