package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes регистрирует все маршруты сервиса
func RegisterRoutes(e *echo.Echo, h *APIHandler, health *HealthHandler) {
	// Служебные эндпоинты
	e.GET("/health/healthz", health.GetHealthz)
	e.GET("/health/ready", health.GetReady)

	// Команды
	e.POST("/team/add", h.PostTeamAdd)
	e.GET("/team/get", h.GetTeamGet)
	e.GET("/team", h.GetTeams)
	e.GET("/team/:team_id", h.GetTeamByID)
	e.DELETE("/team/:team_id", h.DeleteTeam)
	e.POST("/team/:team_id/members", h.PostTeamMembers)
	e.DELETE("/team/:team_id/members/:user_id", h.DeleteTeamMember)

	// Пользователи
	e.POST("/users", h.PostUsers)
	e.GET("/users", h.GetUsers)
	e.GET("/users/getReview", h.GetUsersGetReview)
	e.POST("/users/setIsActive", h.PostUsersSetIsActive)
	e.GET("/users/:user_id", h.GetUserByID)
	e.DELETE("/users/:user_id", h.DeleteUser)

	// Пул-реквесты
	e.POST("/pullRequest/create", h.PostPullRequestCreate)
	e.POST("/pullRequest/merge", h.PostPullRequestMerge)
	e.POST("/pullRequest/reassign", h.PostPullRequestReassign)
}
