package handler

import (
	"net/http"

	"review-coordinator/api"
	"review-coordinator/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler обрабатывает HTTP-запросы для управления командами
type TeamHandler struct {
	*BaseHandler
	teamUseCase domain.TeamUseCase
}

// NewTeamHandler создает новый экземпляр TeamHandler
func NewTeamHandler(teamUseCase domain.TeamUseCase, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler: NewBaseHandler(logger),
		teamUseCase: teamUseCase,
	}
}

// PostTeamAdd обрабатывает создание новой команды с участниками
func (h *TeamHandler) PostTeamAdd(c echo.Context) error {
	var req api.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create team request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_team").WithField("team_name", req.TeamName)
	logEntry.Info("Creating team")

	members := make([]*domain.User, 0, len(req.Members))
	for _, member := range req.Members {
		members = append(members, &domain.User{
			ID:       member.UserID,
			Username: member.Username,
			IsActive: member.IsActive,
		})
	}

	team, err := h.teamUseCase.CreateTeam(c.Request().Context(), req.TeamName, members)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create team")
		return respondError(c, err)
	}

	logEntry.WithField("members_count", len(team.Members)).Info("Team created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"team": toAPITeam(team),
	})
}

// GetTeamGet обрабатывает получение команды по названию
func (h *TeamHandler) GetTeamGet(c echo.Context) error {
	teamName := c.QueryParam("team_name")

	logEntry := h.logRequest(c, "get_team").WithField("team_name", teamName)

	team, err := h.teamUseCase.GetTeamByName(c.Request().Context(), teamName)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get team")
		return respondError(c, err)
	}

	logEntry.WithField("members_count", len(team.Members)).Info("Team retrieved successfully")
	return c.JSON(http.StatusOK, toAPITeam(team))
}

// GetTeams обрабатывает получение всех команд
func (h *TeamHandler) GetTeams(c echo.Context) error {
	logEntry := h.logRequest(c, "list_teams")

	teams, err := h.teamUseCase.ListTeams(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to list teams")
		return respondError(c, err)
	}

	result := make([]api.Team, len(teams))
	for i, team := range teams {
		result[i] = toAPITeam(team)
	}

	return c.JSON(http.StatusOK, result)
}

// GetTeamByID обрабатывает получение команды по идентификатору
func (h *TeamHandler) GetTeamByID(c echo.Context) error {
	teamID := c.Param("team_id")

	logEntry := h.logRequest(c, "get_team_by_id").WithField("team_id", teamID)

	team, err := h.teamUseCase.GetTeam(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get team")
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAPITeam(team))
}

// DeleteTeam обрабатывает удаление команды
func (h *TeamHandler) DeleteTeam(c echo.Context) error {
	teamID := c.Param("team_id")

	logEntry := h.logRequest(c, "delete_team").WithField("team_id", teamID)
	logEntry.Info("Deleting team")

	if err := h.teamUseCase.DeleteTeam(c.Request().Context(), teamID); err != nil {
		logEntry.WithError(err).Error("Failed to delete team")
		return respondError(c, err)
	}

	logEntry.Info("Team deleted successfully")
	return c.NoContent(http.StatusNoContent)
}

// PostTeamMembers обрабатывает добавление существующих пользователей в команду
func (h *TeamHandler) PostTeamMembers(c echo.Context) error {
	teamID := c.Param("team_id")

	var req api.AddTeamMembersRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind add members request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "add_team_members").WithFields(logrus.Fields{
		"team_id":       teamID,
		"members_count": len(req.UserIDs),
	})
	logEntry.Info("Adding team members")

	team, err := h.teamUseCase.AddTeamMembers(c.Request().Context(), teamID, req.UserIDs)
	if err != nil {
		logEntry.WithError(err).Error("Failed to add team members")
		return respondError(c, err)
	}

	logEntry.Info("Team members added successfully")
	return c.JSON(http.StatusOK, toAPITeam(team))
}

// DeleteTeamMember обрабатывает удаление пользователя из команды
func (h *TeamHandler) DeleteTeamMember(c echo.Context) error {
	teamID := c.Param("team_id")
	userID := c.Param("user_id")

	logEntry := h.logRequest(c, "remove_team_member").WithFields(logrus.Fields{
		"team_id": teamID,
		"user_id": userID,
	})
	logEntry.Info("Removing team member")

	if err := h.teamUseCase.RemoveTeamMember(c.Request().Context(), teamID, userID); err != nil {
		logEntry.WithError(err).Error("Failed to remove team member")
		return respondError(c, err)
	}

	logEntry.Info("Team member removed successfully")
	return c.NoContent(http.StatusNoContent)
}
