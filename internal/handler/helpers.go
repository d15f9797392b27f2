package handler

import (
	"errors"
	"net/http"

	"review-coordinator/api"
	"review-coordinator/internal/domain"

	"github.com/labstack/echo/v4"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPITeam(team *domain.Team) api.Team {
	members := make([]api.TeamMember, len(team.Members))
	for i, member := range team.Members {
		members[i] = api.TeamMember{
			UserID:   member.ID,
			Username: member.Username,
			IsActive: member.IsActive,
		}
	}
	return api.Team{
		TeamID:   team.ID,
		TeamName: team.Name,
		Members:  members,
	}
}

func toAPIUser(user *domain.User) api.User {
	return api.User{
		UserID:   user.ID,
		Username: user.Username,
		TeamName: user.TeamName,
		IsActive: user.IsActive,
	}
}

func toAPIPullRequest(pr *domain.PullRequest) api.PullRequest {
	return api.PullRequest{
		PullRequestID:     pr.ID,
		PullRequestName:   pr.Title,
		AuthorID:          pr.AuthorID,
		Status:            pr.Status,
		AssignedReviewers: pr.AssignedReviewers,
		CreatedAt:         pr.CreatedAt,
		MergedAt:          pr.MergedAt,
	}
}

func toAPIPRShorts(prs []*domain.PullRequest) []api.PullRequestShort {
	result := make([]api.PullRequestShort, len(prs))
	for i, pr := range prs {
		result[i] = api.PullRequestShort{
			PullRequestID:   pr.ID,
			PullRequestName: pr.Title,
			AuthorID:        pr.AuthorID,
			Status:          pr.Status,
		}
	}
	return result
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.APIError{
			Code:    code,
			Message: message,
		},
	}
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrPRAlreadyExists),
		errors.Is(err, domain.ErrPRAlreadyMerged),
		errors.Is(err, domain.ErrReviewerNotAssigned),
		errors.Is(err, domain.ErrNoReviewerCandidate),
		errors.Is(err, domain.ErrTeamMemberAlreadyExists):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrTeamMemberNotFound),
		errors.Is(err, domain.ErrPRNotFound):
		return http.StatusNotFound

	// Bad Request errors (400)
	case errors.Is(err, domain.ErrTeamAlreadyExists),
		errors.Is(err, domain.ErrInvalidPRID),
		errors.Is(err, domain.ErrInvalidPRTitle),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidTeamName),
		errors.Is(err, domain.ErrNoMembersInBatch):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError переводит доменную ошибку в HTTP-ответ. Неклассифицированные
// ошибки хранилища отдаются как 500 без деталей.
func respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), api.ErrorResponse{Error: api.APIError{
			Code:    httpErr.Code,
			Message: httpErr.Message,
		}})
	}

	if getHTTPStatusCode(err) == http.StatusBadRequest {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
}
