package handler

import (
	"review-coordinator/internal/domain"

	"github.com/sirupsen/logrus"
)

// APIHandler объединяет все обработчики API в единую структуру
type APIHandler struct {
	*TeamHandler
	*UserHandler
	*PRHandler
}

// NewAPIHandler создает новый экземпляр APIHandler со всеми обработчиками
func NewAPIHandler(
	teamUseCase domain.TeamUseCase,
	userUseCase domain.UserUseCase,
	prUseCase domain.PRUseCase,
	logger *logrus.Logger,
) *APIHandler {
	return &APIHandler{
		TeamHandler: NewTeamHandler(teamUseCase, logger),
		UserHandler: NewUserHandler(userUseCase, logger),
		PRHandler:   NewPRHandler(prUseCase, logger),
	}
}
