package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidPRID      = errors.New("invalid pull request id")
	ErrInvalidPRTitle   = errors.New("invalid pull request title")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidTeamName  = errors.New("invalid team name")
	ErrNoMembersInBatch = errors.New("member list is empty")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")

	// Team membership errors
	ErrTeamMemberNotFound      = errors.New("team member not found")
	ErrTeamMemberAlreadyExists = errors.New("user already belongs to a team")

	// PR errors
	ErrPRNotFound      = errors.New("pull request not found")
	ErrPRAlreadyExists = errors.New("pull request already exists")
	ErrPRAlreadyMerged = errors.New("pull request already merged")

	// Reviewer errors
	ErrReviewerNotAssigned = errors.New("reviewer not assigned to this PR")
	ErrNoReviewerCandidate = errors.New("no replacement candidate available")
)

// HTTPError описывает машиночитаемый код и сообщение для внешнего слоя.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrUserNotFound:            {Code: "NOT_FOUND", Message: "user not found"},
	ErrUserAlreadyExists:       {Code: "USER_EXISTS", Message: "username already exists"},
	ErrTeamNotFound:            {Code: "NOT_FOUND", Message: "team not found"},
	ErrTeamAlreadyExists:       {Code: "TEAM_EXISTS", Message: "team_name already exists"},
	ErrTeamMemberNotFound:      {Code: "NOT_FOUND", Message: "team member not found"},
	ErrTeamMemberAlreadyExists: {Code: "TEAM_MEMBER_EXISTS", Message: "user already belongs to a team"},
	ErrPRNotFound:              {Code: "NOT_FOUND", Message: "pull request not found"},
	ErrPRAlreadyExists:         {Code: "PR_EXISTS", Message: "PR id already exists"},
	ErrPRAlreadyMerged:         {Code: "PR_MERGED", Message: "cannot reassign on merged PR"},
	ErrReviewerNotAssigned:     {Code: "NOT_ASSIGNED", Message: "reviewer is not assigned to this PR"},
	ErrNoReviewerCandidate:     {Code: "NO_CANDIDATE", Message: "no active replacement candidate in team"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку.
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
