package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"

	"review-coordinator/internal/database"
	"review-coordinator/internal/domain"
	"review-coordinator/internal/repository"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TeamRepositoryTestSuite struct {
	suite.Suite
	db         *sql.DB
	teamRepo   domain.TeamRepository
	memberRepo domain.MemberRepository
	userRepo   domain.UserRepository
}

func (suite *TeamRepositoryTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		suite.T().Skip("TEST_DATABASE_DSN is not set, skipping integration tests")
	}

	var err error
	suite.db, err = sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}
	if err = suite.db.Ping(); err != nil {
		log.Fatalf("Failed to ping test database: %v", err)
	}
	if err = database.MigrateDB(suite.db); err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}

	suite.teamRepo = repository.NewTeamRepository(suite.db)
	suite.memberRepo = repository.NewMemberRepository(suite.db)
	suite.userRepo = repository.NewUserRepository(suite.db)
}

func (suite *TeamRepositoryTestSuite) SetupTest() {
	tables := []string{"pull_request_reviewers", "pull_requests", "team_members", "teams", "users"}
	for _, table := range tables {
		_, err := suite.db.ExecContext(context.Background(), fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			log.Printf("Failed to clean table %s: %v", table, err)
		}
	}
}

func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *TeamRepositoryTestSuite) newTeam(name string, members ...*domain.User) *domain.Team {
	return &domain.Team{
		ID:      uuid.NewString(),
		Name:    name,
		Members: members,
	}
}

func (suite *TeamRepositoryTestSuite) TestCreateWithMembers() {
	ctx := context.Background()
	team := suite.newTeam("backend",
		&domain.User{ID: "u1", Username: "Alice", IsActive: true},
		&domain.User{ID: "u2", Username: "Bob", IsActive: false},
	)

	err := suite.teamRepo.CreateWithMembers(ctx, team)
	assert.NoError(suite.T(), err)

	members, err := suite.memberRepo.ListByTeam(ctx, team.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), members, 2)
	assert.Equal(suite.T(), "backend", members[0].TeamName)

	// Пользователи созданы вместе с командой
	user, err := suite.userRepo.GetByID(ctx, "u2")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), user.IsActive)
}

func (suite *TeamRepositoryTestSuite) TestCreateWithMembers_DuplicateName() {
	ctx := context.Background()
	assert.NoError(suite.T(), suite.teamRepo.CreateWithMembers(ctx, suite.newTeam("backend")))

	err := suite.teamRepo.CreateWithMembers(ctx, suite.newTeam("backend"))
	assert.ErrorIs(suite.T(), err, domain.ErrTeamAlreadyExists)
}

func (suite *TeamRepositoryTestSuite) TestCreateWithMembers_MovesMembership() {
	ctx := context.Background()
	first := suite.newTeam("backend", &domain.User{ID: "u1", Username: "Alice", IsActive: true})
	assert.NoError(suite.T(), suite.teamRepo.CreateWithMembers(ctx, first))

	// Тот же пользователь указан участником новой команды
	second := suite.newTeam("frontend", &domain.User{ID: "u1", Username: "Alice", IsActive: true})
	assert.NoError(suite.T(), suite.teamRepo.CreateWithMembers(ctx, second))

	teamID, err := suite.memberRepo.GetTeamIDByUser(ctx, "u1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), second.ID, teamID)

	oldMembers, err := suite.memberRepo.ListByTeam(ctx, first.ID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), oldMembers)
}

func (suite *TeamRepositoryTestSuite) TestAddMembers_Conflict() {
	ctx := context.Background()
	team := suite.newTeam("backend", &domain.User{ID: "u1", Username: "Alice", IsActive: true})
	assert.NoError(suite.T(), suite.teamRepo.CreateWithMembers(ctx, team))

	err := suite.memberRepo.AddMembers(ctx, team.ID, []string{"u1"})
	assert.ErrorIs(suite.T(), err, domain.ErrTeamMemberAlreadyExists)
}

func (suite *TeamRepositoryTestSuite) TestDelete_CascadesMembership() {
	ctx := context.Background()
	team := suite.newTeam("backend", &domain.User{ID: "u1", Username: "Alice", IsActive: true})
	assert.NoError(suite.T(), suite.teamRepo.CreateWithMembers(ctx, team))

	assert.NoError(suite.T(), suite.teamRepo.Delete(ctx, team.ID))

	// Пользователь остается, членство исчезает
	_, err := suite.userRepo.GetByID(ctx, "u1")
	assert.NoError(suite.T(), err)

	teamID, err := suite.memberRepo.GetTeamIDByUser(ctx, "u1")
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), teamID)
}

func (suite *TeamRepositoryTestSuite) TestDelete_NotFound() {
	err := suite.teamRepo.Delete(context.Background(), "team-404")
	assert.ErrorIs(suite.T(), err, domain.ErrTeamNotFound)
}

func (suite *TeamRepositoryTestSuite) TestListActiveCandidates_Deterministic() {
	ctx := context.Background()
	team := suite.newTeam("backend",
		&domain.User{ID: "u1", Username: "Alice", IsActive: true},
		&domain.User{ID: "u2", Username: "Bob", IsActive: true},
		&domain.User{ID: "u3", Username: "Charlie", IsActive: false},
		&domain.User{ID: "u4", Username: "Dave", IsActive: true},
	)
	assert.NoError(suite.T(), suite.teamRepo.CreateWithMembers(ctx, team))

	memberIDs, err := suite.memberRepo.ListUserIDs(ctx, team.ID)
	assert.NoError(suite.T(), err)

	// Неактивный u3 и исключенный u1 не попадают в выборку, порядок по id
	candidates, err := suite.userRepo.ListActiveCandidates(ctx, memberIDs, []string{"u1"}, 2)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), candidates, 2)
	assert.Equal(suite.T(), "u2", candidates[0].ID)
	assert.Equal(suite.T(), "u4", candidates[1].ID)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
