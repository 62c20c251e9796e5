package repository

import (
	"context"
	"database/sql"
	"testing"

	"onyx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	repo *UserRepository
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.repo = NewUserRepository(newTestDB(suite.T()), zap.NewNop())
}

func (suite *UserRepositoryTestSuite) TestCreateAndGet() {
	ctx := context.Background()

	err := suite.repo.Create(ctx, &models.User{Username: "alice", Password: "digest"})
	require.NoError(suite.T(), err)

	user, err := suite.repo.GetByUsername(ctx, "alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice", user.Username)
	assert.Equal(suite.T(), "digest", user.Password)
}

func (suite *UserRepositoryTestSuite) TestGetUnknownUser() {
	_, err := suite.repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(suite.T(), err, sql.ErrNoRows)
}

func (suite *UserRepositoryTestSuite) TestDuplicateUsernameRejected() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.repo.Create(ctx, &models.User{Username: "alice", Password: "a"}))
	err := suite.repo.Create(ctx, &models.User{Username: "alice", Password: "b"})
	assert.Error(suite.T(), err)
}

func (suite *UserRepositoryTestSuite) TestUpdatePassword() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.repo.Create(ctx, &models.User{Username: "alice", Password: "old"}))
	require.NoError(suite.T(), suite.repo.UpdatePassword(ctx, "alice", "new"))

	user, err := suite.repo.GetByUsername(ctx, "alice")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new", user.Password)
}

func (suite *UserRepositoryTestSuite) TestUpdateUsername() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.repo.Create(ctx, &models.User{Username: "alice", Password: "digest"}))
	require.NoError(suite.T(), suite.repo.UpdateUsername(ctx, "alice", "bob"))

	_, err := suite.repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(suite.T(), err, sql.ErrNoRows)

	user, err := suite.repo.GetByUsername(ctx, "bob")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "digest", user.Password)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
