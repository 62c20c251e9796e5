package service

import (
	"context"
	"testing"
	"time"

	"onyx/internal/dto"
	"onyx/internal/repository"
	"onyx/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type AuthServiceTestSuite struct {
	suite.Suite
	jwtManager *auth.JWTManager
	svc        *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	logger := zap.NewNop()
	suite.jwtManager = auth.NewJWTManager("test-secret", time.Hour)
	suite.svc = NewAuthService(repository.NewUserRepository(newTestDB(suite.T()), logger), suite.jwtManager, logger)
}

func (suite *AuthServiceTestSuite) register(username, password string) *dto.AuthResponse {
	resp, err := suite.svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(suite.T(), err)
	return resp
}

func (suite *AuthServiceTestSuite) TestRegisterIssuesToken() {
	resp := suite.register("alice", "s3cret")

	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), "alice", resp.User.Username)
	assert.Equal(suite.T(), int64(3600), resp.ExpiresIn)

	claims, err := suite.jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice", claims.Username)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsMismatchedConfirmation() {
	_, err := suite.svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "alice",
		Password:        "one",
		ConfirmPassword: "two",
	})
	assert.ErrorIs(suite.T(), err, ErrPasswordMismatch)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsEmptyFields() {
	_, err := suite.svc.Register(context.Background(), &dto.RegisterRequest{Username: "  ", Password: ""})
	assert.ErrorIs(suite.T(), err, ErrEmptyField)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsDuplicateUsername() {
	suite.register("alice", "s3cret")

	_, err := suite.svc.Register(context.Background(), &dto.RegisterRequest{
		Username:        "alice",
		Password:        "other",
		ConfirmPassword: "other",
	})
	assert.ErrorIs(suite.T(), err, ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestLoginWithCorrectPassword() {
	suite.register("alice", "s3cret")

	resp, err := suite.svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)
}

func (suite *AuthServiceTestSuite) TestLoginWithWrongPassword() {
	suite.register("alice", "s3cret")

	_, err := suite.svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownUser() {
	_, err := suite.svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "pw"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestChangePassword() {
	ctx := context.Background()
	suite.register("alice", "old-pass")

	err := suite.svc.ChangePassword(ctx, "alice", &dto.ChangePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
		ConfirmPassword: "new-pass",
	})
	require.NoError(suite.T(), err)

	_, err = suite.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "old-pass"})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	_, err = suite.svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "new-pass"})
	assert.NoError(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestChangePasswordRequiresCurrentPassword() {
	suite.register("alice", "old-pass")

	err := suite.svc.ChangePassword(context.Background(), "alice", &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
		ConfirmPassword: "new-pass",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestChangeUsernameReissuesToken() {
	ctx := context.Background()
	suite.register("alice", "s3cret")

	resp, err := suite.svc.ChangeUsername(ctx, "alice", &dto.ChangeUsernameRequest{NewUsername: "alicia"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alicia", resp.User.Username)

	claims, err := suite.jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alicia", claims.Username)

	_, err = suite.svc.Login(ctx, &dto.LoginRequest{Username: "alicia", Password: "s3cret"})
	assert.NoError(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestChangeUsernameRejectsTakenName() {
	suite.register("alice", "a")
	suite.register("bob", "b")

	_, err := suite.svc.ChangeUsername(context.Background(), "alice", &dto.ChangeUsernameRequest{NewUsername: "bob"})
	assert.ErrorIs(suite.T(), err, ErrUserExists)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
