package auth

import (
	"testing"
	"time"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/service"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.store = store.New()
	users := service.NewUserService(suite.store, validator.New())
	suite.service = NewAuthService(users, "test-secret", 12*time.Hour)

	orgID := int64(1)
	physID := int64(4)
	suite.store.CreateUser(models.User{
		Username:       "elena.vasquez",
		Password:       "oncall123",
		FirstName:      "Elena",
		LastName:       "Vasquez",
		Email:          "evasquez@lakeview.example.org",
		Role:           models.UserRolePhysician,
		OrganizationID: &orgID,
		PhysicianID:    &physID,
	})
}

func (suite *AuthServiceTestSuite) TestLoginIssuesValidToken() {
	user, token, err := suite.service.Login("elena.vasquez", "oncall123")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "elena.vasquez", user.Username)
	assert.NotEmpty(suite.T(), token)

	claims, err := suite.service.ValidateToken(token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
	assert.Equal(suite.T(), "elena.vasquez", claims.Username)
	assert.Equal(suite.T(), models.UserRolePhysician, claims.Role)
	assert.Equal(suite.T(), int64(1), *claims.OrganizationID)
	assert.Equal(suite.T(), int64(4), *claims.PhysicianID)
	assert.True(suite.T(), claims.ExpiresAt.After(time.Now()))
}

func (suite *AuthServiceTestSuite) TestLoginRejectsBadCredentials() {
	_, _, err := suite.service.Login("elena.vasquez", "wrong")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)

	_, _, err = suite.service.Login("ghost", "oncall123")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestValidateRejectsGarbageToken() {
	_, err := suite.service.ValidateToken("not.a.token")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestValidateRejectsTokenSignedWithOtherSecret() {
	other := NewAuthService(nil, "different-secret", time.Hour)
	user, _ := suite.store.GetUserByUsername("elena.vasquez")
	token, err := other.GenerateToken(user)
	assert.NoError(suite.T(), err)

	_, err = suite.service.ValidateToken(token)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestValidateRejectsExpiredToken() {
	users := service.NewUserService(suite.store, validator.New())
	expired := NewAuthService(users, "test-secret", -time.Hour)
	user, _ := suite.store.GetUserByUsername("elena.vasquez")
	token, err := expired.GenerateToken(user)
	assert.NoError(suite.T(), err)

	_, err = suite.service.ValidateToken(token)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
