package service

import (
	"testing"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	service *UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.store = store.New()
	suite.service = NewUserService(suite.store, validator.New())
}

func validCreateUser() *CreateUserRequest {
	return &CreateUserRequest{
		Username:  "jdoe",
		Password:  "secret1",
		FirstName: "Jordan",
		LastName:  "Doe",
		Email:     "jdoe@lakeview.example.org",
		Role:      models.UserRolePhysician,
	}
}

func (suite *UserServiceTestSuite) TestCreateUser() {
	u, err := suite.service.Create(validCreateUser())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jdoe", u.Username)
	assert.Equal(suite.T(), models.UserRolePhysician, u.Role)
}

func (suite *UserServiceTestSuite) TestCreateRejectsDuplicateUsername() {
	_, err := suite.service.Create(validCreateUser())
	assert.NoError(suite.T(), err)

	dup := validCreateUser()
	dup.Email = "other@lakeview.example.org"
	_, err = suite.service.Create(dup)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "already taken")
}

func (suite *UserServiceTestSuite) TestCreateRejectsBadPayloads() {
	req := validCreateUser()
	req.Password = "short"
	_, err := suite.service.Create(req)
	assert.Error(suite.T(), err)

	req = validCreateUser()
	req.Email = "not-an-email"
	_, err = suite.service.Create(req)
	assert.Error(suite.T(), err)

	req = validCreateUser()
	req.Role = "superuser"
	_, err = suite.service.Create(req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

func (suite *UserServiceTestSuite) TestVerifyCredentials() {
	_, err := suite.service.Create(validCreateUser())
	assert.NoError(suite.T(), err)

	u, err := suite.service.VerifyCredentials("jdoe", "secret1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jdoe", u.Username)

	_, badPass := suite.service.VerifyCredentials("jdoe", "wrong")
	_, badUser := suite.service.VerifyCredentials("ghost", "secret1")
	assert.ErrorIs(suite.T(), badPass, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(suite.T(), badUser, apperrors.ErrInvalidCredentials)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
