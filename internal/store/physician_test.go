package store_test

import (
	"testing"
	"time"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PhysicianStoreTestSuite struct {
	suite.Suite
	store *store.Store
	now   time.Time
}

func (suite *PhysicianStoreTestSuite) SetupTest() {
	suite.store = store.New()
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.store.SetNowFunc(func() time.Time { return suite.now })
}

func (suite *PhysicianStoreTestSuite) createPhysician() *models.Physician {
	return suite.store.CreatePhysician(models.Physician{
		FirstName:   "Elena",
		LastName:    "Vasquez",
		Specialty:   "Cardiology",
		Phone:       "555-0141",
		Email:       "evasquez@lakeview.example.org",
		Credentials: []string{"MD", "FACC"},
	})
}

func (suite *PhysicianStoreTestSuite) TestCreateThenGetRoundTrip() {
	created := suite.createPhysician()
	assert.Equal(suite.T(), int64(1), created.ID)
	assert.Equal(suite.T(), suite.now, created.CreatedAt)

	got, err := suite.store.GetPhysicianByID(created.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), created, got)
}

func (suite *PhysicianStoreTestSuite) TestGetMissingPhysician() {
	_, err := suite.store.GetPhysicianByID(404)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPhysicianNotFound)
}

func (suite *PhysicianStoreTestSuite) TestPartialUpdateChangesOnlyProvidedFields() {
	created := suite.createPhysician()

	specialty := "Interventional Cardiology"
	updated, err := suite.store.UpdatePhysician(created.ID, store.PhysicianPatch{Specialty: &specialty})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Interventional Cardiology", updated.Specialty)
	assert.Equal(suite.T(), created.FirstName, updated.FirstName)
	assert.Equal(suite.T(), created.Email, updated.Email)
	assert.Equal(suite.T(), created.Credentials, updated.Credentials)
}

func (suite *PhysicianStoreTestSuite) TestDeletePhysician() {
	created := suite.createPhysician()
	assert.NoError(suite.T(), suite.store.DeletePhysician(created.ID))
	_, err := suite.store.GetPhysicianByID(created.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPhysicianNotFound)
	assert.ErrorIs(suite.T(), suite.store.DeletePhysician(created.ID), apperrors.ErrPhysicianNotFound)
}

func (suite *PhysicianStoreTestSuite) TestCredentialsDoNotAliasStoreState() {
	created := suite.createPhysician()
	created.Credentials[0] = "DO"

	got, err := suite.store.GetPhysicianByID(created.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "MD", got.Credentials[0])
}

func TestPhysicianStoreTestSuite(t *testing.T) {
	suite.Run(t, new(PhysicianStoreTestSuite))
}
