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

// OrganizationStoreTestSuite exercises the organization CRUD surface
type OrganizationStoreTestSuite struct {
	suite.Suite
	store *store.Store
	now   time.Time
}

func (suite *OrganizationStoreTestSuite) SetupTest() {
	suite.store = store.New()
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.store.SetNowFunc(func() time.Time { return suite.now })
}

func (suite *OrganizationStoreTestSuite) TestCreateThenGetRoundTrip() {
	created := suite.store.CreateOrganization(models.Organization{
		Name:         "Lakeview Regional",
		Address:      "2400 Harbor Drive",
		City:         "Lakeview",
		State:        "IL",
		Zip:          "60044",
		Phone:        "847-555-0140",
		Email:        "oncall@lakeview.example.org",
		BillingCodes: []string{"99221", "99222"},
	})

	assert.Equal(suite.T(), int64(1), created.ID)
	assert.Equal(suite.T(), suite.now, created.CreatedAt)

	got, err := suite.store.GetOrganizationByID(created.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), created, got)
}

func (suite *OrganizationStoreTestSuite) TestGetMissingReturnsNotFound() {
	got, err := suite.store.GetOrganizationByID(42)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationStoreTestSuite) TestIDsAreSequentialAndNeverReused() {
	a := suite.store.CreateOrganization(models.Organization{Name: "A"})
	b := suite.store.CreateOrganization(models.Organization{Name: "B"})
	assert.Equal(suite.T(), int64(1), a.ID)
	assert.Equal(suite.T(), int64(2), b.ID)

	assert.NoError(suite.T(), suite.store.DeleteOrganization(b.ID))

	c := suite.store.CreateOrganization(models.Organization{Name: "C"})
	assert.Equal(suite.T(), int64(3), c.ID)
}

func (suite *OrganizationStoreTestSuite) TestUpdateChangesOnlyProvidedFields() {
	created := suite.store.CreateOrganization(models.Organization{
		Name:  "Lakeview Regional",
		City:  "Lakeview",
		Phone: "847-555-0140",
	})

	phone := "847-555-0199"
	updated, err := suite.store.UpdateOrganization(created.ID, store.OrganizationPatch{Phone: &phone})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), phone, updated.Phone)
	assert.Equal(suite.T(), created.Name, updated.Name)
	assert.Equal(suite.T(), created.City, updated.City)
	assert.Equal(suite.T(), created.CreatedAt, updated.CreatedAt)
}

func (suite *OrganizationStoreTestSuite) TestUpdateMissingReturnsNotFound() {
	name := "Nobody"
	updated, err := suite.store.UpdateOrganization(9, store.OrganizationPatch{Name: &name})
	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationStoreTestSuite) TestDeleteThenGetReturnsAbsent() {
	created := suite.store.CreateOrganization(models.Organization{Name: "Lakeview Regional"})

	assert.NoError(suite.T(), suite.store.DeleteOrganization(created.ID))

	_, err := suite.store.GetOrganizationByID(created.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)

	// A second delete reports the record as already absent.
	assert.ErrorIs(suite.T(), suite.store.DeleteOrganization(created.ID), apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationStoreTestSuite) TestListReturnsAllInIDOrder() {
	suite.store.CreateOrganization(models.Organization{Name: "A"})
	suite.store.CreateOrganization(models.Organization{Name: "B"})

	orgs := suite.store.ListOrganizations()
	assert.Len(suite.T(), orgs, 2)
	assert.Equal(suite.T(), "A", orgs[0].Name)
	assert.Equal(suite.T(), "B", orgs[1].Name)
}

func (suite *OrganizationStoreTestSuite) TestReturnedRecordsDoNotAliasStoreState() {
	created := suite.store.CreateOrganization(models.Organization{
		Name:         "Lakeview Regional",
		BillingCodes: []string{"99221"},
	})

	created.BillingCodes[0] = "tampered"
	created.Name = "tampered"

	got, err := suite.store.GetOrganizationByID(created.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lakeview Regional", got.Name)
	assert.Equal(suite.T(), []string{"99221"}, got.BillingCodes)
}

func TestOrganizationStoreTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationStoreTestSuite))
}
