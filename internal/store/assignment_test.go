package store_test

import (
	"testing"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/models"
	"oncall-portal-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AssignmentStoreTestSuite exercises the organization-physician join table
type AssignmentStoreTestSuite struct {
	suite.Suite
	store *store.Store
	org   *models.Organization
	doc   *models.Physician
}

func (suite *AssignmentStoreTestSuite) SetupTest() {
	suite.store = store.New()
	suite.org = suite.store.CreateOrganization(models.Organization{Name: "Lakeview Regional"})
	suite.doc = suite.store.CreatePhysician(models.Physician{FirstName: "Elena", LastName: "Vasquez"})
}

func (suite *AssignmentStoreTestSuite) TestAssignAndLookupBothDirections() {
	a := suite.store.AssignPhysicianToOrganization(suite.org.ID, suite.doc.ID)
	assert.Equal(suite.T(), int64(1), a.ID)

	docs := suite.store.GetPhysiciansByOrganization(suite.org.ID)
	assert.Len(suite.T(), docs, 1)
	assert.Equal(suite.T(), suite.doc.ID, docs[0].ID)

	orgs := suite.store.GetOrganizationsByPhysician(suite.doc.ID)
	assert.Len(suite.T(), orgs, 1)
	assert.Equal(suite.T(), suite.org.ID, orgs[0].ID)
}

func (suite *AssignmentStoreTestSuite) TestDuplicateAssignmentsYieldDuplicateRows() {
	suite.store.AssignPhysicianToOrganization(suite.org.ID, suite.doc.ID)
	suite.store.AssignPhysicianToOrganization(suite.org.ID, suite.doc.ID)

	// No de-duplication: the physician appears once per assignment row.
	docs := suite.store.GetPhysiciansByOrganization(suite.org.ID)
	assert.Len(suite.T(), docs, 2)
}

func (suite *AssignmentStoreTestSuite) TestRemoveDeletesOneRowPerCall() {
	suite.store.AssignPhysicianToOrganization(suite.org.ID, suite.doc.ID)
	suite.store.AssignPhysicianToOrganization(suite.org.ID, suite.doc.ID)

	assert.NoError(suite.T(), suite.store.RemovePhysicianFromOrganization(suite.org.ID, suite.doc.ID))
	assert.Len(suite.T(), suite.store.GetPhysiciansByOrganization(suite.org.ID), 1)

	assert.NoError(suite.T(), suite.store.RemovePhysicianFromOrganization(suite.org.ID, suite.doc.ID))
	assert.Empty(suite.T(), suite.store.GetPhysiciansByOrganization(suite.org.ID))

	assert.ErrorIs(suite.T(),
		suite.store.RemovePhysicianFromOrganization(suite.org.ID, suite.doc.ID),
		apperrors.ErrAssignmentNotFound)
}

func (suite *AssignmentStoreTestSuite) TestRemoveOnEmptyStoreReturnsNotFoundAndMutatesNothing() {
	empty := store.New()
	assert.ErrorIs(suite.T(),
		empty.RemovePhysicianFromOrganization(99, 99),
		apperrors.ErrAssignmentNotFound)
	assert.Empty(suite.T(), empty.ListAssignments())
}

func (suite *AssignmentStoreTestSuite) TestDanglingPhysicianReferencesAreSkipped() {
	suite.store.AssignPhysicianToOrganization(suite.org.ID, suite.doc.ID)
	assert.NoError(suite.T(), suite.store.DeletePhysician(suite.doc.ID))

	// The assignment row survives the physician delete but resolves to nothing.
	assert.Len(suite.T(), suite.store.ListAssignments(), 1)
	assert.Empty(suite.T(), suite.store.GetPhysiciansByOrganization(suite.org.ID))
}

func (suite *AssignmentStoreTestSuite) TestDanglingOrganizationReferencesAreSkipped() {
	suite.store.AssignPhysicianToOrganization(suite.org.ID, suite.doc.ID)
	assert.NoError(suite.T(), suite.store.DeleteOrganization(suite.org.ID))

	assert.Empty(suite.T(), suite.store.GetOrganizationsByPhysician(suite.doc.ID))
}

func TestAssignmentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentStoreTestSuite))
}
