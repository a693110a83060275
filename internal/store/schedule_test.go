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

// ScheduleStoreTestSuite exercises schedule CRUD and the active-window filter
type ScheduleStoreTestSuite struct {
	suite.Suite
	store *store.Store
	org   *models.Organization
	doc   *models.Physician
}

func (suite *ScheduleStoreTestSuite) SetupTest() {
	suite.store = store.New()
	suite.org = suite.store.CreateOrganization(models.Organization{Name: "Lakeview Regional"})
	suite.doc = suite.store.CreatePhysician(models.Physician{FirstName: "Elena", LastName: "Vasquez"})
}

func (suite *ScheduleStoreTestSuite) createSchedule(start, end time.Time, active bool) *models.Schedule {
	return suite.store.CreateSchedule(models.Schedule{
		OrganizationID: suite.org.ID,
		PhysicianID:    suite.doc.ID,
		StartTime:      start,
		EndTime:        end,
		Title:          "Primary on-call",
		IsActive:       active,
	})
}

func (suite *ScheduleStoreTestSuite) TestCreateThenGetRoundTrip() {
	start := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	created := suite.createSchedule(start, start.AddDate(0, 0, 7), true)

	got, err := suite.store.GetScheduleByID(created.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), created, got)
}

func (suite *ScheduleStoreTestSuite) TestUpdateChangesOnlyProvidedFields() {
	start := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	created := suite.createSchedule(start, start.AddDate(0, 0, 7), true)

	inactive := false
	updated, err := suite.store.UpdateSchedule(created.ID, store.SchedulePatch{IsActive: &inactive})
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), updated.IsActive)
	assert.Equal(suite.T(), created.Title, updated.Title)
	assert.Equal(suite.T(), created.StartTime, updated.StartTime)
}

func (suite *ScheduleStoreTestSuite) TestDeleteSchedule() {
	start := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	created := suite.createSchedule(start, start.AddDate(0, 0, 7), true)

	assert.NoError(suite.T(), suite.store.DeleteSchedule(created.ID))
	_, err := suite.store.GetScheduleByID(created.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrScheduleNotFound)
	assert.ErrorIs(suite.T(), suite.store.DeleteSchedule(created.ID), apperrors.ErrScheduleNotFound)
}

func (suite *ScheduleStoreTestSuite) TestFilterByOrganizationAndPhysician() {
	otherDoc := suite.store.CreatePhysician(models.Physician{FirstName: "Marcus", LastName: "Okafor"})
	start := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	suite.createSchedule(start, start.AddDate(0, 0, 7), true)
	suite.store.CreateSchedule(models.Schedule{
		OrganizationID: suite.org.ID,
		PhysicianID:    otherDoc.ID,
		StartTime:      start.AddDate(0, 0, 7),
		EndTime:        start.AddDate(0, 0, 14),
		Title:          "Backup on-call",
		IsActive:       true,
	})

	assert.Len(suite.T(), suite.store.GetSchedulesByOrganization(suite.org.ID), 2)
	assert.Len(suite.T(), suite.store.GetSchedulesByPhysician(suite.doc.ID), 1)
	assert.Empty(suite.T(), suite.store.GetSchedulesByOrganization(999))
}

func (suite *ScheduleStoreTestSuite) TestActiveSchedulesWindowOverlap() {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	inside := suite.createSchedule(day(10), day(12), true)
	straddlesStart := suite.createSchedule(day(7), day(9), true)
	straddlesEnd := suite.createSchedule(day(14), day(20), true)
	before := suite.createSchedule(day(1), day(5), true)
	inactive := suite.createSchedule(day(10), day(12), false)

	from := day(8)
	to := day(15)
	got := suite.store.GetActiveSchedules(suite.org.ID, &from, &to)

	ids := make([]int64, 0, len(got))
	for _, sc := range got {
		ids = append(ids, sc.ID)
	}
	assert.ElementsMatch(suite.T(), []int64{inside.ID, straddlesStart.ID, straddlesEnd.ID}, ids)
	assert.NotContains(suite.T(), ids, before.ID)
	assert.NotContains(suite.T(), ids, inactive.ID)
}

func (suite *ScheduleStoreTestSuite) TestActiveSchedulesBoundaryTouchIsIncluded() {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	// Interval end == window start and interval start == window end both count.
	endsAtFrom := suite.createSchedule(day(5), day(8), true)
	startsAtTo := suite.createSchedule(day(15), day(18), true)

	from := day(8)
	to := day(15)
	got := suite.store.GetActiveSchedules(suite.org.ID, &from, &to)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), endsAtFrom.ID, got[0].ID)
	assert.Equal(suite.T(), startsAtTo.ID, got[1].ID)
}

func (suite *ScheduleStoreTestSuite) TestActiveSchedulesWithoutBothBoundsSkipsTimeFilter() {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	suite.createSchedule(day(1), day(2), true)
	suite.createSchedule(day(20), day(21), true)
	suite.createSchedule(day(20), day(21), false)

	assert.Len(suite.T(), suite.store.GetActiveSchedules(suite.org.ID, nil, nil), 2)

	from := day(19)
	assert.Len(suite.T(), suite.store.GetActiveSchedules(suite.org.ID, &from, nil), 2)

	to := day(3)
	assert.Len(suite.T(), suite.store.GetActiveSchedules(suite.org.ID, nil, &to), 2)
}

func TestScheduleStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleStoreTestSuite))
}
