package service

import (
	"testing"
	"time"

	apperrors "oncall-portal-backend/internal/errors"
	"oncall-portal-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	service *ScheduleService
	start   time.Time
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.store = store.New()
	suite.service = NewScheduleService(suite.store, validator.New())
	suite.start = time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
}

func (suite *ScheduleServiceTestSuite) TestCreateDefaultsToActive() {
	sc, err := suite.service.Create(&CreateScheduleRequest{
		OrganizationID: 1,
		PhysicianID:    1,
		StartTime:      suite.start,
		EndTime:        suite.start.AddDate(0, 0, 7),
		Title:          "Primary on-call",
	})
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), sc.IsActive)
}

func (suite *ScheduleServiceTestSuite) TestCreateHonorsExplicitInactive() {
	inactive := false
	sc, err := suite.service.Create(&CreateScheduleRequest{
		OrganizationID: 1,
		PhysicianID:    1,
		StartTime:      suite.start,
		EndTime:        suite.start.AddDate(0, 0, 7),
		Title:          "Backup on-call",
		IsActive:       &inactive,
	})
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), sc.IsActive)
}

func (suite *ScheduleServiceTestSuite) TestCreateRejectsInvertedTimeRange() {
	_, err := suite.service.Create(&CreateScheduleRequest{
		OrganizationID: 1,
		PhysicianID:    1,
		StartTime:      suite.start,
		EndTime:        suite.start.Add(-time.Hour),
		Title:          "Primary on-call",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

func (suite *ScheduleServiceTestSuite) TestUpdateRejectsInvertedTimeRange() {
	sc, err := suite.service.Create(&CreateScheduleRequest{
		OrganizationID: 1,
		PhysicianID:    1,
		StartTime:      suite.start,
		EndTime:        suite.start.AddDate(0, 0, 7),
		Title:          "Primary on-call",
	})
	assert.NoError(suite.T(), err)

	newStart := suite.start.AddDate(0, 0, 10)
	newEnd := suite.start.AddDate(0, 0, 9)
	_, err = suite.service.Update(sc.ID, &UpdateScheduleRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

func (suite *ScheduleServiceTestSuite) TestUpdateMissingSchedule() {
	title := "Swing shift"
	_, err := suite.service.Update(404, &UpdateScheduleRequest{Title: &title})
	assert.ErrorIs(suite.T(), err, apperrors.ErrScheduleNotFound)
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
