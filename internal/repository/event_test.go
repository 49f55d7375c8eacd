//go:build integration
// +build integration

package repository

import (
	"testing"

	"event-portal-backend/internal/database/models"
	"event-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// EventRepositoryTestSuite tests the EventRepository
type EventRepositoryTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	repo *EventRepository
}

// SetupSuite runs before all tests in the suite
func (suite *EventRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEventRepository(suite.base.DB)
}

// SetupTest runs before each test
func (suite *EventRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

// TearDownTest runs after each test
func (suite *EventRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

// TestCreateAndGet tests creating and retrieving an event
func (suite *EventRepositoryTestSuite) TestCreateAndGet() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)

	loaded, err := suite.repo.GetByID(event.ID)

	suite.NoError(err)
	suite.Equal(event.Name, loaded.Name)
	suite.Equal(models.EventStatusPublished, loaded.Status)
}

// TestGetWithOrganizer tests that the organizer relation is preloaded
func (suite *EventRepositoryTestSuite) TestGetWithOrganizer() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)

	loaded, err := suite.repo.GetWithOrganizer(event.ID)

	suite.NoError(err)
	suite.Require().NotNil(loaded.Organizer)
	suite.Equal(organizer.Email, loaded.Organizer.Email)
}

// TestListOpen tests that drafts and finished events are hidden
func (suite *EventRepositoryTestSuite) TestListOpen() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	published := testutils.CreateEvent(suite.base.DB, organizer.ID)
	ongoing := testutils.CreateEvent(suite.base.DB, organizer.ID, func(e *models.Event) {
		e.Status = models.EventStatusOngoing
	})
	testutils.CreateEvent(suite.base.DB, organizer.ID, func(e *models.Event) {
		e.Status = models.EventStatusDraft
	})
	testutils.CreateEvent(suite.base.DB, organizer.ID, func(e *models.Event) {
		e.Status = models.EventStatusCompleted
	})

	events, err := suite.repo.ListOpen()

	suite.NoError(err)
	suite.Len(events, 2)
	ids := map[string]bool{}
	for _, e := range events {
		ids[e.ID.String()] = true
	}
	suite.True(ids[published.ID.String()])
	suite.True(ids[ongoing.ID.String()])
}

// TestListByOrganizer tests scoping the listing to one organizer
func (suite *EventRepositoryTestSuite) TestListByOrganizer() {
	mine := testutils.CreateOrganizer(suite.base.DB)
	theirs := testutils.CreateOrganizer(suite.base.DB)
	testutils.CreateEvent(suite.base.DB, mine.ID)
	testutils.CreateEvent(suite.base.DB, mine.ID, func(e *models.Event) {
		e.Status = models.EventStatusDraft
	})
	testutils.CreateEvent(suite.base.DB, theirs.ID)

	events, err := suite.repo.ListByOrganizer(mine.ID)

	suite.NoError(err)
	suite.Len(events, 2)
}

// TestTryReserveAndRelease tests the capacity ledger bounds
func (suite *EventRepositoryTestSuite) TestTryReserveAndRelease() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID, func(e *models.Event) {
		e.RegistrationLimit = 3
	})

	ok, err := suite.repo.TryReserve(event.ID, 2)
	suite.NoError(err)
	suite.True(ok)

	// Would overshoot the limit.
	ok, err = suite.repo.TryReserve(event.ID, 2)
	suite.NoError(err)
	suite.False(ok)

	ok, err = suite.repo.TryReserve(event.ID, 1)
	suite.NoError(err)
	suite.True(ok)

	suite.NoError(suite.repo.Release(event.ID, 2))
	loaded, err := suite.repo.GetByID(event.ID)
	suite.NoError(err)
	suite.Equal(1, loaded.CurrentRegistrations)

	// Releasing more than held floors at zero.
	suite.NoError(suite.repo.Release(event.ID, 5))
	loaded, err = suite.repo.GetByID(event.ID)
	suite.NoError(err)
	suite.Equal(0, loaded.CurrentRegistrations)
}

// TestUpdatePreservesLedgerCounters tests that an edit written from a copy
// read before a reservation does not roll the counters back
func (suite *EventRepositoryTestSuite) TestUpdatePreservesLedgerCounters() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateMerchEvent(suite.base.DB, organizer.ID, 10, 2, func(e *models.Event) {
		e.RegistrationLimit = 10
	})

	stale, err := suite.repo.GetByID(event.ID)
	suite.Require().NoError(err)

	ok, err := suite.repo.TryReserve(event.ID, 3)
	suite.Require().NoError(err)
	suite.Require().True(ok)
	ok, err = suite.repo.TryReserveStock(event.ID, 4)
	suite.Require().NoError(err)
	suite.Require().True(ok)

	stale.Description = "edited after the reservations committed"
	suite.NoError(suite.repo.Update(stale))

	loaded, err := suite.repo.GetByID(event.ID)
	suite.NoError(err)
	suite.Equal("edited after the reservations committed", loaded.Description)
	suite.Equal(3, loaded.CurrentRegistrations)
	suite.Equal(6, loaded.StockQuantity)
}

// TestTryReserveStock tests the merchandise stock ledger
func (suite *EventRepositoryTestSuite) TestTryReserveStock() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateMerchEvent(suite.base.DB, organizer.ID, 4, 2)

	ok, err := suite.repo.TryReserveStock(event.ID, 3)
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.repo.TryReserveStock(event.ID, 2)
	suite.NoError(err)
	suite.False(ok)

	suite.NoError(suite.repo.ReleaseStock(event.ID, 3))
	loaded, err := suite.repo.GetByID(event.ID)
	suite.NoError(err)
	suite.Equal(4, loaded.StockQuantity)
}

// TestDelete tests that deletion cancels confirmed registrations first
func (suite *EventRepositoryTestSuite) TestDelete() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)
	user := testutils.CreateParticipant(suite.base.DB)
	regs := NewRegistrationRepository(suite.base.DB)
	reg := &models.Registration{
		EventID:   event.ID,
		UserID:    user.ID,
		EventType: event.Type,
		Quantity:  1,
	}
	suite.Require().NoError(regs.CreateConfirmed(reg))

	suite.NoError(suite.repo.Delete(event.ID))

	_, err := suite.repo.GetByID(event.ID)
	suite.Error(err)
	var loaded models.Registration
	suite.NoError(suite.base.DB.First(&loaded, "id = ?", reg.ID).Error)
	suite.Equal(models.RegistrationStatusCancelled, loaded.Status)
}

// TestEventRepositoryTestSuite runs the test suite
func TestEventRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EventRepositoryTestSuite))
}
