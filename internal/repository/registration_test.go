//go:build integration
// +build integration

package repository

import (
	"strings"
	"sync"
	"testing"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RegistrationRepositoryTestSuite tests the RegistrationRepository
type RegistrationRepositoryTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	repo *RegistrationRepository
}

// SetupSuite runs before all tests in the suite
func (suite *RegistrationRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRegistrationRepository(suite.base.DB)
}

// SetupTest runs before each test
func (suite *RegistrationRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

// TearDownTest runs after each test
func (suite *RegistrationRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func (suite *RegistrationRepositoryTestSuite) reloadEvent(eventID uuid.UUID) *models.Event {
	var event models.Event
	suite.Require().NoError(suite.base.DB.First(&event, "id = ?", eventID).Error)
	return &event
}

func (suite *RegistrationRepositoryTestSuite) register(event *models.Event, user *models.User, quantity int) (*models.Registration, error) {
	reg := &models.Registration{
		EventID:   event.ID,
		UserID:    user.ID,
		EventType: event.Type,
		Quantity:  quantity,
	}
	return reg, suite.repo.CreateConfirmed(reg)
}

// TestCreateConfirmed tests a normal solo registration
func (suite *RegistrationRepositoryTestSuite) TestCreateConfirmed() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)
	user := testutils.CreateParticipant(suite.base.DB)

	reg, err := suite.register(event, user, 1)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, reg.ID)
	suite.Equal(models.RegistrationStatusConfirmed, reg.Status)
	suite.True(strings.HasPrefix(reg.TicketID, "TKT-"))
	suite.Equal(1, suite.reloadEvent(event.ID).CurrentRegistrations)
}

// TestCreateConfirmedDuplicate tests the one-ticket-per-user rule
func (suite *RegistrationRepositoryTestSuite) TestCreateConfirmedDuplicate() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)
	user := testutils.CreateParticipant(suite.base.DB)

	_, err := suite.register(event, user, 1)
	suite.Require().NoError(err)

	_, err = suite.register(event, user, 1)

	suite.ErrorIs(err, apperrors.ErrAlreadyRegistered)
	suite.Equal(1, suite.reloadEvent(event.ID).CurrentRegistrations)
}

// TestCreateConfirmedFull tests rejection once the limit is reached
func (suite *RegistrationRepositoryTestSuite) TestCreateConfirmedFull() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID, func(e *models.Event) {
		e.RegistrationLimit = 1
	})
	first := testutils.CreateParticipant(suite.base.DB)
	second := testutils.CreateParticipant(suite.base.DB)

	_, err := suite.register(event, first, 1)
	suite.Require().NoError(err)

	_, err = suite.register(event, second, 1)

	suite.ErrorIs(err, apperrors.ErrRegistrationFull)
	suite.Equal(1, suite.reloadEvent(event.ID).CurrentRegistrations)
}

// TestCreateConfirmedMerchandise tests that a purchase reserves stock
func (suite *RegistrationRepositoryTestSuite) TestCreateConfirmedMerchandise() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateMerchEvent(suite.base.DB, organizer.ID, 5, 3)
	user := testutils.CreateParticipant(suite.base.DB)

	_, err := suite.register(event, user, 3)

	suite.NoError(err)
	reloaded := suite.reloadEvent(event.ID)
	suite.Equal(2, reloaded.StockQuantity)
	suite.Equal(1, reloaded.CurrentRegistrations)
}

// TestCreateConfirmedInsufficientStock tests that a failed stock reservation
// releases the capacity slot taken earlier in the transaction
func (suite *RegistrationRepositoryTestSuite) TestCreateConfirmedInsufficientStock() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateMerchEvent(suite.base.DB, organizer.ID, 2, 5)
	user := testutils.CreateParticipant(suite.base.DB)

	_, err := suite.register(event, user, 3)

	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	reloaded := suite.reloadEvent(event.ID)
	suite.Equal(2, reloaded.StockQuantity)
	suite.Equal(0, reloaded.CurrentRegistrations)
}

// TestCancelSolo tests cancellation releasing exactly one slot
func (suite *RegistrationRepositoryTestSuite) TestCancelSolo() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)
	user := testutils.CreateParticipant(suite.base.DB)
	reg, err := suite.register(event, user, 1)
	suite.Require().NoError(err)

	suite.NoError(suite.repo.CancelSolo(reg.ID))

	suite.Equal(0, suite.reloadEvent(event.ID).CurrentRegistrations)
	loaded, err := suite.repo.GetByID(reg.ID)
	suite.NoError(err)
	suite.Equal(models.RegistrationStatusCancelled, loaded.Status)

	// A repeated cancel is a no-op: nothing is released twice.
	suite.NoError(suite.repo.CancelSolo(reg.ID))
	suite.Equal(0, suite.reloadEvent(event.ID).CurrentRegistrations)
}

// TestCancelSoloMerchandise tests that cancellation restores stock
func (suite *RegistrationRepositoryTestSuite) TestCancelSoloMerchandise() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateMerchEvent(suite.base.DB, organizer.ID, 5, 3)
	user := testutils.CreateParticipant(suite.base.DB)
	reg, err := suite.register(event, user, 2)
	suite.Require().NoError(err)
	suite.Equal(3, suite.reloadEvent(event.ID).StockQuantity)

	suite.NoError(suite.repo.CancelSolo(reg.ID))

	reloaded := suite.reloadEvent(event.ID)
	suite.Equal(5, reloaded.StockQuantity)
	suite.Equal(0, reloaded.CurrentRegistrations)
}

// TestCancelSoloNotFound tests cancelling a registration that does not exist
func (suite *RegistrationRepositoryTestSuite) TestCancelSoloNotFound() {
	err := suite.repo.CancelSolo(uuid.New())
	suite.ErrorIs(err, apperrors.ErrRegistrationNotFound)
}

// TestConcurrentRegistrationsLastSlot tests two users racing for one slot
func (suite *RegistrationRepositoryTestSuite) TestConcurrentRegistrationsLastSlot() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID, func(e *models.Event) {
		e.RegistrationLimit = 1
	})
	first := testutils.CreateParticipant(suite.base.DB)
	second := testutils.CreateParticipant(suite.base.DB)

	var wg sync.WaitGroup
	var err1, err2 error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err1 = suite.register(event, first, 1)
	}()
	go func() {
		defer wg.Done()
		_, err2 = suite.register(event, second, 1)
	}()
	wg.Wait()

	if err1 == nil {
		suite.ErrorIs(err2, apperrors.ErrRegistrationFull)
	} else {
		suite.ErrorIs(err1, apperrors.ErrRegistrationFull)
		suite.NoError(err2)
	}
	suite.Equal(1, suite.reloadEvent(event.ID).CurrentRegistrations)
}

// TestGetByTicketID tests lookup by ticket id with relations loaded
func (suite *RegistrationRepositoryTestSuite) TestGetByTicketID() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)
	user := testutils.CreateParticipant(suite.base.DB)
	reg, err := suite.register(event, user, 1)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetByTicketID(reg.TicketID)

	suite.NoError(err)
	suite.Equal(reg.ID, loaded.ID)
	suite.Require().NotNil(loaded.Event)
	suite.Equal(event.Name, loaded.Event.Name)
	suite.Require().NotNil(loaded.User)
	suite.Equal(user.Email, loaded.User.Email)
}

// TestGetConfirmedByEventAndUser tests that cancelled tickets are skipped
func (suite *RegistrationRepositoryTestSuite) TestGetConfirmedByEventAndUser() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)
	user := testutils.CreateParticipant(suite.base.DB)
	reg, err := suite.register(event, user, 1)
	suite.Require().NoError(err)

	found, err := suite.repo.GetConfirmedByEventAndUser(event.ID, user.ID)
	suite.NoError(err)
	suite.Equal(reg.ID, found.ID)

	suite.Require().NoError(suite.repo.CancelSolo(reg.ID))
	_, err = suite.repo.GetConfirmedByEventAndUser(event.ID, user.ID)
	suite.Error(err)
}

// TestListByUser tests listing a user's registrations across events
func (suite *RegistrationRepositoryTestSuite) TestListByUser() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	eventA := testutils.CreateEvent(suite.base.DB, organizer.ID)
	eventB := testutils.CreateEvent(suite.base.DB, organizer.ID)
	user := testutils.CreateParticipant(suite.base.DB)
	other := testutils.CreateParticipant(suite.base.DB)

	_, err := suite.register(eventA, user, 1)
	suite.Require().NoError(err)
	_, err = suite.register(eventB, user, 1)
	suite.Require().NoError(err)
	_, err = suite.register(eventA, other, 1)
	suite.Require().NoError(err)

	regs, err := suite.repo.ListByUser(user.ID)

	suite.NoError(err)
	suite.Len(regs, 2)
	for _, reg := range regs {
		suite.NotNil(reg.Event)
	}
}

// TestCountConfirmedByEvent tests the confirmed ticket count
func (suite *RegistrationRepositoryTestSuite) TestCountConfirmedByEvent() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateEvent(suite.base.DB, organizer.ID)
	first := testutils.CreateParticipant(suite.base.DB)
	second := testutils.CreateParticipant(suite.base.DB)

	regFirst, err := suite.register(event, first, 1)
	suite.Require().NoError(err)
	_, err = suite.register(event, second, 1)
	suite.Require().NoError(err)

	count, err := suite.repo.CountConfirmedByEvent(event.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	suite.Require().NoError(suite.repo.CancelSolo(regFirst.ID))
	count, err = suite.repo.CountConfirmedByEvent(event.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestRegistrationRepositoryTestSuite runs the test suite
func TestRegistrationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationRepositoryTestSuite))
}
