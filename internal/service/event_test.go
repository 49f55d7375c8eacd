package service_test

import (
	"testing"
	"time"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/mocks"
	"event-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EventServiceTestSuite defines the test suite for EventService
type EventServiceTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	events *mocks.MockEventRepositoryInterface
	svc    *service.EventService
}

// SetupTest sets up the test suite
func (suite *EventServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.events = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.svc = service.NewEventService(suite.events, validator.New(), logger.New())
}

// TearDownTest cleans up after each test
func (suite *EventServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validCreateRequest() *service.CreateEventRequest {
	now := time.Now()
	return &service.CreateEventRequest{
		Name:                 "Open Mic Night",
		Type:                 models.EventTypeNormal,
		RegistrationDeadline: now.Add(24 * time.Hour),
		StartDate:            now.Add(48 * time.Hour),
		EndDate:              now.Add(72 * time.Hour),
		RegistrationLimit:    80,
	}
}

// TestCreateEventDraft tests creating an event without publishing
func (suite *EventServiceTestSuite) TestCreateEventDraft() {
	organizerID := uuid.New()

	suite.events.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(event *models.Event) error {
			suite.Equal(models.EventStatusDraft, event.Status)
			suite.Equal(organizerID, event.OrganizerID)
			suite.Equal(models.EligibilityAll, event.Eligibility)
			suite.Nil(event.PublishedAt)
			event.ID = uuid.New()
			return nil
		})

	resp, err := suite.svc.CreateEvent(organizerID, validCreateRequest())

	suite.NoError(err)
	suite.Equal(models.EventStatusDraft, resp.Status)
	suite.Equal(80, resp.SpotsRemaining)
}

// TestCreateEventPublished tests publishing at creation time
func (suite *EventServiceTestSuite) TestCreateEventPublished() {
	req := validCreateRequest()
	req.Publish = true

	suite.events.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(event *models.Event) error {
			suite.Equal(models.EventStatusPublished, event.Status)
			suite.NotNil(event.PublishedAt)
			return nil
		})

	resp, err := suite.svc.CreateEvent(uuid.New(), req)

	suite.NoError(err)
	suite.Equal(models.EventStatusPublished, resp.Status)
}

// TestCreateEventBadDates tests the date ordering rules
func (suite *EventServiceTestSuite) TestCreateEventBadDates() {
	req := validCreateRequest()
	req.RegistrationDeadline = req.StartDate.Add(time.Hour)

	_, err := suite.svc.CreateEvent(uuid.New(), req)
	suite.True(apperrors.IsValidation(err))

	req = validCreateRequest()
	req.EndDate = req.StartDate.Add(-time.Hour)

	_, err = suite.svc.CreateEvent(uuid.New(), req)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateEventTeamRules tests team configuration validation
func (suite *EventServiceTestSuite) TestCreateEventTeamRules() {
	req := validCreateRequest()
	req.Type = models.EventTypeMerchandise
	req.StockQuantity = 10
	req.TeamBased = true
	req.MinTeamSize = 2
	req.MaxTeamSize = 4

	_, err := suite.svc.CreateEvent(uuid.New(), req)
	suite.True(apperrors.IsValidation(err))

	req = validCreateRequest()
	req.TeamBased = true
	req.MinTeamSize = 4
	req.MaxTeamSize = 2

	_, err = suite.svc.CreateEvent(uuid.New(), req)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateEventMerchandiseNeedsStock tests the stock requirement
func (suite *EventServiceTestSuite) TestCreateEventMerchandiseNeedsStock() {
	req := validCreateRequest()
	req.Type = models.EventTypeMerchandise

	_, err := suite.svc.CreateEvent(uuid.New(), req)

	suite.True(apperrors.IsValidation(err))
}

// TestPublishEvent tests moving a draft to published
func (suite *EventServiceTestSuite) TestPublishEvent() {
	organizerID := uuid.New()
	eventID := uuid.New()

	suite.events.EXPECT().GetByID(eventID).Return(&models.Event{
		BaseModel:   models.BaseModel{ID: eventID},
		Status:      models.EventStatusDraft,
		OrganizerID: organizerID,
	}, nil)
	suite.events.EXPECT().Update(gomock.Any()).
		DoAndReturn(func(event *models.Event) error {
			suite.Equal(models.EventStatusPublished, event.Status)
			suite.NotNil(event.PublishedAt)
			return nil
		})

	resp, err := suite.svc.PublishEvent(organizerID, eventID)

	suite.NoError(err)
	suite.Equal(models.EventStatusPublished, resp.Status)
}

// TestPublishEventAlreadyPublished tests re-publishing
func (suite *EventServiceTestSuite) TestPublishEventAlreadyPublished() {
	organizerID := uuid.New()
	eventID := uuid.New()

	suite.events.EXPECT().GetByID(eventID).Return(&models.Event{
		BaseModel:   models.BaseModel{ID: eventID},
		Status:      models.EventStatusPublished,
		OrganizerID: organizerID,
	}, nil)

	_, err := suite.svc.PublishEvent(organizerID, eventID)

	suite.ErrorIs(err, apperrors.ErrEventNotEditable)
}

// TestPublishEventNotOwner tests ownership enforcement
func (suite *EventServiceTestSuite) TestPublishEventNotOwner() {
	eventID := uuid.New()

	suite.events.EXPECT().GetByID(eventID).Return(&models.Event{
		BaseModel:   models.BaseModel{ID: eventID},
		Status:      models.EventStatusDraft,
		OrganizerID: uuid.New(),
	}, nil)

	_, err := suite.svc.PublishEvent(uuid.New(), eventID)

	suite.ErrorIs(err, apperrors.ErrNotEventOwner)
}

func publishedEvent(organizerID uuid.UUID) *models.Event {
	event := soloEvent()
	event.OrganizerID = organizerID
	return event
}

// TestUpdateDraftFreely tests that drafts accept any edit
func (suite *EventServiceTestSuite) TestUpdateDraftFreely() {
	organizerID := uuid.New()
	event := publishedEvent(organizerID)
	event.Status = models.EventStatusDraft

	newName := "Renamed Night"
	newLimit := 10

	suite.events.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.events.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.svc.UpdateEvent(organizerID, event.ID, &service.UpdateEventRequest{
		Name:              &newName,
		RegistrationLimit: &newLimit,
	})

	suite.NoError(err)
	suite.Equal("Renamed Night", resp.Name)
	suite.Equal(10, resp.RegistrationLimit)
}

// TestUpdatePublishedRestricted tests the narrow published-edit surface
func (suite *EventServiceTestSuite) TestUpdatePublishedRestricted() {
	organizerID := uuid.New()
	event := publishedEvent(organizerID)
	newName := "Renamed"

	suite.events.EXPECT().GetByID(event.ID).Return(event, nil)

	_, err := suite.svc.UpdateEvent(organizerID, event.ID, &service.UpdateEventRequest{
		Name: &newName,
	})

	suite.ErrorIs(err, apperrors.ErrEventNotEditable)
}

// TestUpdatePublishedDeadlineExtendOnly tests that deadlines never shrink
func (suite *EventServiceTestSuite) TestUpdatePublishedDeadlineExtendOnly() {
	organizerID := uuid.New()
	event := publishedEvent(organizerID)

	earlier := event.RegistrationDeadline.Add(-time.Hour)
	suite.events.EXPECT().GetByID(event.ID).Return(event, nil)
	_, err := suite.svc.UpdateEvent(organizerID, event.ID, &service.UpdateEventRequest{
		RegistrationDeadline: &earlier,
	})
	suite.True(apperrors.IsValidation(err))

	later := event.RegistrationDeadline.Add(time.Hour)
	suite.events.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.events.EXPECT().Update(gomock.Any()).Return(nil)
	resp, err := suite.svc.UpdateEvent(organizerID, event.ID, &service.UpdateEventRequest{
		RegistrationDeadline: &later,
	})
	suite.NoError(err)
	suite.Equal(later, resp.RegistrationDeadline)
}

// TestUpdatePublishedLimitIncreaseOnly tests that limits never shrink
func (suite *EventServiceTestSuite) TestUpdatePublishedLimitIncreaseOnly() {
	organizerID := uuid.New()
	event := publishedEvent(organizerID)
	event.RegistrationLimit = 50

	lower := 40
	suite.events.EXPECT().GetByID(event.ID).Return(event, nil)
	_, err := suite.svc.UpdateEvent(organizerID, event.ID, &service.UpdateEventRequest{
		RegistrationLimit: &lower,
	})
	suite.True(apperrors.IsValidation(err))

	higher := 60
	suite.events.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.events.EXPECT().Update(gomock.Any()).Return(nil)
	resp, err := suite.svc.UpdateEvent(organizerID, event.ID, &service.UpdateEventRequest{
		RegistrationLimit: &higher,
	})
	suite.NoError(err)
	suite.Equal(60, resp.RegistrationLimit)
}

// TestUpdateCompletedEvent tests that finished events are immutable
func (suite *EventServiceTestSuite) TestUpdateCompletedEvent() {
	organizerID := uuid.New()
	event := publishedEvent(organizerID)
	event.Status = models.EventStatusCompleted
	description := "too late"

	suite.events.EXPECT().GetByID(event.ID).Return(event, nil)

	_, err := suite.svc.UpdateEvent(organizerID, event.ID, &service.UpdateEventRequest{
		Description: &description,
	})

	suite.ErrorIs(err, apperrors.ErrEventNotEditable)
}

// TestGetEventHidesDrafts tests the public lookup
func (suite *EventServiceTestSuite) TestGetEventHidesDrafts() {
	eventID := uuid.New()

	suite.events.EXPECT().GetWithOrganizer(eventID).Return(&models.Event{
		BaseModel: models.BaseModel{ID: eventID},
		Status:    models.EventStatusDraft,
	}, nil)

	_, err := suite.svc.GetEvent(eventID)

	suite.ErrorIs(err, apperrors.ErrEventNotFound)
}

// TestGetEvent tests the public lookup of a published event
func (suite *EventServiceTestSuite) TestGetEvent() {
	event := soloEvent()
	event.CurrentRegistrations = 30
	event.Organizer = &models.User{OrganizationName: "Tech Club"}

	suite.events.EXPECT().GetWithOrganizer(event.ID).Return(event, nil)

	resp, err := suite.svc.GetEvent(event.ID)

	suite.NoError(err)
	suite.Equal(30, event.RegistrationLimit-resp.SpotsRemaining)
	suite.Equal("Tech Club", resp.OrganizerName)
}

// TestDeleteEventNotOwner tests ownership enforcement on delete
func (suite *EventServiceTestSuite) TestDeleteEventNotOwner() {
	eventID := uuid.New()

	suite.events.EXPECT().GetByID(eventID).Return(&models.Event{
		BaseModel:   models.BaseModel{ID: eventID},
		OrganizerID: uuid.New(),
	}, nil)

	err := suite.svc.DeleteEvent(uuid.New(), eventID)

	suite.ErrorIs(err, apperrors.ErrNotEventOwner)
}

// TestDeleteEvent tests a successful delete
func (suite *EventServiceTestSuite) TestDeleteEvent() {
	organizerID := uuid.New()
	eventID := uuid.New()

	suite.events.EXPECT().GetByID(eventID).Return(&models.Event{
		BaseModel:   models.BaseModel{ID: eventID},
		OrganizerID: organizerID,
	}, nil)
	suite.events.EXPECT().Delete(eventID).Return(nil)

	suite.NoError(suite.svc.DeleteEvent(organizerID, eventID))
}

// TestListOpenEvents tests the participant-facing listing
func (suite *EventServiceTestSuite) TestListOpenEvents() {
	suite.events.EXPECT().ListOpen().Return([]models.Event{*soloEvent(), *soloEvent()}, nil)

	resp, err := suite.svc.ListOpenEvents()

	suite.NoError(err)
	suite.Equal(2, resp.Total)
}

// TestGetEventNotFound tests an unknown event id
func (suite *EventServiceTestSuite) TestGetEventNotFound() {
	eventID := uuid.New()

	suite.events.EXPECT().GetWithOrganizer(eventID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetEvent(eventID)

	suite.ErrorIs(err, apperrors.ErrEventNotFound)
}

// TestEventServiceTestSuite runs the test suite
func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
