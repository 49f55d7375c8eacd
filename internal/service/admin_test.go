package service_test

import (
	"strings"
	"testing"

	"event-portal-backend/internal/auth"
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

// AdminServiceTestSuite defines the test suite for AdminService
type AdminServiceTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	users *mocks.MockUserRepositoryInterface
	svc   *service.AdminService
}

// SetupTest sets up the test suite
func (suite *AdminServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.svc = service.NewAdminService(suite.users, validator.New(), logger.New())
}

// TearDownTest cleans up after each test
func (suite *AdminServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOrganizer tests provisioning with explicit credentials
func (suite *AdminServiceTestSuite) TestCreateOrganizer() {
	suite.users.EXPECT().GetByEmail("tech.club@events.local").
		Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.Equal(models.UserRoleOrganizer, user.Role)
			suite.Equal("Tech Club", user.OrganizationName)
			suite.True(user.IsActive)
			suite.True(auth.CheckPassword(user.PasswordHash, "s3cret-pass"))
			user.ID = uuid.New()
			return nil
		})

	resp, err := suite.svc.CreateOrganizer(&service.CreateOrganizerRequest{
		OrganizationName: "Tech Club",
		Email:            "tech.club@events.local",
		Password:         "s3cret-pass",
	})

	suite.NoError(err)
	suite.Equal("tech.club@events.local", resp.Email)
	suite.Equal("s3cret-pass", resp.Password)
	suite.True(resp.Organizer.IsActive)
}

// TestCreateOrganizerGeneratedCredentials tests the defaults
func (suite *AdminServiceTestSuite) TestCreateOrganizerGeneratedCredentials() {
	var createdHash string
	suite.users.EXPECT().GetByEmail(gomock.Any()).
		DoAndReturn(func(email string) (*models.User, error) {
			suite.True(strings.HasSuffix(email, "@events.local"))
			suite.True(strings.HasPrefix(email, "drama.society."))
			return nil, gorm.ErrRecordNotFound
		})
	suite.users.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			createdHash = user.PasswordHash
			return nil
		})

	resp, err := suite.svc.CreateOrganizer(&service.CreateOrganizerRequest{
		OrganizationName: "Drama Society",
	})

	suite.NoError(err)
	suite.Len(resp.Password, 16)
	suite.True(auth.CheckPassword(createdHash, resp.Password))
}

// TestCreateOrganizerEmailTaken tests the duplicate email rejection
func (suite *AdminServiceTestSuite) TestCreateOrganizerEmailTaken() {
	suite.users.EXPECT().GetByEmail("taken@events.local").
		Return(&models.User{}, nil)

	_, err := suite.svc.CreateOrganizer(&service.CreateOrganizerRequest{
		OrganizationName: "Tech Club",
		Email:            "taken@events.local",
	})

	suite.ErrorIs(err, apperrors.ErrEmailTaken)
}

// TestSetOrganizerActive tests disabling and re-enabling logins
func (suite *AdminServiceTestSuite) TestSetOrganizerActive() {
	organizerID := uuid.New()

	suite.users.EXPECT().GetByID(organizerID).Return(&models.User{
		BaseModel: models.BaseModel{ID: organizerID},
		Role:      models.UserRoleOrganizer,
		IsActive:  true,
	}, nil)
	suite.users.EXPECT().Update(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.False(user.IsActive)
			return nil
		})

	resp, err := suite.svc.SetOrganizerActive(organizerID, false)

	suite.NoError(err)
	suite.False(resp.IsActive)
}

// TestSetOrganizerActiveArchived tests that archived accounts stay frozen
func (suite *AdminServiceTestSuite) TestSetOrganizerActiveArchived() {
	organizerID := uuid.New()

	suite.users.EXPECT().GetByID(organizerID).Return(&models.User{
		BaseModel:  models.BaseModel{ID: organizerID},
		Role:       models.UserRoleOrganizer,
		IsArchived: true,
	}, nil)

	_, err := suite.svc.SetOrganizerActive(organizerID, true)

	suite.ErrorIs(err, apperrors.ErrAccountArchived)
}

// TestSetOrganizerActiveWrongRole tests that only organizers are managed here
func (suite *AdminServiceTestSuite) TestSetOrganizerActiveWrongRole() {
	userID := uuid.New()

	suite.users.EXPECT().GetByID(userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Role:      models.UserRoleStudent,
	}, nil)

	_, err := suite.svc.SetOrganizerActive(userID, false)

	suite.ErrorIs(err, apperrors.ErrOrganizerNotFound)
}

// TestArchiveOrganizer tests archiving an account
func (suite *AdminServiceTestSuite) TestArchiveOrganizer() {
	organizerID := uuid.New()

	suite.users.EXPECT().GetByID(organizerID).Return(&models.User{
		BaseModel: models.BaseModel{ID: organizerID},
		Role:      models.UserRoleOrganizer,
		IsActive:  true,
	}, nil)
	suite.users.EXPECT().Update(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.True(user.IsArchived)
			suite.False(user.IsActive)
			return nil
		})

	resp, err := suite.svc.ArchiveOrganizer(organizerID)

	suite.NoError(err)
	suite.True(resp.IsArchived)
}

// TestListOrganizers tests the listing pass-through
func (suite *AdminServiceTestSuite) TestListOrganizers() {
	suite.users.EXPECT().ListOrganizers(true, false).Return([]models.User{
		{Role: models.UserRoleOrganizer, OrganizationName: "Tech Club"},
		{Role: models.UserRoleOrganizer, OrganizationName: "Drama Society", IsArchived: true},
	}, nil)

	resp, err := suite.svc.ListOrganizers(true, false)

	suite.NoError(err)
	suite.Equal(2, resp.Total)
}

// TestAdminServiceTestSuite runs the test suite
func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
