//go:build integration
// +build integration

package repository

import (
	"errors"
	"sync"
	"testing"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	repo *TeamRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.base.DB)
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.base.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

// newTeam creates a forming team led by a fresh participant
func (suite *TeamRepositoryTestSuite) newTeam(event *models.Event, size int) (*models.Team, *models.User) {
	leader := testutils.CreateParticipant(suite.base.DB)
	team := &models.Team{
		EventID:  event.ID,
		Name:     "Team " + leader.FirstName,
		LeaderID: leader.ID,
		MaxSize:  size,
	}
	suite.Require().NoError(suite.repo.CreateWithLeader(team))
	return team, leader
}

// fillTeam joins fresh participants until the team has total members,
// returning the joined users and the last join outcome
func (suite *TeamRepositoryTestSuite) fillTeam(team *models.Team, total int) ([]*models.User, *JoinResult) {
	var joined []*models.User
	var last *JoinResult
	for i := 1; i < total; i++ {
		user := testutils.CreateParticipant(suite.base.DB)
		outcome, err := suite.repo.Join(team.InviteCode, user.ID)
		suite.Require().NoError(err)
		joined = append(joined, user)
		last = outcome
	}
	return joined, last
}

func (suite *TeamRepositoryTestSuite) eventCounter(eventID uuid.UUID) int {
	var event models.Event
	suite.Require().NoError(suite.base.DB.First(&event, "id = ?", eventID).Error)
	return event.CurrentRegistrations
}

// TestCreateWithLeader tests creating a team with its leader membership
func (suite *TeamRepositoryTestSuite) TestCreateWithLeader() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)

	team, leader := suite.newTeam(event, 3)

	suite.NotEqual(uuid.Nil, team.ID)
	suite.Equal(models.TeamStatusForming, team.Status)
	suite.Len(team.InviteCode, 8)

	count, err := suite.repo.MemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	loaded, err := suite.repo.GetWithMembers(team.ID)
	suite.NoError(err)
	suite.Len(loaded.Members, 1)
	suite.Equal(leader.ID, loaded.Members[0].UserID)
}

// TestCreateWithLeaderDistinctCodes tests that invite codes do not collide
func (suite *TeamRepositoryTestSuite) TestCreateWithLeaderDistinctCodes() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)

	codes := make(map[string]bool)
	for i := 0; i < 10; i++ {
		team, _ := suite.newTeam(event, 3)
		suite.False(codes[team.InviteCode])
		codes[team.InviteCode] = true
	}
}

// TestJoinFormingTeam tests joining a team that still has open seats
func (suite *TeamRepositoryTestSuite) TestJoinFormingTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, _ := suite.newTeam(event, 3)

	user := testutils.CreateParticipant(suite.base.DB)
	outcome, err := suite.repo.Join(team.InviteCode, user.ID)

	suite.NoError(err)
	suite.False(outcome.Completed)
	suite.Empty(outcome.NewRegistrations)
	suite.Len(outcome.Team.Members, 2)
	suite.Equal(0, suite.eventCounter(event.ID))

	loaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamStatusForming, loaded.Status)
}

// TestJoinCompletesTeam tests that the filling join reserves capacity and
// issues one ticket per member
func (suite *TeamRepositoryTestSuite) TestJoinCompletesTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, leader := suite.newTeam(event, 3)
	joined, last := suite.fillTeam(team, 3)

	suite.True(last.Completed)
	suite.Len(last.NewRegistrations, 3)
	suite.Equal(3, suite.eventCounter(event.ID))

	loaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamStatusComplete, loaded.Status)

	// One confirmed ticket per roster seat, each carrying the team.
	memberIDs := []uuid.UUID{leader.ID, joined[0].ID, joined[1].ID}
	ticketIDs := make(map[string]bool)
	for _, userID := range memberIDs {
		var reg models.Registration
		err := suite.base.DB.
			First(&reg, "event_id = ? AND user_id = ? AND status = ?",
				event.ID, userID, models.RegistrationStatusConfirmed).Error
		suite.NoError(err)
		suite.Require().NotNil(reg.TeamID)
		suite.Equal(team.ID, *reg.TeamID)
		suite.Equal(team.Name, reg.TeamName)
		suite.NotEmpty(reg.TicketID)
		suite.False(ticketIDs[reg.TicketID])
		ticketIDs[reg.TicketID] = true
	}
}

// TestJoinInvalidInviteCode tests joining with a code that matches no team
func (suite *TeamRepositoryTestSuite) TestJoinInvalidInviteCode() {
	user := testutils.CreateParticipant(suite.base.DB)

	outcome, err := suite.repo.Join("DEADBEEF", user.ID)

	suite.Nil(outcome)
	suite.ErrorIs(err, apperrors.ErrInviteCodeInvalid)
}

// TestJoinCompletedTeam tests that a completed team no longer accepts joins
func (suite *TeamRepositoryTestSuite) TestJoinCompletedTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 2)
	team, _ := suite.newTeam(event, 2)
	suite.fillTeam(team, 2)

	late := testutils.CreateParticipant(suite.base.DB)
	_, err := suite.repo.Join(team.InviteCode, late.ID)

	suite.ErrorIs(err, apperrors.ErrInviteCodeInvalid)
}

// TestJoinAlreadyInTeam tests that a user cannot sit in two teams of one event
func (suite *TeamRepositoryTestSuite) TestJoinAlreadyInTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	teamA, _ := suite.newTeam(event, 3)
	teamB, leaderB := suite.newTeam(event, 3)

	_, err := suite.repo.Join(teamA.InviteCode, leaderB.ID)
	suite.ErrorIs(err, apperrors.ErrAlreadyInTeam)

	// A seat in a cancelled team does not block a new join.
	_, err = suite.repo.Leave(teamB.ID, leaderB.ID)
	suite.Require().NoError(err)
	outcome, err := suite.repo.Join(teamA.InviteCode, leaderB.ID)
	suite.NoError(err)
	suite.Len(outcome.Team.Members, 2)
}

// TestJoinAlreadyRegistered tests that a confirmed solo ticket blocks joining
func (suite *TeamRepositoryTestSuite) TestJoinAlreadyRegistered() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, _ := suite.newTeam(event, 3)

	user := testutils.CreateParticipant(suite.base.DB)
	regs := NewRegistrationRepository(suite.base.DB)
	err := regs.CreateConfirmed(&models.Registration{
		EventID:   event.ID,
		UserID:    user.ID,
		EventType: event.Type,
		Quantity:  1,
	})
	suite.Require().NoError(err)

	_, err = suite.repo.Join(team.InviteCode, user.ID)
	suite.ErrorIs(err, apperrors.ErrAlreadyRegistered)
}

// TestJoinCapacityExceeded tests that a completion the event cannot absorb
// rolls back the join entirely
func (suite *TeamRepositoryTestSuite) TestJoinCapacityExceeded() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3, func(e *models.Event) {
		e.RegistrationLimit = 2
	})
	team, _ := suite.newTeam(event, 3)
	suite.fillTeam(team, 2)

	last := testutils.CreateParticipant(suite.base.DB)
	outcome, err := suite.repo.Join(team.InviteCode, last.ID)

	suite.Nil(outcome)
	suite.ErrorIs(err, apperrors.ErrCapacityExceeded)

	// The team keeps forming without the rejected joiner and no capacity
	// was consumed.
	suite.Equal(0, suite.eventCounter(event.ID))
	loaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamStatusForming, loaded.Status)
	count, err := suite.repo.MemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	var regCount int64
	suite.NoError(suite.base.DB.Model(&models.Registration{}).
		Where("event_id = ?", event.ID).Count(&regCount).Error)
	suite.Zero(regCount)
}

// TestRejoinAfterDemotionIssuesOneTicket tests the demote-refill cycle:
// only the replacement member needs a new ticket
func (suite *TeamRepositoryTestSuite) TestRejoinAfterDemotionIssuesOneTicket() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, _ := suite.newTeam(event, 3)
	joined, _ := suite.fillTeam(team, 3)
	suite.Equal(3, suite.eventCounter(event.ID))

	outcome, err := suite.repo.Leave(team.ID, joined[0].ID)
	suite.Require().NoError(err)
	suite.True(outcome.Demoted)
	suite.Equal(1, outcome.CancelledRegistrations)
	suite.Equal(2, suite.eventCounter(event.ID))

	replacement := testutils.CreateParticipant(suite.base.DB)
	joinOutcome, err := suite.repo.Join(team.InviteCode, replacement.ID)
	suite.Require().NoError(err)
	suite.True(joinOutcome.Completed)
	suite.Len(joinOutcome.NewRegistrations, 1)
	suite.Equal(replacement.ID, joinOutcome.NewRegistrations[0].UserID)
	suite.Equal(3, suite.eventCounter(event.ID))
}

// TestConcurrentJoinsSameTeam tests that racing joins never overfill a roster
func (suite *TeamRepositoryTestSuite) TestConcurrentJoinsSameTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, _ := suite.newTeam(event, 3)

	users := make([]*models.User, 4)
	for i := range users {
		users[i] = testutils.CreateParticipant(suite.base.DB)
	}

	var wg sync.WaitGroup
	results := make([]error, len(users))
	for i, user := range users {
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()
			_, results[i] = suite.repo.Join(team.InviteCode, userID)
		}(i, user.ID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	suite.Equal(2, succeeded)

	count, err := suite.repo.MemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
	suite.Equal(3, suite.eventCounter(event.ID))
}

// TestConcurrentCompletionsLastCapacity tests two teams racing for capacity
// that only fits one of them
func (suite *TeamRepositoryTestSuite) TestConcurrentCompletionsLastCapacity() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 2, func(e *models.Event) {
		e.RegistrationLimit = 2
	})
	teamA, _ := suite.newTeam(event, 2)
	teamB, _ := suite.newTeam(event, 2)

	joinerA := testutils.CreateParticipant(suite.base.DB)
	joinerB := testutils.CreateParticipant(suite.base.DB)

	var wg sync.WaitGroup
	var errA, errB error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errA = suite.repo.Join(teamA.InviteCode, joinerA.ID)
	}()
	go func() {
		defer wg.Done()
		_, errB = suite.repo.Join(teamB.InviteCode, joinerB.ID)
	}()
	wg.Wait()

	// Exactly one team completed; the loser kept forming with no tickets.
	if errA == nil {
		suite.ErrorIs(errB, apperrors.ErrCapacityExceeded)
	} else {
		suite.ErrorIs(errA, apperrors.ErrCapacityExceeded)
		suite.NoError(errB)
	}
	suite.Equal(2, suite.eventCounter(event.ID))

	var confirmed int64
	suite.NoError(suite.base.DB.Model(&models.Registration{}).
		Where("event_id = ? AND status = ?", event.ID, models.RegistrationStatusConfirmed).
		Count(&confirmed).Error)
	suite.Equal(int64(2), confirmed)
}

// TestLeaveLeaderDisbandsFormingTeam tests disbanding before any tickets exist
func (suite *TeamRepositoryTestSuite) TestLeaveLeaderDisbandsFormingTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, leader := suite.newTeam(event, 3)
	suite.fillTeam(team, 2)

	outcome, err := suite.repo.Leave(team.ID, leader.ID)

	suite.NoError(err)
	suite.True(outcome.Disbanded)
	suite.False(outcome.Demoted)
	suite.Zero(outcome.CancelledRegistrations)
	suite.Equal(0, suite.eventCounter(event.ID))

	loaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamStatusCancelled, loaded.Status)
}

// TestLeaveLeaderDisbandsCompleteTeam tests that disbanding a complete team
// cancels every ticket and releases the whole allocation
func (suite *TeamRepositoryTestSuite) TestLeaveLeaderDisbandsCompleteTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, leader := suite.newTeam(event, 3)
	suite.fillTeam(team, 3)
	suite.Equal(3, suite.eventCounter(event.ID))

	outcome, err := suite.repo.Leave(team.ID, leader.ID)

	suite.NoError(err)
	suite.True(outcome.Disbanded)
	suite.Equal(3, outcome.CancelledRegistrations)
	suite.Equal(0, suite.eventCounter(event.ID))

	var confirmed int64
	suite.NoError(suite.base.DB.Model(&models.Registration{}).
		Where("team_id = ? AND status = ?", team.ID, models.RegistrationStatusConfirmed).
		Count(&confirmed).Error)
	suite.Zero(confirmed)
}

// TestLeaveMemberFormingTeam tests a member freeing a seat before completion
func (suite *TeamRepositoryTestSuite) TestLeaveMemberFormingTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, _ := suite.newTeam(event, 3)
	joined, _ := suite.fillTeam(team, 2)

	outcome, err := suite.repo.Leave(team.ID, joined[0].ID)

	suite.NoError(err)
	suite.False(outcome.Disbanded)
	suite.False(outcome.Demoted)
	suite.Zero(outcome.CancelledRegistrations)

	count, err := suite.repo.MemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestLeaveMemberDemotesCompleteTeam tests that a member leaving a complete
// team cancels only their own ticket
func (suite *TeamRepositoryTestSuite) TestLeaveMemberDemotesCompleteTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, leader := suite.newTeam(event, 3)
	joined, _ := suite.fillTeam(team, 3)

	outcome, err := suite.repo.Leave(team.ID, joined[0].ID)

	suite.NoError(err)
	suite.True(outcome.Demoted)
	suite.Equal(1, outcome.CancelledRegistrations)
	suite.Equal(2, suite.eventCounter(event.ID))

	loaded, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(models.TeamStatusForming, loaded.Status)

	// The remaining members keep their tickets.
	for _, userID := range []uuid.UUID{leader.ID, joined[1].ID} {
		var reg models.Registration
		err := suite.base.DB.First(&reg,
			"event_id = ? AND user_id = ?", event.ID, userID).Error
		suite.NoError(err)
		suite.Equal(models.RegistrationStatusConfirmed, reg.Status)
	}
	var cancelled models.Registration
	err = suite.base.DB.First(&cancelled,
		"event_id = ? AND user_id = ?", event.ID, joined[0].ID).Error
	suite.NoError(err)
	suite.Equal(models.RegistrationStatusCancelled, cancelled.Status)
}

// TestLeaveNotMember tests leaving a team the user never joined
func (suite *TeamRepositoryTestSuite) TestLeaveNotMember() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, _ := suite.newTeam(event, 3)
	outsider := testutils.CreateParticipant(suite.base.DB)

	_, err := suite.repo.Leave(team.ID, outsider.ID)

	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
}

// TestLeaveCancelledTeam tests leaving an already disbanded team
func (suite *TeamRepositoryTestSuite) TestLeaveCancelledTeam() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, leader := suite.newTeam(event, 3)
	_, err := suite.repo.Leave(team.ID, leader.ID)
	suite.Require().NoError(err)

	_, err = suite.repo.Leave(team.ID, leader.ID)

	suite.ErrorIs(err, apperrors.ErrTeamCancelled)
}

// TestLeaveTeamNotFound tests leaving a team that does not exist
func (suite *TeamRepositoryTestSuite) TestLeaveTeamNotFound() {
	user := testutils.CreateParticipant(suite.base.DB)

	_, err := suite.repo.Leave(uuid.New(), user.ID)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestGetByInviteCode tests looking a team up by code regardless of status
func (suite *TeamRepositoryTestSuite) TestGetByInviteCode() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, leader := suite.newTeam(event, 3)

	found, err := suite.repo.GetByInviteCode(team.InviteCode)
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.Leave(team.ID, leader.ID)
	suite.Require().NoError(err)
	found, err = suite.repo.GetByInviteCode(team.InviteCode)
	suite.NoError(err)
	suite.Equal(models.TeamStatusCancelled, found.Status)

	_, err = suite.repo.GetByInviteCode("00000000")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGetActiveByEventAndUser tests resolving a user's current team
func (suite *TeamRepositoryTestSuite) TestGetActiveByEventAndUser() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	team, leader := suite.newTeam(event, 3)

	found, err := suite.repo.GetActiveByEventAndUser(event.ID, leader.ID)
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	outsider := testutils.CreateParticipant(suite.base.DB)
	_, err = suite.repo.GetActiveByEventAndUser(event.ID, outsider.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	// Cancelled teams are not active.
	_, err = suite.repo.Leave(team.ID, leader.ID)
	suite.Require().NoError(err)
	_, err = suite.repo.GetActiveByEventAndUser(event.ID, leader.ID)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGetWithMembersOrder tests that members come back in join order
func (suite *TeamRepositoryTestSuite) TestGetWithMembersOrder() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 4)
	team, leader := suite.newTeam(event, 4)
	joined, _ := suite.fillTeam(team, 3)

	loaded, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.Require().Len(loaded.Members, 3)
	suite.Equal(leader.ID, loaded.Members[0].UserID)
	suite.Equal(joined[0].ID, loaded.Members[1].UserID)
	suite.Equal(joined[1].ID, loaded.Members[2].UserID)
	suite.NotNil(loaded.Members[0].User)
}

// TestListByEvent tests listing all teams of an event
func (suite *TeamRepositoryTestSuite) TestListByEvent() {
	organizer := testutils.CreateOrganizer(suite.base.DB)
	event := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	other := testutils.CreateTeamEvent(suite.base.DB, organizer.ID, 3)
	suite.newTeam(event, 3)
	suite.newTeam(event, 3)
	suite.newTeam(other, 3)

	teams, err := suite.repo.ListByEvent(event.ID)

	suite.NoError(err)
	suite.Len(teams, 2)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
