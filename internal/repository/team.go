package repository

import (
	"errors"
	"fmt"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams, including the
// transactional join/leave flows of the team formation engine.
//
// The multi-step flows (join with completion, leave with unwind) live here
// rather than in the service layer so that every invariant-bearing check and
// mutation runs inside a single transaction holding the team row lock:
// two joins to the same team serialize on SELECT ... FOR UPDATE, and a
// rejected completion rolls back the membership append it made.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// JoinResult describes the outcome of a join: either the team is still
// forming, or it completed and tickets were issued for NewRegistrations.
type JoinResult struct {
	Team             *models.Team
	Completed        bool
	NewRegistrations []models.Registration
}

// LeaveResult describes which unwind branch a leave took.
type LeaveResult struct {
	Disbanded              bool
	Demoted                bool
	CancelledRegistrations int
}

// CreateWithLeader creates a forming team together with its leader's
// membership row. The invite code is generated here; the unique index on
// invite_code is the collision arbiter, and a violated insert is retried
// with a fresh code.
func (r *TeamRepository) CreateWithLeader(team *models.Team) error {
	for attempt := 0; attempt < 5; attempt++ {
		team.InviteCode = newInviteCode()
		err := r.db.Transaction(func(tx *gorm.DB) error {
			team.Status = models.TeamStatusForming
			if err := tx.Create(team).Error; err != nil {
				return err
			}
			member := &models.TeamMember{TeamID: team.ID, UserID: team.LeaderID}
			return tx.Create(member).Error
		})
		if isUniqueViolation(err, "idx_teams_invite_code") {
			continue
		}
		return err
	}
	return fmt.Errorf("could not generate a unique invite code")
}

// Join appends a user to the forming team behind inviteCode. When the append
// fills the roster it atomically reserves capacity for every member still
// lacking a confirmed registration, issues their tickets and marks the team
// complete, all in the same transaction; a failed capacity reservation rolls
// the append back and leaves the team forming without the caller.
func (r *TeamRepository) Join(inviteCode string, userID uuid.UUID) (*JoinResult, error) {
	result := &JoinResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("invite_code = ? AND status = ?", inviteCode, models.TeamStatusForming).
			First(&team).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInviteCodeInvalid
			}
			return err
		}

		var event models.Event
		if err := tx.First(&event, "id = ?", team.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEventNotFound
			}
			return err
		}
		if !event.Status.AcceptsRegistrations() {
			return apperrors.ErrRegistrationsClosed
		}

		// Re-checked under the team lock: the service validated these too,
		// but only here are they race-free.
		var inTeam int64
		err = tx.Model(&models.TeamMember{}).
			Joins("JOIN teams ON teams.id = team_members.team_id").
			Where("teams.event_id = ? AND team_members.user_id = ? AND teams.status <> ?",
				team.EventID, userID, models.TeamStatusCancelled).
			Count(&inTeam).Error
		if err != nil {
			return err
		}
		if inTeam > 0 {
			return apperrors.ErrAlreadyInTeam
		}

		var confirmed int64
		err = tx.Model(&models.Registration{}).
			Where("event_id = ? AND user_id = ? AND status = ?",
				team.EventID, userID, models.RegistrationStatusConfirmed).
			Count(&confirmed).Error
		if err != nil {
			return err
		}
		if confirmed > 0 {
			return apperrors.ErrAlreadyRegistered
		}

		var members []models.TeamMember
		if err := tx.Where("team_id = ?", team.ID).Order("joined_at ASC").Find(&members).Error; err != nil {
			return err
		}
		if len(members) >= team.MaxSize {
			return apperrors.ErrTeamFull
		}

		newMember := models.TeamMember{TeamID: team.ID, UserID: userID}
		if err := tx.Create(&newMember).Error; err != nil {
			return err
		}
		members = append(members, newMember)

		if len(members) < team.MaxSize {
			team.Members = members
			result.Team = &team
			return nil
		}

		// Roster is full: reserve capacity for everyone not yet holding a
		// confirmed ticket, then issue tickets and complete the team. Members
		// who already hold a ticket are skipped so retries stay idempotent.
		memberIDs := make([]uuid.UUID, len(members))
		for i, m := range members {
			memberIDs[i] = m.UserID
		}
		var ticketed []uuid.UUID
		err = tx.Model(&models.Registration{}).
			Where("event_id = ? AND user_id IN ? AND status = ?",
				team.EventID, memberIDs, models.RegistrationStatusConfirmed).
			Pluck("user_id", &ticketed).Error
		if err != nil {
			return err
		}
		hasTicket := make(map[uuid.UUID]bool, len(ticketed))
		for _, id := range ticketed {
			hasTicket[id] = true
		}
		var needed []uuid.UUID
		for _, id := range memberIDs {
			if !hasTicket[id] {
				needed = append(needed, id)
			}
		}

		if len(needed) > 0 {
			ok, err := reserveCapacity(tx, team.EventID, len(needed))
			if err != nil {
				return err
			}
			if !ok {
				// Rolling back the transaction undoes the membership append;
				// the team stays forming and the caller is not added.
				return apperrors.ErrCapacityExceeded
			}
		}

		for _, memberID := range needed {
			ticketID, err := uniqueTicketID(tx)
			if err != nil {
				return err
			}
			reg := models.Registration{
				EventID:   team.EventID,
				UserID:    memberID,
				TicketID:  ticketID,
				EventType: event.Type,
				Status:    models.RegistrationStatusConfirmed,
				TeamID:    &team.ID,
				TeamName:  team.Name,
				Quantity:  1,
			}
			if err := tx.Create(&reg).Error; err != nil {
				return err
			}
			result.NewRegistrations = append(result.NewRegistrations, reg)
		}

		team.Status = models.TeamStatusComplete
		if err := tx.Model(&models.Team{}).Where("id = ?", team.ID).
			Update("status", models.TeamStatusComplete).Error; err != nil {
			return err
		}

		team.Members = members
		result.Team = &team
		result.Completed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Leave removes a user from their team. A leaving leader disbands the whole
// team; a leaving member demotes a complete team back to forming. Capacity is
// released exactly once per registration actually transitioned to cancelled.
func (r *TeamRepository) Leave(teamID, userID uuid.UUID) (*LeaveResult, error) {
	result := &LeaveResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", teamID).
			First(&team).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return err
		}
		if team.Status == models.TeamStatusCancelled {
			return apperrors.ErrTeamCancelled
		}

		var membership models.TeamMember
		err = tx.Where("team_id = ? AND user_id = ?", teamID, userID).First(&membership).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotTeamMember
			}
			return err
		}

		wasComplete := team.Status == models.TeamStatusComplete

		if team.LeaderID == userID {
			// Leader leaves: the whole team is disbanded.
			if err := tx.Model(&models.Team{}).Where("id = ?", teamID).
				Update("status", models.TeamStatusCancelled).Error; err != nil {
				return err
			}
			result.Disbanded = true

			if wasComplete {
				res := tx.Model(&models.Registration{}).
					Where("team_id = ? AND status = ?", teamID, models.RegistrationStatusConfirmed).
					Update("status", models.RegistrationStatusCancelled)
				if res.Error != nil {
					return res.Error
				}
				result.CancelledRegistrations = int(res.RowsAffected)
				if res.RowsAffected > 0 {
					if err := releaseCapacity(tx, team.EventID, int(res.RowsAffected)); err != nil {
						return err
					}
				}
			}
			return nil
		}

		// Member leaves: drop the seat; a complete team needs a replacement.
		if err := tx.Delete(&models.TeamMember{}, "id = ?", membership.ID).Error; err != nil {
			return err
		}
		if wasComplete {
			if err := tx.Model(&models.Team{}).Where("id = ?", teamID).
				Update("status", models.TeamStatusForming).Error; err != nil {
				return err
			}
			result.Demoted = true

			res := tx.Model(&models.Registration{}).
				Where("team_id = ? AND user_id = ? AND status = ?",
					teamID, userID, models.RegistrationStatusConfirmed).
				Update("status", models.RegistrationStatusCancelled)
			if res.Error != nil {
				return res.Error
			}
			result.CancelledRegistrations = int(res.RowsAffected)
			if res.RowsAffected > 0 {
				if err := releaseCapacity(tx, team.EventID, int(res.RowsAffected)); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByInviteCode retrieves a team by its invite code, whatever its status
func (r *TeamRepository) GetByInviteCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "invite_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with members (in join order) and leader
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("team_members.joined_at ASC") }).
		Preload("Members.User").
		Preload("Leader").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetActiveByEventAndUser retrieves the user's non-cancelled team for an
// event, or gorm.ErrRecordNotFound when they have none.
func (r *TeamRepository) GetActiveByEventAndUser(eventID, userID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("teams.event_id = ? AND team_members.user_id = ? AND teams.status <> ?",
			eventID, userID, models.TeamStatusCancelled).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("team_members.joined_at ASC") }).
		Preload("Members.User").
		Preload("Leader").
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByEvent retrieves all teams for an event
func (r *TeamRepository) ListByEvent(eventID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Where("event_id = ?", eventID).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("team_members.joined_at ASC") }).
		Preload("Members.User").
		Preload("Leader").
		Order("created_at ASC").
		Find(&teams).Error
	return teams, err
}

// MemberCount returns the number of seats currently taken on a team
func (r *TeamRepository) MemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// uniqueTicketID returns a ticket id not yet present in the registrations
// table. Collisions are practically impossible; the loop satisfies the
// storage-level uniqueness constraint without failing the transaction.
func uniqueTicketID(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		id := newTicketID()
		var count int64
		if err := tx.Model(&models.Registration{}).Where("ticket_id = ?", id).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return id, nil
		}
	}
	return newTicketID(), nil
}
