package handlers

import (
	"net/http"

	"event-portal-backend/internal/auth"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team formation
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a forming team for a team-based event, led by the caller
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.CreateTeamRequest true "Team details"
// @Success 201 {object} service.TeamResponse "Team created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Already in a team or registered"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.teamService.CreateTeam(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// JoinTeam handles POST /teams/join
// @Summary Join a team by invite code
// @Description Join a forming team; a join that fills the roster registers the whole team atomically
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.JoinTeamRequest true "Invite code"
// @Success 200 {object} service.JoinTeamResponse "Joined; team_complete reports whether tickets were issued"
// @Failure 404 {object} map[string]interface{} "Unknown invite code"
// @Failure 409 {object} map[string]interface{} "Team full, duplicate membership or no capacity left"
// @Security BearerAuth
// @Router /teams/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req service.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.teamService.JoinTeam(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LeaveTeam handles POST /teams/:id/leave
// @Summary Leave a team
// @Description Leave a team; the leader leaving disbands it and cancels its tickets
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.LeaveTeamResponse "Leave outcome"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 403 {object} map[string]interface{} "Not a member"
// @Security BearerAuth
// @Router /teams/{id}/leave [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}
	resp, err := h.teamService.LeaveTeam(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTeam handles GET /teams/:id
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}
	resp, err := h.teamService.GetTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMyTeam handles GET /events/:id/my-team
// @Summary Get the caller's team for an event
// @Description Get the caller's non-cancelled team, with tickets once complete
// @Tags teams
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.MyTeamResponse "Team and tickets"
// @Failure 404 {object} map[string]interface{} "No team for this event"
// @Security BearerAuth
// @Router /events/{id}/my-team [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	resp, err := h.teamService.GetMyTeam(userID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /events/:id/teams
// @Summary List an event's teams
// @Tags teams
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.TeamListResponse "Teams"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /events/{id}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	resp, err := h.teamService.ListTeams(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
