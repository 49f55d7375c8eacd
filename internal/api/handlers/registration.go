package handlers

import (
	"net/http"

	"event-portal-backend/internal/auth"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for registrations and tickets
type RegistrationHandler struct {
	registrationService service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Register handles POST /registrations
// @Summary Register for an event
// @Description Solo registration for a normal or merchandise event
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration details"
// @Success 201 {object} service.TicketResponse "Ticket issued"
// @Failure 400 {object} map[string]interface{} "Invalid request or closed event"
// @Failure 409 {object} map[string]interface{} "Already registered or no capacity left"
// @Security BearerAuth
// @Router /registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.registrationService.Register(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cancel handles POST /registrations/:ticket_id/cancel
// @Summary Cancel a ticket
// @Description Cancel the caller's ticket; team tickets unwind through the team flow
// @Tags registrations
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {object} service.CancelResponse "Cancellation outcome"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Failure 403 {object} map[string]interface{} "Not the ticket holder"
// @Security BearerAuth
// @Router /registrations/{ticket_id}/cancel [post]
func (h *RegistrationHandler) Cancel(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	resp, err := h.registrationService.Cancel(userID, c.Param("ticket_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MyRegistrations handles GET /registrations/me
// @Summary List the caller's tickets
// @Description Tickets grouped into upcoming, completed and cancelled
// @Tags registrations
// @Produce json
// @Success 200 {object} service.MyRegistrationsResponse "Grouped tickets"
// @Security BearerAuth
// @Router /registrations/me [get]
func (h *RegistrationHandler) MyRegistrations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	resp, err := h.registrationService.MyRegistrations(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTicket handles GET /registrations/:ticket_id
// @Summary Get one of the caller's tickets
// @Tags registrations
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {object} service.TicketResponse "Ticket"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Security BearerAuth
// @Router /registrations/{ticket_id} [get]
func (h *RegistrationHandler) GetTicket(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	resp, err := h.registrationService.GetTicket(userID, c.Param("ticket_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
