package handlers

import (
	"net/http"

	"event-portal-backend/internal/auth"
	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents handles GET /events
// @Summary List open events
// @Description All events currently accepting registrations
// @Tags events
// @Produce json
// @Success 200 {object} service.EventListResponse "Events"
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	resp, err := h.eventService.ListOpenEvents()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetEvent handles GET /events/:id
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventResponse "Event"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	resp, err := h.eventService.GetEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateEvent handles POST /organizer/events
// @Summary Create an event
// @Description Create a draft or immediately published event owned by the caller
// @Tags organizer
// @Accept json
// @Produce json
// @Param request body service.CreateEventRequest true "Event details"
// @Success 201 {object} service.EventResponse "Event created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /organizer/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	organizerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.eventService.CreateEvent(organizerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMyEvents handles GET /organizer/events
// @Summary List the caller's events
// @Description Every event owned by the organizer, drafts included
// @Tags organizer
// @Produce json
// @Success 200 {object} service.EventListResponse "Events"
// @Security BearerAuth
// @Router /organizer/events [get]
func (h *EventHandler) ListMyEvents(c *gin.Context) {
	organizerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	resp, err := h.eventService.ListMyEvents(organizerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PublishEvent handles POST /organizer/events/:id/publish
// @Summary Publish a draft event
// @Tags organizer
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventResponse "Event published"
// @Failure 400 {object} map[string]interface{} "Not a draft"
// @Security BearerAuth
// @Router /organizer/events/{id}/publish [post]
func (h *EventHandler) PublishEvent(c *gin.Context) {
	organizerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	resp, err := h.eventService.PublishEvent(organizerID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateEvent handles PUT /organizer/events/:id
// @Summary Update an event
// @Description Drafts edit freely; published events only extend the deadline, raise the limit or reword the description
// @Tags organizer
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body service.UpdateEventRequest true "Fields to change"
// @Success 200 {object} service.EventResponse "Event updated"
// @Failure 400 {object} map[string]interface{} "Edit not allowed in current status"
// @Security BearerAuth
// @Router /organizer/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	organizerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.eventService.UpdateEvent(organizerID, eventID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteEvent handles DELETE /organizer/events/:id
// @Summary Delete an event
// @Description Delete an event, cancelling its confirmed registrations
// @Tags organizer
// @Produce json
// @Param id path string true "Event ID"
// @Success 204 "Event deleted"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /organizer/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	organizerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	if err := h.eventService.DeleteEvent(organizerID, eventID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
