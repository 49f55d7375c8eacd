package handlers

import (
	"net/http"
	"strconv"

	"event-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles HTTP requests for organizer account management
type AdminHandler struct {
	adminService service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateOrganizer handles POST /admin/organizers
// @Summary Provision an organizer account
// @Description Create an organizer; omitted credentials are generated and returned once
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.CreateOrganizerRequest true "Organizer details"
// @Success 201 {object} service.CreatedOrganizerResponse "Organizer created, credentials included"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Security BearerAuth
// @Router /admin/organizers [post]
func (h *AdminHandler) CreateOrganizer(c *gin.Context) {
	var req service.CreateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.adminService.CreateOrganizer(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListOrganizers handles GET /admin/organizers
// @Summary List organizer accounts
// @Tags admin
// @Produce json
// @Param include_archived query bool false "Include archived accounts"
// @Param archived_only query bool false "Archived accounts only"
// @Success 200 {object} service.OrganizerListResponse "Organizers"
// @Security BearerAuth
// @Router /admin/organizers [get]
func (h *AdminHandler) ListOrganizers(c *gin.Context) {
	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("include_archived", "false"))
	archivedOnly, _ := strconv.ParseBool(c.DefaultQuery("archived_only", "false"))

	resp, err := h.adminService.ListOrganizers(includeArchived, archivedOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetOrganizerActive handles PUT /admin/organizers/:id/active
// @Summary Enable or disable an organizer
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Organizer ID"
// @Param request body object{active=bool} true "Desired state"
// @Success 200 {object} service.OrganizerResponse "Organizer updated"
// @Failure 404 {object} map[string]interface{} "Organizer not found"
// @Security BearerAuth
// @Router /admin/organizers/{id}/active [put]
func (h *AdminHandler) SetOrganizerActive(c *gin.Context) {
	organizerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organizer ID"})
		return
	}
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.adminService.SetOrganizerActive(organizerID, *req.Active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ArchiveOrganizer handles POST /admin/organizers/:id/archive
// @Summary Archive an organizer account
// @Tags admin
// @Produce json
// @Param id path string true "Organizer ID"
// @Success 200 {object} service.OrganizerResponse "Organizer archived"
// @Failure 404 {object} map[string]interface{} "Organizer not found"
// @Security BearerAuth
// @Router /admin/organizers/{id}/archive [post]
func (h *AdminHandler) ArchiveOrganizer(c *gin.Context) {
	organizerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organizer ID"})
		return
	}
	resp, err := h.adminService.ArchiveOrganizer(organizerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
