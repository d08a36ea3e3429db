package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for team invitations
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationService service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// CreateInvitation handles POST /invitations
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	invitation, err := h.invitationService.Invite(&req, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// AcceptInvitation handles POST /invitations/:id/accept
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	invitation, err := h.invitationService.Accept(id, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitation)
}

// DeclineInvitation handles POST /invitations/:id/decline
func (h *InvitationHandler) DeclineInvitation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	invitation, err := h.invitationService.Decline(id, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitation)
}

// ListMyInvitations handles GET /invitations
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	page, pageSize := parsePagination(c)

	invitations, err := h.invitationService.ListForUser(requesterID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}
