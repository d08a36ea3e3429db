package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles HTTP requests for project submissions
type SubmissionHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// SubmitProject handles POST /teams/:id/submission
func (h *SubmissionHandler) SubmitProject(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.submissionService.Submit(teamID, requesterID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// SubmissionStatus handles GET /teams/:id/submission/status
func (h *SubmissionHandler) SubmissionStatus(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status, err := h.submissionService.Status(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
