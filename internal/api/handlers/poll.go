package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PollHandler handles HTTP requests for the team poll lifecycle
type PollHandler struct {
	pollService service.PollServiceInterface
}

// NewPollHandler creates a new poll handler
func NewPollHandler(pollService service.PollServiceInterface) *PollHandler {
	return &PollHandler{
		pollService: pollService,
	}
}

// StartPoll handles POST /teams/:id/poll/start
func (h *PollHandler) StartPoll(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.StartPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.pollService.Start(teamID, requesterID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, status)
}

// Vote handles POST /teams/:id/poll/vote
func (h *PollHandler) Vote(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.pollService.Vote(teamID, requesterID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// ConcludePoll handles POST /teams/:id/poll/conclude
func (h *PollHandler) ConcludePoll(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	result, err := h.pollService.Conclude(teamID, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PollStatus handles GET /teams/:id/poll/status
func (h *PollHandler) PollStatus(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	status, err := h.pollService.Status(teamID, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
