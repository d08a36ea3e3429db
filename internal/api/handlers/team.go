package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	requesterRole, _ := auth.CurrentUserRole(c)

	team, err := h.teamService.Create(&req, requesterID, requesterRole)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams (optional hackathon_id parameter)
func (h *TeamHandler) ListTeams(c *gin.Context) {
	page, pageSize := parsePagination(c)

	hackathonIDStr := c.Query("hackathon_id")
	if hackathonIDStr != "" {
		hackathonID, err := uuid.Parse(hackathonIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hackathon ID"})
			return
		}

		teams, err := h.teamService.ListByHackathon(hackathonID, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, teams)
		return
	}

	teams, err := h.teamService.ListAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// ListTeamsByHackathon handles GET /hackathons/:id/teams
func (h *TeamHandler) ListTeamsByHackathon(c *gin.Context) {
	hackathonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)

	teams, err := h.teamService.ListByHackathon(hackathonID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// RemoveMember handles DELETE /teams/:id/members/:user_id
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	requesterRole, _ := auth.CurrentUserRole(c)

	if err := h.teamService.RemoveMember(teamID, memberID, requesterID, requesterRole); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member removed from team"})
}

// DeleteTeam handles DELETE /teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team deleted successfully"})
}
