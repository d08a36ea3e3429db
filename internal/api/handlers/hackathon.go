package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HackathonHandler handles HTTP requests for hackathon operations
type HackathonHandler struct {
	hackathonService service.HackathonServiceInterface
}

// NewHackathonHandler creates a new hackathon handler
func NewHackathonHandler(hackathonService service.HackathonServiceInterface) *HackathonHandler {
	return &HackathonHandler{
		hackathonService: hackathonService,
	}
}

// CreateHackathon handles POST /hackathons
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	var req service.CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hackathon, err := h.hackathonService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hackathon)
}

// GetHackathon handles GET /hackathons/:id
func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hackathon, err := h.hackathonService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// ListHackathons handles GET /hackathons
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	page, pageSize := parsePagination(c)

	hackathons, err := h.hackathonService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathons)
}

// UpdateHackathon handles PUT /hackathons/:id
func (h *HackathonHandler) UpdateHackathon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hackathon, err := h.hackathonService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// DeleteHackathon handles DELETE /hackathons/:id
func (h *HackathonHandler) DeleteHackathon(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.hackathonService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "hackathon deleted successfully"})
}
