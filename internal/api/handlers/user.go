package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService         service.UserServiceInterface
	notificationService service.NotificationServiceInterface
	authService         *auth.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userService service.UserServiceInterface,
	notificationService service.NotificationServiceInterface,
	authService *auth.Service,
) *UserHandler {
	return &UserHandler{
		userService:         userService,
		notificationService: notificationService,
		authService:         authService,
	}
}

// VerifyUser handles POST /users/verify-user. It checks that the email
// belongs to a registered participant and issues a session token.
func (h *UserHandler) VerifyUser(c *gin.Context) {
	var req service.VerifyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.VerifyUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// AdminLogin handles POST /users/admin-login
func (h *UserHandler) AdminLogin(c *gin.Context) {
	var req service.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.AdminLogin(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	users, err := h.userService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UploadUsers handles POST /users/upload-users. Expects a multipart form
// with a CSV file under the "file" field.
func (h *UserHandler) UploadUsers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.userService.UploadRoster(file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListNotifications handles GET /users/:id/notifications. A user may only
// read their own notifications; admins may read anyone's.
func (h *UserHandler) ListNotifications(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.canAccessNotifications(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot access another user's notifications"})
		return
	}

	page, pageSize := parsePagination(c)

	notifications, err := h.notificationService.ListForUser(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationsRead handles POST /users/:id/notifications/read
func (h *UserHandler) MarkNotificationsRead(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.canAccessNotifications(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot access another user's notifications"})
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notifications marked as read"})
}

func (h *UserHandler) canAccessNotifications(c *gin.Context, userID uuid.UUID) bool {
	requesterID, ok := auth.CurrentUserID(c)
	if !ok {
		return false
	}
	if requesterID == userID {
		return true
	}
	role, _ := auth.CurrentUserRole(c)
	return role == models.UserRoleAdmin
}
