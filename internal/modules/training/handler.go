package training

import (
	"errors"
	"net/http"
	"strconv"

	"gymbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterMemberRoutes attaches the member-facing endpoints.
func (h *Handler) RegisterMemberRoutes(rg *gin.RouterGroup) {
	rg.POST("/trainers/:id/book", h.BookSession)
	rg.DELETE("/training/:id", h.CancelSession)
	rg.GET("/member/training", h.GetMemberSessions)
}

// RegisterTrainerRoutes attaches the endpoints guarded by the trainer
// role middleware.
func (h *Handler) RegisterTrainerRoutes(rg *gin.RouterGroup) {
	rg.GET("/trainer/sessions", h.GetTrainerSessions)
	rg.PATCH("/training/:id/status", h.UpdateStatus)
}

func (h *Handler) BookSession(c *gin.Context) {
	memberID := c.GetInt64("user_id")

	trainerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid trainer ID")
		return
	}

	var req BookTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	session, err := h.service.BookSession(c.Request.Context(), memberID, trainerID, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.BadRequest(c, "VALIDATION_ERROR", "End time must be after start time")
		case errors.Is(err, ErrTrainerNotFound):
			response.NotFound(c, "Trainer does not exist")
		case errors.Is(err, ErrMemberConflict):
			response.Conflict(c, "SCHEDULE_CONFLICT", "You have a conflicting class")
		case errors.Is(err, ErrTrainerConflict):
			response.Conflict(c, "SCHEDULE_CONFLICT", "Trainer already has a conflicting session")
		default:
			response.Internal(c, "Failed to request session")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"session_id": session.ID,
		"status":     session.Status,
	})
}

func (h *Handler) CancelSession(c *gin.Context) {
	memberID := c.GetInt64("user_id")

	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid session ID")
		return
	}

	ok, err := h.service.CancelSession(c.Request.Context(), memberID, sessionID)
	if err != nil {
		response.Internal(c, "Failed to cancel session")
		return
	}
	if !ok {
		response.NotFound(c, "Session not found or already cancelled")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Session successfully cancelled"})
}

func (h *Handler) GetMemberSessions(c *gin.Context) {
	memberID := c.GetInt64("user_id")

	sessions, err := h.service.GetMemberSessions(c.Request.Context(), memberID)
	if err != nil {
		response.Internal(c, "Failed to load sessions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) GetTrainerSessions(c *gin.Context) {
	trainerID := c.GetInt64("user_id")

	sessions, err := h.service.GetTrainerSessions(c.Request.Context(), trainerID)
	if err != nil {
		response.Internal(c, "Failed to load sessions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	trainerID := c.GetInt64("user_id")

	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid session ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "Status is required")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), trainerID, sessionID, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.BadRequest(c, "VALIDATION_ERROR", "Status must be one of Pending, Approved, Cancelled, Completed")
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(c, "Session not found")
		case errors.Is(err, ErrTrainerConflict):
			response.Conflict(c, "SCHEDULE_CONFLICT", "An approved session already covers this time")
		default:
			response.Internal(c, "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Status updated"})
}
