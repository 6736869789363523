package admin

import (
	"errors"
	"net/http"
	"strconv"

	"gymbook/internal/pkg/response"
	"gymbook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin surface; the group must already carry
// auth + admin-role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/classes", h.CreateClass)
	rg.PUT("/classes/:id", h.UpdateClass)
	rg.DELETE("/classes/:id", h.DeleteClass)

	rg.POST("/classes/:id/sessions", h.CreateSession)
	rg.PUT("/sessions/:id", h.UpdateSession)
	rg.DELETE("/sessions/:id", h.DeleteSession)

	rg.POST("/trainers", h.CreateTrainer)
	rg.POST("/users/:id/promote", h.PromoteUser)
	rg.POST("/trainers/:id/deactivate", h.DeactivateTrainer)
	rg.PUT("/trainers/:id/profile", h.UpdateTrainerProfile)
}

func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			response.NotFound(c, "Trainer not found")
			return
		}
		response.Internal(c, "Failed to create class")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

func (h *Handler) UpdateClass(c *gin.Context) {
	classID, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	class, err := h.service.UpdateClass(c.Request.Context(), classID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			response.NotFound(c, "Class not found")
		case errors.Is(err, ErrTrainerNotFound):
			response.NotFound(c, "Trainer not found")
		default:
			response.Internal(c, "Failed to update class")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": class})
}

func (h *Handler) DeleteClass(c *gin.Context) {
	classID, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.service.DeleteClass(c.Request.Context(), classID); err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			response.NotFound(c, "Class not found")
		case errors.Is(err, ErrHasBookings):
			response.Conflict(c, "HAS_BOOKINGS", "Class has active bookings and cannot be deleted")
		default:
			response.Internal(c, "Failed to delete class")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Class deleted successfully"})
}

func (h *Handler) CreateSession(c *gin.Context) {
	classID, err := parseID(c)
	if err != nil {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), classID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			response.NotFound(c, "Class not found")
		case errors.Is(err, ErrValidation):
			response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		default:
			response.Internal(c, "Failed to create session")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": session})
}

func (h *Handler) UpdateSession(c *gin.Context) {
	sessionID, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	session, err := h.service.UpdateSession(c.Request.Context(), sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(c, "Session not found")
		case errors.Is(err, ErrValidation):
			response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		default:
			response.Internal(c, "Failed to update session")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": session})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	sessionID, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(c, "Session not found")
		case errors.Is(err, ErrHasBookings):
			response.Conflict(c, "HAS_BOOKINGS", "Session has active bookings and cannot be deleted")
		default:
			response.Internal(c, "Failed to delete session")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Session deleted successfully"})
}

func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	trainer, err := h.service.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Conflict(c, "EMAIL_EXISTS", "Email is already registered")
			return
		}
		response.Internal(c, "Failed to create trainer")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"trainer": trainer})
}

func (h *Handler) PromoteUser(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		return
	}

	promoted, err := h.service.PromoteUserToTrainer(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.Internal(c, "Failed to promote user")
		return
	}
	if !promoted {
		response.Conflict(c, "ALREADY_TRAINER", "User is already a trainer")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User promoted to trainer"})
}

func (h *Handler) DeactivateTrainer(c *gin.Context) {
	trainerID, err := parseID(c)
	if err != nil {
		return
	}

	deactivated, err := h.service.DeactivateTrainer(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.Internal(c, "Failed to deactivate trainer")
		return
	}
	if !deactivated {
		response.Conflict(c, "NOT_A_TRAINER", "User is not a trainer")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Trainer deactivated"})
}

func (h *Handler) UpdateTrainerProfile(c *gin.Context) {
	trainerID, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateTrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", validator.Details(err))
		return
	}

	if err := h.service.UpdateTrainerProfile(c.Request.Context(), trainerID, req); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			response.NotFound(c, "Trainer not found")
			return
		}
		response.Internal(c, "Failed to update trainer profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Trainer profile updated"})
}

// parseID reads the :id path param and writes the 400 itself on failure.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid ID")
		return 0, err
	}
	return id, nil
}
