package catalog

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/classes", h.ListClasses)
	rg.GET("/classes/:id", h.GetClass)
	rg.GET("/classes/:id/sessions", h.ListSessions)
	rg.GET("/trainers", h.ListTrainers)
	rg.GET("/trainers/:id", h.GetTrainer)
}

func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to load classes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

func (h *Handler) GetClass(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid class ID")
		return
	}

	detail, err := h.service.GetClass(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			response.NotFound(c, "Class not found")
			return
		}
		response.Internal(c, "Failed to load class")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": detail})
}

func (h *Handler) ListSessions(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid class ID")
		return
	}

	sessions, err := h.service.ListSessions(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			response.NotFound(c, "Class not found")
			return
		}
		response.Internal(c, "Failed to load sessions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.service.ListTrainers(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to load trainers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"trainers": trainers})
}

func (h *Handler) GetTrainer(c *gin.Context) {
	trainerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid trainer ID")
		return
	}

	trainer, err := h.service.GetTrainer(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			response.NotFound(c, "Trainer not found")
			return
		}
		response.Internal(c, "Failed to load trainer")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"trainer": trainer})
}
