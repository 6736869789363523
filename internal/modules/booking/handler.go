package booking

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
	rg.POST("/sessions/:id/book", h.BookSession)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/member/bookings", h.GetMemberBookings)
}

func (h *Handler) BookSession(c *gin.Context) {
	userID := c.GetInt64("user_id")

	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid session ID")
		return
	}

	summary, err := h.service.BookSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(c, "Session not found")
		case errors.Is(err, ErrSessionFull):
			response.Conflict(c, "SESSION_FULL", "Session is full")
		case errors.Is(err, ErrScheduleConflict):
			response.Conflict(c, "SCHEDULE_CONFLICT", "You already have a conflicting booking")
		default:
			response.Internal(c, "Failed to book session")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": summary})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
		return
	}

	ok, err := h.service.CancelBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		response.Internal(c, "Failed to cancel booking")
		return
	}
	if !ok {
		response.NotFound(c, "Booking not found or already cancelled")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

func (h *Handler) GetMemberBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookings, err := h.service.GetMemberBookings(c.Request.Context(), userID)
	if err != nil {
		response.Internal(c, "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}
