package booking

import (
	"context"
	"errors"
	"time"

	"gymbook/internal/domain"
	"gymbook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service decides whether a class-session booking may be created and owns
// the booking lifecycle for members.
type Service struct {
	bookings BookingRepository
	sessions SessionReader
}

func NewService(bookings BookingRepository, sessions SessionReader) *Service {
	return &Service{
		bookings: bookings,
		sessions: sessions,
	}
}

// BookSession admits a member into a class session: the session must
// exist, have a free seat, and not overlap any of the member's existing
// bookings. The capacity check is repeated inside the insert transaction,
// so the precheck here is only the fast path.
func (s *Service) BookSession(ctx context.Context, memberID, sessionID int64) (*BookingSummary, error) {
	info, err := s.sessions.GetForBooking(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if info.BookingCount >= info.MaxCapacity {
		return nil, ErrSessionFull
	}

	conflict, err := s.bookings.HasMemberConflict(ctx, memberID, info.StartTime, info.EndTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrScheduleConflict
	}

	b := &domain.ClassBooking{
		SessionID: sessionID,
		UserID:    memberID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, ErrSessionFull
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrSessionNotFound
		}
		// Unique (session_id, user_id) backstop: the member already holds
		// a seat in this exact session.
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return nil, ErrScheduleConflict
		}
		return nil, err
	}

	return &BookingSummary{
		ID:          b.ID,
		SessionID:   b.SessionID,
		UserID:      b.UserID,
		StartTime:   info.StartTime,
		EndTime:     info.EndTime,
		ClassName:   info.ClassName,
		TrainerName: info.TrainerName,
		CreatedAt:   b.CreatedAt,
	}, nil
}

// CancelBooking deletes the member's booking. False means the booking does
// not exist, is not owned by this member, or was already cancelled — the
// caller treats all three the same way.
func (s *Service) CancelBooking(ctx context.Context, memberID, bookingID int64) (bool, error) {
	return s.bookings.DeleteByIDAndUser(ctx, bookingID, memberID)
}

func (s *Service) GetMemberBookings(ctx context.Context, memberID int64) ([]BookingSummary, error) {
	rows, err := s.bookings.GetMemberBookings(ctx, memberID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingSummary{
			ID:          r.BookingID,
			SessionID:   r.SessionID,
			UserID:      r.UserID,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			ClassName:   r.ClassName,
			TrainerName: r.TrainerName,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}
