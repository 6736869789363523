package booking

import (
	"context"
	"time"

	"gymbook/internal/domain"
	"gymbook/internal/repository"
)

// BookingRepository is the slice of the class-booking store this module
// uses.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.ClassBooking) error
	DeleteByIDAndUser(ctx context.Context, bookingID, userID int64) (bool, error)
	GetMemberBookings(ctx context.Context, userID int64) ([]repository.MemberBookingRow, error)
	HasMemberConflict(ctx context.Context, userID int64, start, end time.Time) (bool, error)
}

// SessionReader loads the admission view of a target session.
type SessionReader interface {
	GetForBooking(ctx context.Context, id int64) (*repository.SessionBookingInfo, error)
}
