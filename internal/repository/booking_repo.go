package repository

import (
	"context"
	"errors"
	"time"

	"gymbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCapacityReached is returned when a booking insert would exceed the
// session's max capacity. Raised inside the insert transaction so the
// check holds under concurrent requests for the same session.
var ErrCapacityReached = errors.New("session capacity reached")

type ClassBookingRepository struct {
	db *gorm.DB
}

func NewClassBookingRepository(db *gorm.DB) *ClassBookingRepository {
	return &ClassBookingRepository{db: db}
}

type classBookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	SessionID int64     `gorm:"column:session_id;uniqueIndex:idx_session_user"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_session_user"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (classBookingModel) TableName() string { return "class_bookings" }

func toDomainClassBooking(m classBookingModel) *domain.ClassBooking {
	return &domain.ClassBooking{
		ID:        m.ID,
		SessionID: m.SessionID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// MemberBookingRow is a member's booking joined with session and class
// details for the bookings listing.
type MemberBookingRow struct {
	BookingID   int64     `gorm:"column:booking_id"`
	SessionID   int64     `gorm:"column:session_id"`
	UserID      int64     `gorm:"column:user_id"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	ClassName   string    `gorm:"column:class_name"`
	TrainerName string    `gorm:"column:trainer_name"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// Create inserts the booking inside a transaction that locks the parent
// session row and re-counts taken seats, so two concurrent requests for
// the last seat cannot both succeed. SQLite has no FOR UPDATE but
// serializes writers, which gives the same guarantee there.
func (r *ClassBookingRepository) Create(ctx context.Context, b *domain.ClassBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var sess sessionModel
		if err := q.First(&sess, b.SessionID).Error; err != nil {
			return err
		}

		var taken int64
		if err := tx.Model(&classBookingModel{}).
			Where("session_id = ?", b.SessionID).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken >= int64(sess.MaxCapacity) {
			return ErrCapacityReached
		}

		m := classBookingModel{
			SessionID: b.SessionID,
			UserID:    b.UserID,
			CreatedAt: b.CreatedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainClassBooking(m)
		return nil
	})
}

// DeleteByIDAndUser removes a booking scoped by owner. Reports false when
// no such row exists, which also covers the repeat-cancel case.
func (r *ClassBookingRepository) DeleteByIDAndUser(ctx context.Context, bookingID, userID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Delete(&classBookingModel{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// HasMemberConflict reports whether the member holds any class booking
// whose session overlaps [start, end). Half-open comparison: touching
// ranges do not count.
func (r *ClassBookingRepository) HasMemberConflict(ctx context.Context, userID int64, start, end time.Time) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM class_bookings b
JOIN class_sessions s ON s.id = b.session_id
WHERE b.user_id = ?
  AND s.start_time < ?
  AND s.end_time > ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, end, start).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ClassBookingRepository) GetMemberBookings(ctx context.Context, userID int64) ([]MemberBookingRow, error) {
	var rows []MemberBookingRow
	q := `
SELECT b.id AS booking_id, b.session_id, b.user_id, b.created_at,
       s.start_time, s.end_time,
       c.name AS class_name, u.full_name AS trainer_name
FROM class_bookings b
JOIN class_sessions s ON s.id = b.session_id
JOIN classes c ON c.id = s.class_id
JOIN users u ON u.id = c.trainer_id
WHERE b.user_id = ?
ORDER BY s.start_time
`
	tx := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ClassBookingRepository) GetUserIDsBySession(ctx context.Context, sessionID int64) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).Model(&classBookingModel{}).
		Where("session_id = ?", sessionID).
		Pluck("user_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}

func (r *ClassBookingRepository) CountBySession(ctx context.Context, sessionID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&classBookingModel{}).
		Where("session_id = ?", sessionID).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *ClassBookingRepository) CountByClass(ctx context.Context, classID int64) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM class_bookings b
JOIN class_sessions s ON s.id = b.session_id
WHERE s.class_id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, classID).Scan(&cnt)
	return cnt, tx.Error
}
