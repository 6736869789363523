package repository

import (
	"context"
	"time"

	"gymbook/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ClassID     int64     `gorm:"column:class_id;index"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	Room        *string   `gorm:"column:room"`
	MaxCapacity int       `gorm:"column:max_capacity"`
}

func (sessionModel) TableName() string { return "class_sessions" }

func toDomainSession(m sessionModel) *domain.ClassSession {
	var room string
	if m.Room != nil {
		room = *m.Room
	}

	return &domain.ClassSession{
		ID:          m.ID,
		ClassID:     m.ClassID,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Room:        room,
		MaxCapacity: m.MaxCapacity,
	}
}

func toSessionModel(s *domain.ClassSession) sessionModel {
	var room *string
	if s.Room != "" {
		v := s.Room
		room = &v
	}

	return sessionModel{
		ID:          s.ID,
		ClassID:     s.ClassID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Room:        room,
		MaxCapacity: s.MaxCapacity,
	}
}

// SessionWithCount is a session listing row with its current seat usage.
type SessionWithCount struct {
	ID           int64     `gorm:"column:id"`
	ClassID      int64     `gorm:"column:class_id"`
	StartTime    time.Time `gorm:"column:start_time"`
	EndTime      time.Time `gorm:"column:end_time"`
	Room         string    `gorm:"column:room"`
	MaxCapacity  int       `gorm:"column:max_capacity"`
	BookingCount int       `gorm:"column:booking_count"`
}

// SessionBookingInfo carries everything the booking admission check needs
// about a target session, loaded in one query.
type SessionBookingInfo struct {
	ID           int64     `gorm:"column:id"`
	ClassID      int64     `gorm:"column:class_id"`
	StartTime    time.Time `gorm:"column:start_time"`
	EndTime      time.Time `gorm:"column:end_time"`
	MaxCapacity  int       `gorm:"column:max_capacity"`
	ClassName    string    `gorm:"column:class_name"`
	TrainerName  string    `gorm:"column:trainer_name"`
	BookingCount int       `gorm:"column:booking_count"`
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.ClassSession) error {
	m := toSessionModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSession(m)
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.ClassSession, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

func (r *SessionRepository) GetByClassIDWithCounts(ctx context.Context, classID int64) ([]SessionWithCount, error) {
	var rows []SessionWithCount
	q := `
SELECT s.id, s.class_id, s.start_time, s.end_time,
       COALESCE(s.room, '') AS room, s.max_capacity,
       COUNT(b.id) AS booking_count
FROM class_sessions s
LEFT JOIN class_bookings b ON b.session_id = s.id
WHERE s.class_id = ?
GROUP BY s.id, s.class_id, s.start_time, s.end_time, s.room, s.max_capacity
ORDER BY s.start_time
`
	tx := r.db.WithContext(ctx).Raw(q, classID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// GetForBooking loads the session together with its class name, trainer
// name and current booking count.
func (r *SessionRepository) GetForBooking(ctx context.Context, id int64) (*SessionBookingInfo, error) {
	var row SessionBookingInfo
	q := `
SELECT s.id, s.class_id, s.start_time, s.end_time, s.max_capacity,
       c.name AS class_name, u.full_name AS trainer_name,
       (SELECT COUNT(1) FROM class_bookings b WHERE b.session_id = s.id) AS booking_count
FROM class_sessions s
JOIN classes c ON c.id = s.class_id
JOIN users u ON u.id = c.trainer_id
WHERE s.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.ClassSession) error {
	m := toSessionModel(s)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&sessionModel{}, id).Error
}
