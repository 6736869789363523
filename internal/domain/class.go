package domain

import "time"

// Class is a template owned by a trainer; scheduled occurrences live in
// ClassSession rows.
type Class struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TrainerID   int64     `json:"trainer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ClassSession struct {
	ID          int64     `json:"id"`
	ClassID     int64     `json:"class_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Room        string    `json:"room,omitempty"`
	MaxCapacity int       `json:"max_capacity"`
}

// ClassBooking is one member's seat in one session. The row itself is the
// active state: cancellation deletes it, there is no cancelled flag.
type ClassBooking struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
