package booking

import "time"

// BookingSummary is what the member gets back for each class booking.
type BookingSummary struct {
	ID          int64     `json:"id"`
	SessionID   int64     `json:"session_id"`
	UserID      int64     `json:"user_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	ClassName   string    `json:"class_name"`
	TrainerName string    `json:"trainer_name"`
	CreatedAt   time.Time `json:"created_at"`
}
