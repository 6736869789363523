package training

import "time"

type BookTrainerRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MemberSessionView is the member-facing listing row.
type MemberSessionView struct {
	ID          int64     `json:"id"`
	TrainerName string    `json:"trainer_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
}

// TrainerSessionView is the trainer-facing listing row with member
// contact details.
type TrainerSessionView struct {
	ID          int64     `json:"id"`
	MemberName  string    `json:"member_name"`
	MemberEmail string    `json:"member_email"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
}
