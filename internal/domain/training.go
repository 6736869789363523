package domain

import "time"

type TrainingStatus string

const (
	TrainingPending   TrainingStatus = "Pending"
	TrainingApproved  TrainingStatus = "Approved"
	TrainingCancelled TrainingStatus = "Cancelled"
	TrainingCompleted TrainingStatus = "Completed"
)

// ParseTrainingStatus maps a client-supplied string onto the closed status
// set. Unknown values are rejected rather than persisted.
func ParseTrainingStatus(s string) (TrainingStatus, bool) {
	switch TrainingStatus(s) {
	case TrainingPending, TrainingApproved, TrainingCancelled, TrainingCompleted:
		return TrainingStatus(s), true
	}
	return "", false
}

// PersonalTrainerSession is a requested or confirmed one-on-one slot
// between a member and a trainer. Only Approved sessions block the
// trainer's calendar.
type PersonalTrainerSession struct {
	ID        int64          `json:"id"`
	TrainerID int64          `json:"trainer_id"`
	MemberID  int64          `json:"member_id"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Status    TrainingStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
