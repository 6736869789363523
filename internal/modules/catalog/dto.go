package catalog

import (
	"time"

	"gymbook/internal/domain"
)

type ClassListItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TrainerID   int64  `json:"trainer_id"`
	TrainerName string `json:"trainer_name"`
}

type SessionView struct {
	ID           int64     `json:"id"`
	ClassID      int64     `json:"class_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Room         string    `json:"room,omitempty"`
	MaxCapacity  int       `json:"max_capacity"`
	BookingCount int       `json:"booking_count"`
	// Filled only by session listings that expose attendance.
	BookedUserIDs []int64 `json:"booked_user_ids,omitempty"`
}

type ClassDetail struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	TrainerID   int64         `json:"trainer_id"`
	Sessions    []SessionView `json:"sessions"`
}

type TrainerView struct {
	ID           int64                  `json:"id"`
	FullName     string                 `json:"full_name"`
	Email        string                 `json:"email"`
	ProfileImage string                 `json:"profile_image,omitempty"`
	Profile      *domain.TrainerProfile `json:"profile,omitempty"`
}
