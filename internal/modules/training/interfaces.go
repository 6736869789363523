package training

import (
	"context"
	"time"

	"gymbook/internal/domain"
	"gymbook/internal/repository"
)

type TrainingRepository interface {
	Create(ctx context.Context, s *domain.PersonalTrainerSession) error
	DeleteByIDAndMember(ctx context.Context, sessionID, memberID int64) (bool, error)
	GetByIDAndTrainer(ctx context.Context, sessionID, trainerID int64) (*domain.PersonalTrainerSession, error)
	UpdateStatus(ctx context.Context, sessionID int64, status domain.TrainingStatus) error
	HasApprovedConflict(ctx context.Context, trainerID int64, start, end time.Time) (bool, error)
	GetMemberSessions(ctx context.Context, memberID int64) ([]repository.MemberTrainingRow, error)
	GetTrainerSessions(ctx context.Context, trainerID int64) ([]repository.TrainerTrainingRow, error)
}

// UserReader resolves the requested trainer account.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ClassBookingReader checks the member's class schedule for overlaps.
type ClassBookingReader interface {
	HasMemberConflict(ctx context.Context, userID int64, start, end time.Time) (bool, error)
}
