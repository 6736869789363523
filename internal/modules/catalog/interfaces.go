package catalog

import (
	"context"

	"gymbook/internal/domain"
	"gymbook/internal/repository"
)

// ClassReader — only the read methods the catalog needs.
type ClassReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Class, error)
	GetAllWithTrainer(ctx context.Context) ([]repository.ClassWithTrainer, error)
}

type SessionReader interface {
	GetByClassIDWithCounts(ctx context.Context, classID int64) ([]repository.SessionWithCount, error)
}

type BookingReader interface {
	GetUserIDsBySession(ctx context.Context, sessionID int64) ([]int64, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetTrainers(ctx context.Context) ([]domain.User, error)
}

type TrainerProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.TrainerProfile, error)
}
