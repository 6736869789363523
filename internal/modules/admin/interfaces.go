package admin

import (
	"context"

	"gymbook/internal/domain"
)

type ClassRepository interface {
	Create(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id int64) (*domain.Class, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id int64) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *domain.ClassSession) error
	GetByID(ctx context.Context, id int64) (*domain.ClassSession, error)
	Update(ctx context.Context, s *domain.ClassSession) error
	Delete(ctx context.Context, id int64) error
}

type BookingCounter interface {
	CountBySession(ctx context.Context, sessionID int64) (int64, error)
	CountByClass(ctx context.Context, classID int64) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
}

type TrainerProfileRepository interface {
	Upsert(ctx context.Context, p *domain.TrainerProfile) error
}
