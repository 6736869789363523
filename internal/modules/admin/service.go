package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gymbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service implements the administration surface: class and session
// management plus trainer account lifecycle.
type Service struct {
	classes  ClassRepository
	sessions SessionRepository
	bookings BookingCounter
	users    UserRepository
	profiles TrainerProfileRepository
}

func NewService(classes ClassRepository, sessions SessionRepository, bookings BookingCounter, users UserRepository, profiles TrainerProfileRepository) *Service {
	return &Service{
		classes:  classes,
		sessions: sessions,
		bookings: bookings,
		users:    users,
		profiles: profiles,
	}
}

// Classes

func (s *Service) CreateClass(ctx context.Context, req CreateClassRequest) (*domain.Class, error) {
	if err := s.requireTrainer(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	class := &domain.Class{
		Name:        req.Name,
		Description: req.Description,
		TrainerID:   req.TrainerID,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *Service) UpdateClass(ctx context.Context, classID int64, req UpdateClassRequest) (*domain.Class, error) {
	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if err := s.requireTrainer(ctx, req.TrainerID); err != nil {
		return nil, err
	}

	class.Name = req.Name
	class.Description = req.Description
	class.TrainerID = req.TrainerID
	if err := s.classes.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// DeleteClass removes a class and its sessions, refusing while any of its
// sessions still holds bookings.
func (s *Service) DeleteClass(ctx context.Context, classID int64) error {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}

	count, err := s.bookings.CountByClass(ctx, classID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasBookings
	}

	return s.classes.Delete(ctx, classID)
}

// Sessions

func (s *Service) CreateSession(ctx context.Context, classID int64, req CreateSessionRequest) (*domain.ClassSession, error) {
	if req.MaxCapacity == nil {
		return nil, fmt.Errorf("%w: max capacity is required", ErrValidation)
	}
	if err := validateSessionWindow(req.StartTime, req.EndTime, *req.MaxCapacity); err != nil {
		return nil, err
	}

	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	session := &domain.ClassSession{
		ClassID:     classID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Room:        req.Room,
		MaxCapacity: *req.MaxCapacity,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) UpdateSession(ctx context.Context, sessionID int64, req UpdateSessionRequest) (*domain.ClassSession, error) {
	if req.MaxCapacity == nil {
		return nil, fmt.Errorf("%w: max capacity is required", ErrValidation)
	}
	if err := validateSessionWindow(req.StartTime, req.EndTime, *req.MaxCapacity); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session.StartTime = req.StartTime
	session.EndTime = req.EndTime
	session.Room = req.Room
	session.MaxCapacity = *req.MaxCapacity
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) DeleteSession(ctx context.Context, sessionID int64) error {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	count, err := s.bookings.CountBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasBookings
	}

	return s.sessions.Delete(ctx, sessionID)
}

// Trainer accounts

// CreateTrainer provisions a trainer account with an empty profile record.
func (s *Service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         domain.RoleTrainer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.profiles.Upsert(ctx, &domain.TrainerProfile{UserID: user.ID}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// PromoteUserToTrainer flips a member to the trainer role. Returns false
// when the user already holds it.
func (s *Service) PromoteUserToTrainer(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	if user.Role == domain.RoleTrainer {
		return false, nil
	}

	if err := s.users.UpdateRole(ctx, userID, domain.RoleTrainer); err != nil {
		return false, err
	}
	if err := s.profiles.Upsert(ctx, &domain.TrainerProfile{UserID: userID}); err != nil {
		return false, err
	}
	return true, nil
}

// DeactivateTrainer demotes a trainer back to member. Returns false when
// the user is not a trainer.
func (s *Service) DeactivateTrainer(ctx context.Context, trainerID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	if user.Role != domain.RoleTrainer {
		return false, nil
	}

	if err := s.users.UpdateRole(ctx, trainerID, domain.RoleMember); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) UpdateTrainerProfile(ctx context.Context, trainerID int64, req UpdateTrainerProfileRequest) error {
	if err := s.requireTrainer(ctx, trainerID); err != nil {
		return err
	}

	return s.profiles.Upsert(ctx, &domain.TrainerProfile{
		UserID:          trainerID,
		Bio:             req.Bio,
		Specializations: req.Specializations,
		YearsExperience: req.YearsExperience,
		ClientsTrained:  req.ClientsTrained,
		Rating:          req.Rating,
	})
}

func (s *Service) requireTrainer(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	if user.Role != domain.RoleTrainer {
		return ErrTrainerNotFound
	}
	return nil
}

func validateSessionWindow(start, end time.Time, capacity int) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrValidation)
	}
	return nil
}
