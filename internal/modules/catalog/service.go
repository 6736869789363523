package catalog

import (
	"context"
	"errors"

	"gymbook/internal/domain"

	"gorm.io/gorm"
)

// Service serves the public browsing surface: classes, their sessions and
// the trainer directory.
type Service struct {
	classes  ClassReader
	sessions SessionReader
	bookings BookingReader
	users    UserReader
	profiles TrainerProfileReader
}

func NewService(classes ClassReader, sessions SessionReader, bookings BookingReader, users UserReader, profiles TrainerProfileReader) *Service {
	return &Service{
		classes:  classes,
		sessions: sessions,
		bookings: bookings,
		users:    users,
		profiles: profiles,
	}
}

func (s *Service) ListClasses(ctx context.Context) ([]ClassListItem, error) {
	rows, err := s.classes.GetAllWithTrainer(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ClassListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ClassListItem{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			TrainerID:   r.TrainerID,
			TrainerName: r.TrainerName,
		})
	}
	return items, nil
}

func (s *Service) GetClass(ctx context.Context, classID int64) (*ClassDetail, error) {
	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	rows, err := s.sessions.GetByClassIDWithCounts(ctx, classID)
	if err != nil {
		return nil, err
	}

	detail := &ClassDetail{
		ID:          class.ID,
		Name:        class.Name,
		Description: class.Description,
		TrainerID:   class.TrainerID,
		Sessions:    make([]SessionView, 0, len(rows)),
	}
	for _, r := range rows {
		detail.Sessions = append(detail.Sessions, SessionView{
			ID:           r.ID,
			ClassID:      r.ClassID,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			Room:         r.Room,
			MaxCapacity:  r.MaxCapacity,
			BookingCount: r.BookingCount,
		})
	}
	return detail, nil
}

// ListSessions returns a class's sessions with seat usage and the ids of
// the members holding seats.
func (s *Service) ListSessions(ctx context.Context, classID int64) ([]SessionView, error) {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	rows, err := s.sessions.GetByClassIDWithCounts(ctx, classID)
	if err != nil {
		return nil, err
	}

	views := make([]SessionView, 0, len(rows))
	for _, r := range rows {
		userIDs, err := s.bookings.GetUserIDsBySession(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, SessionView{
			ID:            r.ID,
			ClassID:       r.ClassID,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			Room:          r.Room,
			MaxCapacity:   r.MaxCapacity,
			BookingCount:  r.BookingCount,
			BookedUserIDs: userIDs,
		})
	}
	return views, nil
}

func (s *Service) ListTrainers(ctx context.Context) ([]TrainerView, error) {
	trainers, err := s.users.GetTrainers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TrainerView, 0, len(trainers))
	for _, t := range trainers {
		view := TrainerView{
			ID:           t.ID,
			FullName:     t.FullName,
			Email:        t.Email,
			ProfileImage: t.ProfileImage,
		}
		profile, err := s.profiles.GetByUserID(ctx, t.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		view.Profile = profile
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetTrainer(ctx context.Context, trainerID int64) (*TrainerView, error) {
	user, err := s.users.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	if user.Role != domain.RoleTrainer {
		return nil, ErrTrainerNotFound
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &TrainerView{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Profile:      profile,
	}, nil
}
