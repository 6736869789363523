package training

import (
	"context"
	"errors"
	"time"

	"gymbook/internal/domain"

	"gorm.io/gorm"
)

// Service manages personal-training requests: admission against the
// member's class schedule and the trainer's approved calendar, plus the
// Pending → Approved/Cancelled/Completed lifecycle.
type Service struct {
	trainings     TrainingRepository
	users         UserReader
	classBookings ClassBookingReader
}

func NewService(trainings TrainingRepository, users UserReader, classBookings ClassBookingReader) *Service {
	return &Service{
		trainings:     trainings,
		users:         users,
		classBookings: classBookings,
	}
}

// BookSession files a new request with status Pending. The target must be
// an actual trainer account; the member must be free of overlapping class
// bookings; the trainer must have no Approved session overlapping the
// range. Note the member's own pending personal sessions are not checked,
// matching the booking rules as shipped.
func (s *Service) BookSession(ctx context.Context, memberID, trainerID int64, start, end time.Time) (*domain.PersonalTrainerSession, error) {
	if !end.After(start) {
		return nil, ErrValidation
	}

	trainer, err := s.users.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	if trainer.Role != domain.RoleTrainer {
		return nil, ErrTrainerNotFound
	}

	memberBusy, err := s.classBookings.HasMemberConflict(ctx, memberID, start, end)
	if err != nil {
		return nil, err
	}
	if memberBusy {
		return nil, ErrMemberConflict
	}

	trainerBusy, err := s.trainings.HasApprovedConflict(ctx, trainerID, start, end)
	if err != nil {
		return nil, err
	}
	if trainerBusy {
		return nil, ErrTrainerConflict
	}

	session := &domain.PersonalTrainerSession{
		TrainerID: trainerID,
		MemberID:  memberID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.TrainingPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.trainings.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// CancelSession hard-deletes the member's session whatever its current
// status. False means no row matched the id and owner.
func (s *Service) CancelSession(ctx context.Context, memberID, sessionID int64) (bool, error) {
	return s.trainings.DeleteByIDAndMember(ctx, sessionID, memberID)
}

// UpdateStatus lets the owning trainer move a session to any status in
// the closed set. Approving re-checks the trainer's calendar: requests
// admitted while this one was still Pending must not end up as two
// overlapping Approved sessions.
func (s *Service) UpdateStatus(ctx context.Context, trainerID, sessionID int64, status string) error {
	parsed, ok := domain.ParseTrainingStatus(status)
	if !ok {
		return ErrInvalidStatus
	}

	session, err := s.trainings.GetByIDAndTrainer(ctx, sessionID, trainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	if parsed == domain.TrainingApproved {
		rows, err := s.trainings.GetTrainerSessions(ctx, trainerID)
		if err != nil {
			return err
		}
		for _, r := range rows {
			if r.ID == sessionID || r.Status != string(domain.TrainingApproved) {
				continue
			}
			if domain.Overlaps(session.StartTime, session.EndTime, r.StartTime, r.EndTime) {
				return ErrTrainerConflict
			}
		}
	}

	return s.trainings.UpdateStatus(ctx, sessionID, parsed)
}

func (s *Service) GetMemberSessions(ctx context.Context, memberID int64) ([]MemberSessionView, error) {
	rows, err := s.trainings.GetMemberSessions(ctx, memberID)
	if err != nil {
		return nil, err
	}

	out := make([]MemberSessionView, 0, len(rows))
	for _, r := range rows {
		out = append(out, MemberSessionView{
			ID:          r.ID,
			TrainerName: r.TrainerName,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			Status:      r.Status,
		})
	}
	return out, nil
}

func (s *Service) GetTrainerSessions(ctx context.Context, trainerID int64) ([]TrainerSessionView, error) {
	rows, err := s.trainings.GetTrainerSessions(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	out := make([]TrainerSessionView, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrainerSessionView{
			ID:          r.ID,
			MemberName:  r.MemberName,
			MemberEmail: r.MemberEmail,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			Status:      r.Status,
		})
	}
	return out, nil
}
