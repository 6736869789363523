package repository

import (
	"context"
	"time"

	"gymbook/internal/domain"

	"gorm.io/gorm"
)

type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

type trainingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	TrainerID int64     `gorm:"column:trainer_id;index"`
	MemberID  int64     `gorm:"column:member_id;index"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (trainingModel) TableName() string { return "personal_trainer_sessions" }

func toDomainTraining(m trainingModel) *domain.PersonalTrainerSession {
	return &domain.PersonalTrainerSession{
		ID:        m.ID,
		TrainerID: m.TrainerID,
		MemberID:  m.MemberID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Status:    domain.TrainingStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// MemberTrainingRow is a member's personal-training session joined with
// the trainer's name.
type MemberTrainingRow struct {
	ID          int64     `gorm:"column:id"`
	TrainerName string    `gorm:"column:trainer_name"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	Status      string    `gorm:"column:status"`
}

// TrainerTrainingRow is the trainer-facing view with the member's contact
// details.
type TrainerTrainingRow struct {
	ID          int64     `gorm:"column:id"`
	MemberName  string    `gorm:"column:member_name"`
	MemberEmail string    `gorm:"column:member_email"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	Status      string    `gorm:"column:status"`
}

func (r *TrainingRepository) Create(ctx context.Context, s *domain.PersonalTrainerSession) error {
	m := trainingModel{
		TrainerID: s.TrainerID,
		MemberID:  s.MemberID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainTraining(m)
	return nil
}

// DeleteByIDAndMember removes the session scoped by the owning member,
// regardless of its status. False means no such row.
func (r *TrainingRepository) DeleteByIDAndMember(ctx context.Context, sessionID, memberID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND member_id = ?", sessionID, memberID).
		Delete(&trainingModel{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *TrainingRepository) GetByIDAndTrainer(ctx context.Context, sessionID, trainerID int64) (*domain.PersonalTrainerSession, error) {
	var m trainingModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND trainer_id = ?", sessionID, trainerID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTraining(m), nil
}

func (r *TrainingRepository) UpdateStatus(ctx context.Context, sessionID int64, status domain.TrainingStatus) error {
	return r.db.WithContext(ctx).Model(&trainingModel{}).
		Where("id = ?", sessionID).
		Update("status", string(status)).Error
}

// HasApprovedConflict reports whether the trainer has an Approved session
// overlapping [start, end). Pending, Cancelled and Completed sessions do
// not block new requests.
func (r *TrainingRepository) HasApprovedConflict(ctx context.Context, trainerID int64, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&trainingModel{}).
		Where("trainer_id = ? AND status = ?", trainerID, string(domain.TrainingApproved)).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *TrainingRepository) GetMemberSessions(ctx context.Context, memberID int64) ([]MemberTrainingRow, error) {
	var rows []MemberTrainingRow
	q := `
SELECT t.id, u.full_name AS trainer_name, t.start_time, t.end_time, t.status
FROM personal_trainer_sessions t
JOIN users u ON u.id = t.trainer_id
WHERE t.member_id = ?
ORDER BY t.start_time
`
	tx := r.db.WithContext(ctx).Raw(q, memberID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *TrainingRepository) GetTrainerSessions(ctx context.Context, trainerID int64) ([]TrainerTrainingRow, error) {
	var rows []TrainerTrainingRow
	q := `
SELECT t.id, u.full_name AS member_name, u.email AS member_email,
       t.start_time, t.end_time, t.status
FROM personal_trainer_sessions t
JOIN users u ON u.id = t.member_id
WHERE t.trainer_id = ?
ORDER BY t.start_time DESC
`
	tx := r.db.WithContext(ctx).Raw(q, trainerID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
