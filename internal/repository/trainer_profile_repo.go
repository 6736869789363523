package repository

import (
	"context"

	"gymbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainerProfileRepository struct {
	db *gorm.DB
}

func NewTrainerProfileRepository(db *gorm.DB) *TrainerProfileRepository {
	return &TrainerProfileRepository{db: db}
}

type trainerProfileModel struct {
	ID              int64   `gorm:"column:id;primaryKey"`
	UserID          int64   `gorm:"column:user_id;uniqueIndex"`
	Bio             *string `gorm:"column:bio"`
	Specializations *string `gorm:"column:specializations"`
	YearsExperience int     `gorm:"column:years_experience"`
	ClientsTrained  int     `gorm:"column:clients_trained"`
	Rating          float64 `gorm:"column:rating"`
}

func (trainerProfileModel) TableName() string { return "trainer_profiles" }

func toDomainTrainerProfile(m trainerProfileModel) *domain.TrainerProfile {
	var bio, specs string
	if m.Bio != nil {
		bio = *m.Bio
	}
	if m.Specializations != nil {
		specs = *m.Specializations
	}

	return &domain.TrainerProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		Bio:             bio,
		Specializations: specs,
		YearsExperience: m.YearsExperience,
		ClientsTrained:  m.ClientsTrained,
		Rating:          m.Rating,
	}
}

func toTrainerProfileModel(p *domain.TrainerProfile) trainerProfileModel {
	var bio, specs *string
	if p.Bio != "" {
		v := p.Bio
		bio = &v
	}
	if p.Specializations != "" {
		v := p.Specializations
		specs = &v
	}

	return trainerProfileModel{
		ID:              p.ID,
		UserID:          p.UserID,
		Bio:             bio,
		Specializations: specs,
		YearsExperience: p.YearsExperience,
		ClientsTrained:  p.ClientsTrained,
		Rating:          p.Rating,
	}
}

func (r *TrainerProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.TrainerProfile, error) {
	var m trainerProfileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainTrainerProfile(m), nil
}

// Upsert creates the profile row on first write and overwrites it on
// subsequent updates, keyed by user id.
func (r *TrainerProfileRepository) Upsert(ctx context.Context, p *domain.TrainerProfile) error {
	m := toTrainerProfileModel(p)
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainTrainerProfile(m)
	return nil
}
