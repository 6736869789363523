package repository

import (
	"context"
	"time"

	"gymbook/internal/domain"

	"gorm.io/gorm"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

type classModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	TrainerID   int64     `gorm:"column:trainer_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (classModel) TableName() string { return "classes" }

func toDomainClass(m classModel) *domain.Class {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Class{
		ID:          m.ID,
		Name:        m.Name,
		Description: desc,
		TrainerID:   m.TrainerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toClassModel(c *domain.Class) classModel {
	var desc *string
	if c.Description != "" {
		v := c.Description
		desc = &v
	}

	return classModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: desc,
		TrainerID:   c.TrainerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ClassWithTrainer is a listing row joined with the owning trainer's name.
type ClassWithTrainer struct {
	ID          int64  `gorm:"column:id"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	TrainerID   int64  `gorm:"column:trainer_id"`
	TrainerName string `gorm:"column:trainer_name"`
}

func (r *ClassRepository) Create(ctx context.Context, c *domain.Class) error {
	m := toClassModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClass(m)
	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	var m classModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClass(m), nil
}

func (r *ClassRepository) GetAllWithTrainer(ctx context.Context) ([]ClassWithTrainer, error) {
	var rows []ClassWithTrainer
	q := `
SELECT c.id, c.name, COALESCE(c.description, '') AS description,
       c.trainer_id, u.full_name AS trainer_name
FROM classes c
JOIN users u ON u.id = c.trainer_id
ORDER BY c.name
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ClassRepository) Update(ctx context.Context, c *domain.Class) error {
	m := toClassModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", id).Delete(&sessionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&classModel{}, id).Error
	})
}
