package repository

import (
	"context"
	"strings"
	"time"

	"gymbook/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	Email              string     `gorm:"column:email;uniqueIndex"`
	PasswordHash       string     `gorm:"column:password_hash"`
	FullName           string     `gorm:"column:full_name"`
	Role               string     `gorm:"column:role"`
	ProfileImage       *string    `gorm:"column:profile_image"`
	RefreshTokenHash   *string    `gorm:"column:refresh_token_hash"`
	RefreshTokenExpiry *time.Time `gorm:"column:refresh_token_expiry"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var image, refreshHash string
	if m.ProfileImage != nil {
		image = *m.ProfileImage
	}
	if m.RefreshTokenHash != nil {
		refreshHash = *m.RefreshTokenHash
	}

	return &domain.User{
		ID:                 m.ID,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		FullName:           m.FullName,
		Role:               domain.UserRole(m.Role),
		ProfileImage:       image,
		RefreshTokenHash:   refreshHash,
		RefreshTokenExpiry: m.RefreshTokenExpiry,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	email := strings.TrimSpace(strings.ToLower(u.Email))

	var image, refreshHash *string
	if u.ProfileImage != "" {
		v := u.ProfileImage
		image = &v
	}
	if u.RefreshTokenHash != "" {
		v := u.RefreshTokenHash
		refreshHash = &v
	}

	return userModel{
		ID:                 u.ID,
		Email:              email,
		PasswordHash:       u.PasswordHash,
		FullName:           u.FullName,
		Role:               string(u.Role),
		ProfileImage:       image,
		RefreshTokenHash:   refreshHash,
		RefreshTokenExpiry: u.RefreshTokenExpiry,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role domain.UserRole) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", id).
		Update("role", string(role)).Error
}

// SaveRefreshToken rotates the stored refresh credential for a user.
func (r *UserRepository) SaveRefreshToken(ctx context.Context, id int64, hash string, expiry time.Time) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"refresh_token_hash":   hash,
			"refresh_token_expiry": expiry,
		}).Error
}

func (r *UserRepository) GetTrainers(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).
		Where("role = ?", string(domain.RoleTrainer)).
		Order("full_name").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}
