package domain

import "time"

type UserRole string

const (
	RoleMember  UserRole = "member"
	RoleTrainer UserRole = "trainer"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email" validate:"required,email"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"full_name"`
	Role         UserRole `json:"role"`
	ProfileImage string   `json:"profile_image,omitempty"`

	// Rotating refresh credential, stored hashed. Never serialized.
	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated only for users with RoleTrainer.
	TrainerProfile *TrainerProfile `json:"trainer_profile,omitempty"`
}

// TrainerProfile keeps the trainer-only fields in a side record keyed by
// user id instead of nullable columns on users.
type TrainerProfile struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	Bio             string  `json:"bio,omitempty"`
	Specializations string  `json:"specializations,omitempty"`
	YearsExperience int     `json:"years_experience"`
	ClientsTrained  int     `json:"clients_trained"`
	Rating          float64 `json:"rating"`
}
