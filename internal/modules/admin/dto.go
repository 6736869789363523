package admin

import "time"

type CreateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TrainerID   int64  `json:"trainer_id" binding:"required"`
}

type UpdateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TrainerID   int64  `json:"trainer_id" binding:"required"`
}

// MaxCapacity is a pointer so that 0 (a valid capacity, the session is
// bookable by nobody) still satisfies the required rule.
type CreateSessionRequest struct {
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Room        string    `json:"room"`
	MaxCapacity *int      `json:"max_capacity" binding:"required"`
}

type UpdateSessionRequest struct {
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Room        string    `json:"room"`
	MaxCapacity *int      `json:"max_capacity" binding:"required"`
}

type CreateTrainerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateTrainerProfileRequest struct {
	Bio             string  `json:"bio"`
	Specializations string  `json:"specializations"`
	YearsExperience int     `json:"years_experience"`
	ClientsTrained  int     `json:"clients_trained"`
	Rating          float64 `json:"rating"`
}
