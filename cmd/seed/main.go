package main

import (
	"context"
	"log"
	"time"

	"gymbook/internal/config"
	"gymbook/internal/database"
	"gymbook/internal/domain"
	"gymbook/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM personal_trainer_sessions")
	db.Exec("DELETE FROM class_bookings")
	db.Exec("DELETE FROM class_sessions")
	db.Exec("DELETE FROM classes")
	db.Exec("DELETE FROM trainer_profiles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	profiles := repository.NewTrainerProfileRepository(db)
	classes := repository.NewClassRepository(db)
	sessions := repository.NewSessionRepository(db)

	log.Println("Creating users...")

	admin := createUser(ctx, users, "admin@gymbook.local", "admin123", "Admin", domain.RoleAdmin)

	trainerA := createUser(ctx, users, "alex.coach@gymbook.local", "trainer123", "Alex Coach", domain.RoleTrainer)
	trainerB := createUser(ctx, users, "sam.lift@gymbook.local", "trainer123", "Sam Lift", domain.RoleTrainer)

	mustUpsert(ctx, profiles, &domain.TrainerProfile{
		UserID:          trainerA.ID,
		Bio:             "Former competitive swimmer, 8 years of coaching.",
		Specializations: "Swimming, HIIT, Mobility",
		YearsExperience: 8,
		ClientsTrained:  120,
		Rating:          4.8,
	})
	mustUpsert(ctx, profiles, &domain.TrainerProfile{
		UserID:          trainerB.ID,
		Bio:             "Powerlifting coach and strength programming nerd.",
		Specializations: "Powerlifting, Strength",
		YearsExperience: 5,
		ClientsTrained:  60,
		Rating:          4.6,
	})

	createUser(ctx, users, "maria@example.com", "member123", "Maria Petrova", domain.RoleMember)
	createUser(ctx, users, "ivan@example.com", "member123", "Ivan Sokolov", domain.RoleMember)

	log.Println("Creating classes and sessions...")

	yoga := mustCreateClass(ctx, classes, &domain.Class{
		Name:        "Morning Yoga",
		Description: "Slow flow to start the day.",
		TrainerID:   trainerA.ID,
	})
	strength := mustCreateClass(ctx, classes, &domain.Class{
		Name:        "Barbell Strength",
		Description: "Squat, bench, deadlift fundamentals.",
		TrainerID:   trainerB.ID,
	})

	base := time.Now().Truncate(time.Hour).Add(24 * time.Hour)
	for day := 0; day < 7; day++ {
		start := base.Add(time.Duration(day) * 24 * time.Hour)
		mustCreateSession(ctx, sessions, &domain.ClassSession{
			ClassID:     yoga.ID,
			StartTime:   start.Add(8 * time.Hour),
			EndTime:     start.Add(9 * time.Hour),
			Room:        "Studio 1",
			MaxCapacity: 20,
		})
		mustCreateSession(ctx, sessions, &domain.ClassSession{
			ClassID:     strength.ID,
			StartTime:   start.Add(18 * time.Hour),
			EndTime:     start.Add(19*time.Hour + 30*time.Minute),
			Room:        "Weight Room",
			MaxCapacity: 8,
		})
	}

	log.Printf("Done. Admin user id=%d", admin.ID)
}

func createUser(ctx context.Context, repo *repository.UserRepository, email, password, name string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
		Role:         role,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func mustUpsert(ctx context.Context, repo *repository.TrainerProfileRepository, p *domain.TrainerProfile) {
	if err := repo.Upsert(ctx, p); err != nil {
		log.Fatalf("upsert profile for user %d: %v", p.UserID, err)
	}
}

func mustCreateClass(ctx context.Context, repo *repository.ClassRepository, c *domain.Class) *domain.Class {
	if err := repo.Create(ctx, c); err != nil {
		log.Fatalf("create class %s: %v", c.Name, err)
	}
	return c
}

func mustCreateSession(ctx context.Context, repo *repository.SessionRepository, s *domain.ClassSession) {
	if err := repo.Create(ctx, s); err != nil {
		log.Fatalf("create session for class %d: %v", s.ClassID, err)
	}
}
