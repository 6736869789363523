package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"gymbook/internal/config"
	"gymbook/internal/database"
	"gymbook/internal/middleware"
	"gymbook/internal/modules/admin"
	"gymbook/internal/modules/auth"
	"gymbook/internal/modules/booking"
	"gymbook/internal/modules/catalog"
	"gymbook/internal/modules/training"
	jwtsvc "gymbook/internal/pkg/jwt"
	"gymbook/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewTrainerProfileRepository(db)
	classRepo := repository.NewClassRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	bookingRepo := repository.NewClassBookingRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL)

	authService := auth.NewService(userRepo, j, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(classRepo, sessionRepo, bookingRepo, userRepo, profileRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, sessionRepo)
	bookingHandler := booking.NewHandler(bookingService)

	trainingService := training.NewService(trainingRepo, userRepo, bookingRepo)
	trainingHandler := training.NewHandler(trainingService)

	adminService := admin.NewService(classRepo, sessionRepo, bookingRepo, userRepo, profileRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			trainingHandler.RegisterMemberRoutes(protected)
		}

		// trainers
		trainer := v1.Group("/")
		trainer.Use(middleware.JWTAuth(j), middleware.TrainerOnly())
		{
			trainingHandler.RegisterTrainerRoutes(trainer)
		}

		// admins
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	log.Printf("Listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
