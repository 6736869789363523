package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymbook/internal/database"
	"gymbook/internal/domain"
	"gymbook/internal/middleware"
	"gymbook/internal/modules/admin"
	"gymbook/internal/modules/auth"
	"gymbook/internal/modules/booking"
	"gymbook/internal/modules/catalog"
	"gymbook/internal/modules/training"
	jwtsvc "gymbook/internal/pkg/jwt"
	"gymbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type testResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *testSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	// Every pooled connection gets its own in-memory database, so the
	// suite must stay on one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db), "Failed to migrate test database")

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewTrainerProfileRepository(db)
	classRepo := repository.NewClassRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	bookingRepo := repository.NewClassBookingRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authService := auth.NewService(userRepo, jwtService, 7*24*time.Hour)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(classRepo, sessionRepo, bookingRepo, userRepo, profileRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, sessionRepo)
	bookingHandler := booking.NewHandler(bookingService)

	trainingService := training.NewService(trainingRepo, userRepo, bookingRepo)
	trainingHandler := training.NewHandler(trainingService)

	adminService := admin.NewService(classRepo, sessionRepo, bookingRepo, userRepo, profileRepo)
	adminHandler := admin.NewHandler(adminService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	catalogHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)
		bookingHandler.RegisterRoutes(protected)
		trainingHandler.RegisterMemberRoutes(protected)
	}

	trainer := v1.Group("/")
	trainer.Use(middleware.JWTAuth(jwtService), middleware.TrainerOnly())
	{
		trainingHandler.RegisterTrainerRoutes(trainer)
	}

	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(jwtService), middleware.AdminOnly())
	{
		adminHandler.RegisterRoutes(adminGroup)
	}

	return &testSuite{router: r, db: db}
}

func (s *testSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *testResponse {
	t.Helper()
	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Body: %s", w.Body.String())
	return &resp
}

// createAccount inserts a user directly and returns a login token.
func (s *testSuite) createAccount(t *testing.T, email, name string, role domain.UserRole) (int64, string) {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := repository.NewUserRepository(s.db)
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
		Role:         role,
	}
	require.NoError(t, users.Create(ctx, u))

	w := s.request("POST", "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	resp := parseResponse(t, w)
	token, _ := resp.Data["access_token"].(string)
	require.NotEmpty(t, token)
	return u.ID, token
}

func TestFlow_RegistrationAndAuth(t *testing.T) {
	suite := setupSuite(t)

	w := suite.request("POST", "/api/v1/auth/register", map[string]string{
		"full_name": "John Doe",
		"email":     "john@test.com",
		"password":  "password123",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate registration is rejected.
	w = suite.request("POST", "/api/v1/auth/register", map[string]string{
		"full_name": "John Again",
		"email":     "john@test.com",
		"password":  "password123",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = suite.request("POST", "/api/v1/auth/login", map[string]string{
		"email":    "john@test.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	token := resp.Data["access_token"].(string)
	refresh := resp.Data["refresh_token"].(string)
	userData := resp.Data["user"].(map[string]interface{})
	userID := int64(userData["id"].(float64))
	assert.Equal(t, "member", userData["role"])

	w = suite.request("GET", "/api/v1/users/me", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = suite.request("POST", "/api/v1/auth/refresh", map[string]interface{}{
		"user_id":       userID,
		"refresh_token": refresh,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The old refresh token was rotated out.
	w = suite.request("POST", "/api/v1/auth/refresh", map[string]interface{}{
		"user_id":       userID,
		"refresh_token": refresh,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = suite.request("POST", "/api/v1/auth/login", map[string]string{
		"email":    "john@test.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFlow_ClassBooking(t *testing.T) {
	suite := setupSuite(t)

	_, adminToken := suite.createAccount(t, "admin@test.com", "Admin", domain.RoleAdmin)
	trainerID, _ := suite.createAccount(t, "coach@test.com", "Coach", domain.RoleTrainer)
	_, memberToken := suite.createAccount(t, "maria@test.com", "Maria", domain.RoleMember)
	_, otherToken := suite.createAccount(t, "ivan@test.com", "Ivan", domain.RoleMember)

	// Admin sets up a class with a single-seat session.
	w := suite.request("POST", "/api/v1/admin/classes", map[string]interface{}{
		"name":       "Yoga",
		"trainer_id": trainerID,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	classID := int64(parseResponse(t, w).Data["class"].(map[string]interface{})["id"].(float64))

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	w = suite.request("POST", fmt.Sprintf("/api/v1/admin/classes/%d/sessions", classID), map[string]interface{}{
		"start_time":   start,
		"end_time":     start.Add(time.Hour),
		"room":         "Studio 1",
		"max_capacity": 1,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sessionID := int64(parseResponse(t, w).Data["session"].(map[string]interface{})["id"].(float64))

	// Member takes the only seat.
	w = suite.request("POST", fmt.Sprintf("/api/v1/sessions/%d/book", sessionID), nil, memberToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := int64(parseResponse(t, w).Data["booking"].(map[string]interface{})["id"].(float64))

	// Second member is refused: session is full.
	w = suite.request("POST", fmt.Sprintf("/api/v1/sessions/%d/book", sessionID), nil, otherToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SESSION_FULL", parseResponse(t, w).Error.Code)

	// An overlapping session conflicts with the member's existing booking.
	w = suite.request("POST", fmt.Sprintf("/api/v1/admin/classes/%d/sessions", classID), map[string]interface{}{
		"start_time":   start.Add(30 * time.Minute),
		"end_time":     start.Add(90 * time.Minute),
		"room":         "Studio 2",
		"max_capacity": 10,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	overlappingID := int64(parseResponse(t, w).Data["session"].(map[string]interface{})["id"].(float64))

	w = suite.request("POST", fmt.Sprintf("/api/v1/sessions/%d/book", overlappingID), nil, memberToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SCHEDULE_CONFLICT", parseResponse(t, w).Error.Code)

	// A back-to-back session (starts exactly when the booked one ends) is fine.
	w = suite.request("POST", fmt.Sprintf("/api/v1/admin/classes/%d/sessions", classID), map[string]interface{}{
		"start_time":   start.Add(time.Hour),
		"end_time":     start.Add(2 * time.Hour),
		"room":         "Studio 1",
		"max_capacity": 10,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	adjacentID := int64(parseResponse(t, w).Data["session"].(map[string]interface{})["id"].(float64))

	w = suite.request("POST", fmt.Sprintf("/api/v1/sessions/%d/book", adjacentID), nil, memberToken)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Session with bookings cannot be deleted.
	w = suite.request("DELETE", fmt.Sprintf("/api/v1/admin/sessions/%d", sessionID), nil, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Cancel frees the seat; the other member can now book it.
	w = suite.request("POST", fmt.Sprintf("/api/v1/bookings/%d/cancel", bookingID), nil, memberToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cancelling the same booking again reports not found.
	w = suite.request("POST", fmt.Sprintf("/api/v1/bookings/%d/cancel", bookingID), nil, memberToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = suite.request("POST", fmt.Sprintf("/api/v1/sessions/%d/book", sessionID), nil, otherToken)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Booking a session that does not exist.
	w = suite.request("POST", "/api/v1/sessions/99999/book", nil, memberToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Zero capacity is a valid session configuration; it simply admits
	// nobody.
	w = suite.request("POST", fmt.Sprintf("/api/v1/admin/classes/%d/sessions", classID), map[string]interface{}{
		"start_time":   start.Add(72 * time.Hour),
		"end_time":     start.Add(73 * time.Hour),
		"room":         "Studio 3",
		"max_capacity": 0,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	closedID := int64(parseResponse(t, w).Data["session"].(map[string]interface{})["id"].(float64))

	w = suite.request("POST", fmt.Sprintf("/api/v1/sessions/%d/book", closedID), nil, memberToken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SESSION_FULL", parseResponse(t, w).Error.Code)

	// Member's booking list reflects current state.
	w = suite.request("GET", "/api/v1/member/bookings", nil, memberToken)
	require.Equal(t, http.StatusOK, w.Code)
	bookings := parseResponse(t, w).Data["bookings"].([]interface{})
	assert.Len(t, bookings, 1)
}

func TestFlow_PersonalTraining(t *testing.T) {
	suite := setupSuite(t)

	trainerID, trainerToken := suite.createAccount(t, "coach@test.com", "Coach", domain.RoleTrainer)
	memberID, memberToken := suite.createAccount(t, "maria@test.com", "Maria", domain.RoleMember)
	_, otherToken := suite.createAccount(t, "ivan@test.com", "Ivan", domain.RoleMember)

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	// Member requests a session; it starts Pending.
	w := suite.request("POST", fmt.Sprintf("/api/v1/trainers/%d/book", trainerID), map[string]interface{}{
		"start_time": start,
		"end_time":   start.Add(time.Hour),
	}, memberToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	sessionID := int64(resp.Data["session_id"].(float64))
	assert.Equal(t, "Pending", resp.Data["status"])

	// A Pending session does not block an overlapping request.
	w = suite.request("POST", fmt.Sprintf("/api/v1/trainers/%d/book", trainerID), map[string]interface{}{
		"start_time": start.Add(30 * time.Minute),
		"end_time":   start.Add(90 * time.Minute),
	}, otherToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	overlappingPendingID := int64(parseResponse(t, w).Data["session_id"].(float64))

	// Trainer approves the first request.
	w = suite.request("PATCH", fmt.Sprintf("/api/v1/training/%d/status", sessionID), map[string]string{
		"status": "Approved",
	}, trainerToken)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The overlapping Pending request can no longer be approved.
	w = suite.request("PATCH", fmt.Sprintf("/api/v1/training/%d/status", overlappingPendingID), map[string]string{
		"status": "Approved",
	}, trainerToken)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Now an overlapping request is refused.
	w = suite.request("POST", fmt.Sprintf("/api/v1/trainers/%d/book", trainerID), map[string]interface{}{
		"start_time": start.Add(30 * time.Minute),
		"end_time":   start.Add(90 * time.Minute),
	}, otherToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	// A back-to-back request does not conflict.
	w = suite.request("POST", fmt.Sprintf("/api/v1/trainers/%d/book", trainerID), map[string]interface{}{
		"start_time": start.Add(time.Hour),
		"end_time":   start.Add(2 * time.Hour),
	}, otherToken)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Inverted window is a validation error.
	w = suite.request("POST", fmt.Sprintf("/api/v1/trainers/%d/book", trainerID), map[string]interface{}{
		"start_time": start.Add(time.Hour),
		"end_time":   start,
	}, memberToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Booking a member as trainer is refused.
	w = suite.request("POST", fmt.Sprintf("/api/v1/trainers/%d/book", memberID), map[string]interface{}{
		"start_time": start,
		"end_time":   start.Add(time.Hour),
	}, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Member role cannot reach trainer endpoints.
	w = suite.request("GET", "/api/v1/trainer/sessions", nil, memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Trainer sees the sessions addressed to them.
	w = suite.request("GET", "/api/v1/trainer/sessions", nil, trainerToken)
	require.Equal(t, http.StatusOK, w.Code)
	sessions := parseResponse(t, w).Data["sessions"].([]interface{})
	assert.Len(t, sessions, 3)

	// Member cancels their own session.
	w = suite.request("DELETE", fmt.Sprintf("/api/v1/training/%d", sessionID), nil, memberToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cancelling someone else's session reports not found.
	w = suite.request("DELETE", fmt.Sprintf("/api/v1/training/%d", sessionID), nil, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlow_CatalogAndAdmin(t *testing.T) {
	suite := setupSuite(t)

	_, adminToken := suite.createAccount(t, "admin@test.com", "Admin", domain.RoleAdmin)
	_, memberToken := suite.createAccount(t, "maria@test.com", "Maria", domain.RoleMember)

	// Admin provisions a trainer account.
	w := suite.request("POST", "/api/v1/admin/trainers", map[string]string{
		"full_name": "Alex Coach",
		"email":     "alex@test.com",
		"password":  "password123",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	trainerID := int64(parseResponse(t, w).Data["trainer"].(map[string]interface{})["id"].(float64))

	// Member cannot reach admin endpoints.
	w = suite.request("POST", "/api/v1/admin/trainers", map[string]string{
		"full_name": "Nope",
		"email":     "nope@test.com",
		"password":  "password123",
	}, memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = suite.request("PUT", fmt.Sprintf("/api/v1/admin/trainers/%d/profile", trainerID), map[string]interface{}{
		"bio":              "Strength coach",
		"specializations":  "Powerlifting",
		"years_experience": 5,
	}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Trainer directory is public and includes the profile.
	w = suite.request("GET", "/api/v1/trainers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	trainers := parseResponse(t, w).Data["trainers"].([]interface{})
	require.Len(t, trainers, 1)

	w = suite.request("GET", fmt.Sprintf("/api/v1/trainers/%d", trainerID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	trainer := parseResponse(t, w).Data["trainer"].(map[string]interface{})
	profile := trainer["profile"].(map[string]interface{})
	assert.Equal(t, "Strength coach", profile["bio"])

	// Class catalog round trip.
	w = suite.request("POST", "/api/v1/admin/classes", map[string]interface{}{
		"name":        "Barbell Strength",
		"description": "Squat, bench, deadlift.",
		"trainer_id":  trainerID,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	classID := int64(parseResponse(t, w).Data["class"].(map[string]interface{})["id"].(float64))

	w = suite.request("GET", "/api/v1/classes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	classes := parseResponse(t, w).Data["classes"].([]interface{})
	require.Len(t, classes, 1)
	assert.Equal(t, "Alex Coach", classes[0].(map[string]interface{})["trainer_name"])

	w = suite.request("GET", fmt.Sprintf("/api/v1/classes/%d", classID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = suite.request("GET", "/api/v1/classes/99999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Promote and deactivate cycle.
	w = suite.request("POST", "/api/v1/admin/users/99999/promote", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = suite.request("POST", fmt.Sprintf("/api/v1/admin/trainers/%d/deactivate", trainerID), nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second deactivation: no longer a trainer.
	w = suite.request("POST", fmt.Sprintf("/api/v1/admin/trainers/%d/deactivate", trainerID), nil, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Deactivated trainer no longer appears in the directory.
	w = suite.request("GET", "/api/v1/trainers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseResponse(t, w).Data["trainers"].([]interface{}), 0)
}
