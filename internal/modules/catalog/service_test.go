package catalog

import (
	"context"
	"testing"
	"time"

	"gymbook/internal/domain"
	"gymbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockClassReader struct {
	mock.Mock
}

func (m *MockClassReader) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *MockClassReader) GetAllWithTrainer(ctx context.Context) ([]repository.ClassWithTrainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ClassWithTrainer), args.Error(1)
}

type MockSessionReader struct {
	mock.Mock
}

func (m *MockSessionReader) GetByClassIDWithCounts(ctx context.Context, classID int64) ([]repository.SessionWithCount, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SessionWithCount), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetUserIDsBySession(ctx context.Context, sessionID int64) ([]int64, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) GetTrainers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockTrainerProfileReader struct {
	mock.Mock
}

func (m *MockTrainerProfileReader) GetByUserID(ctx context.Context, userID int64) (*domain.TrainerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainerProfile), args.Error(1)
}

func newTestService() (*Service, *MockClassReader, *MockSessionReader, *MockBookingReader, *MockUserReader, *MockTrainerProfileReader) {
	classes := new(MockClassReader)
	sessions := new(MockSessionReader)
	bookings := new(MockBookingReader)
	users := new(MockUserReader)
	profiles := new(MockTrainerProfileReader)
	return NewService(classes, sessions, bookings, users, profiles), classes, sessions, bookings, users, profiles
}

// Tests

func TestGetClass_WithSessions(t *testing.T) {
	service, classes, sessions, _, _, _ := newTestService()

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	classes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Class{
		ID: 7, Name: "Yoga", TrainerID: 3,
	}, nil)
	sessions.On("GetByClassIDWithCounts", mock.Anything, int64(7)).Return([]repository.SessionWithCount{
		{ID: 11, ClassID: 7, StartTime: start, EndTime: start.Add(time.Hour), MaxCapacity: 20, BookingCount: 5},
	}, nil)

	detail, err := service.GetClass(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "Yoga", detail.Name)
	assert.Len(t, detail.Sessions, 1)
	assert.Equal(t, 5, detail.Sessions[0].BookingCount)
}

func TestGetClass_NotFound(t *testing.T) {
	service, classes, _, _, _, _ := newTestService()

	classes.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetClass(context.Background(), 99)

	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestListSessions_IncludesBookedUsers(t *testing.T) {
	service, classes, sessions, bookings, _, _ := newTestService()

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	classes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Class{ID: 7}, nil)
	sessions.On("GetByClassIDWithCounts", mock.Anything, int64(7)).Return([]repository.SessionWithCount{
		{ID: 11, ClassID: 7, StartTime: start, EndTime: start.Add(time.Hour), MaxCapacity: 20, BookingCount: 2},
	}, nil)
	bookings.On("GetUserIDsBySession", mock.Anything, int64(11)).Return([]int64{4, 9}, nil)

	views, err := service.ListSessions(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, []int64{4, 9}, views[0].BookedUserIDs)
}

func TestGetTrainer_NotATrainer(t *testing.T) {
	service, _, _, _, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID: 5, Role: domain.RoleMember,
	}, nil)

	_, err := service.GetTrainer(context.Background(), 5)

	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestGetTrainer_ProfileMissingIsOK(t *testing.T) {
	service, _, _, _, users, profiles := newTestService()

	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{
		ID: 3, FullName: "Alex Coach", Role: domain.RoleTrainer,
	}, nil)
	profiles.On("GetByUserID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	view, err := service.GetTrainer(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, "Alex Coach", view.FullName)
	assert.Nil(t, view.Profile)
}

func TestListTrainers_AttachesProfiles(t *testing.T) {
	service, _, _, _, users, profiles := newTestService()

	users.On("GetTrainers", mock.Anything).Return([]domain.User{
		{ID: 3, FullName: "Alex Coach", Role: domain.RoleTrainer},
	}, nil)
	profiles.On("GetByUserID", mock.Anything, int64(3)).Return(&domain.TrainerProfile{
		ID: 1, UserID: 3, Bio: "Strength coach",
	}, nil)

	views, err := service.ListTrainers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Strength coach", views[0].Profile.Bio)
}
