package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fyyur/internal/http-api/models"
	"fyyur/internal/notify"

	"github.com/stretchr/testify/mock"
)

// --- HELPERS ---

func stringPtr(s string) *string { return &s }

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

var fixedNow = time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// --- MOCK REPOSITORIES ---

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetAll(ctx context.Context) ([]models.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) CountShows(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVenueRepository) Create(ctx context.Context, v *models.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepository) Update(ctx context.Context, v *models.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) GetAll(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *MockArtistRepository) CountShows(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtistRepository) Create(ctx context.Context, a *models.Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArtistRepository) Update(ctx context.Context, a *models.Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) GetByID(ctx context.Context, id int64) (*models.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Show), args.Error(1)
}

func (m *MockShowRepository) ListStartingAfter(ctx context.Context, after time.Time) ([]models.Show, error) {
	args := m.Called(ctx, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Show), args.Error(1)
}

func (m *MockShowRepository) Create(ctx context.Context, s *models.Show) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShowRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MOCK PUBLISHER ---

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, e notify.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
