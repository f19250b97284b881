package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"fyyur/internal/http-api/dto"
	"fyyur/internal/http-api/models"
	"fyyur/internal/listing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// --- HELPERS ---

func stringPtr(s string) *string { return &s }

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postEmptyJSON(r http.Handler, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

// --- MOCK SERVICES ---

type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) ListAreas(ctx context.Context) ([]listing.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.Area), args.Error(1)
}

func (m *MockVenueService) Search(ctx context.Context, term string) (dto.SearchResponse, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(dto.SearchResponse), args.Error(1)
}

func (m *MockVenueService) GetDetail(ctx context.Context, id int64) (*dto.VenueDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VenueDetail), args.Error(1)
}

func (m *MockVenueService) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueService) Create(ctx context.Context, v *models.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueService) Update(ctx context.Context, id int64, form dto.VenueForm) (*models.Venue, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueService) Delete(ctx context.Context, id int64) (*models.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) List(ctx context.Context) ([]dto.ArtistListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ArtistListItem), args.Error(1)
}

func (m *MockArtistService) Search(ctx context.Context, term string) (dto.SearchResponse, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(dto.SearchResponse), args.Error(1)
}

func (m *MockArtistService) GetDetail(ctx context.Context, id int64) (*dto.ArtistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ArtistDetail), args.Error(1)
}

func (m *MockArtistService) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistService) Create(ctx context.Context, a *models.Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArtistService) Update(ctx context.Context, id int64, form dto.ArtistForm) (*models.Artist, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistService) Delete(ctx context.Context, id int64) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) ListUpcoming(ctx context.Context) ([]dto.ShowListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ShowListItem), args.Error(1)
}

func (m *MockShowService) Create(ctx context.Context, sh *models.Show) error {
	args := m.Called(ctx, sh)
	return args.Error(0)
}

func (m *MockShowService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
