package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fyyur/internal/http-api/dto"
	"fyyur/internal/http-api/models"
	"fyyur/internal/http-api/repository"
	"fyyur/internal/listing"
	"fyyur/internal/notify"
)

type ArtistService interface {
	List(ctx context.Context) ([]dto.ArtistListItem, error)
	Search(ctx context.Context, term string) (dto.SearchResponse, error)
	GetDetail(ctx context.Context, id int64) (*dto.ArtistDetail, error)
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
	Create(ctx context.Context, a *models.Artist) error
	Update(ctx context.Context, id int64, form dto.ArtistForm) (*models.Artist, error)
	Delete(ctx context.Context, id int64) (*models.Artist, error)
}

type artistService struct {
	repo     repository.ArtistRepository
	notifier notify.Publisher
	log      *slog.Logger
	now      func() time.Time
}

func NewArtistService(r repository.ArtistRepository, n notify.Publisher, log *slog.Logger, now func() time.Time) ArtistService {
	if now == nil {
		now = time.Now
	}
	return &artistService{repo: r, notifier: n, log: log, now: now}
}

func (s *artistService) List(ctx context.Context) ([]dto.ArtistListItem, error) {
	artists, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ArtistListItem, 0, len(artists))
	for _, a := range artists {
		resp = append(resp, dto.ArtistListItemFromModel(a))
	}
	return resp, nil
}

func (s *artistService) Search(ctx context.Context, term string) (dto.SearchResponse, error) {
	artists, err := s.repo.SearchByName(ctx, strings.TrimSpace(term))
	if err != nil {
		return dto.SearchResponse{}, err
	}
	return dto.NewSearchResponse(listing.SummarizeArtists(artists, s.now())), nil
}

func (s *artistService) GetDetail(ctx context.Context, id int64) (*dto.ArtistDetail, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewArtistDetail(*a, s.now())
	return &d, nil
}

func (s *artistService) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *artistService) Create(ctx context.Context, a *models.Artist) error {
	if err := validateArtist(a); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	s.publish(ctx, notify.ArtistCreated, a)
	return nil
}

func (s *artistService) Update(ctx context.Context, id int64, form dto.ArtistForm) (*models.Artist, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	form.ApplyTo(existing)
	if err := validateArtist(existing); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.publish(ctx, notify.ArtistUpdated, existing)
	return existing, nil
}

func (s *artistService) Delete(ctx context.Context, id int64) (*models.Artist, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.repo.CountShows(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("artist %d has %d shows: %w", id, n, ErrHasShows)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return nil, fmt.Errorf("artist %d: %w", id, ErrHasShows)
		}
		return nil, err
	}
	s.publish(ctx, notify.ArtistDeleted, a)
	return a, nil
}

func (s *artistService) publish(ctx context.Context, eventType string, a *models.Artist) {
	e := notify.Event{Type: eventType, EntityID: a.ID, Name: a.Name, OccurredAt: s.now().UTC()}
	if err := s.notifier.Publish(ctx, e); err != nil {
		s.log.Warn("listing_event_failed", "type", eventType, "artist_id", a.ID, "error", err)
	}
}

func validateArtist(a *models.Artist) error {
	missing := missingFields(map[string]string{
		"name":  a.Name,
		"city":  a.City,
		"state": a.State,
	})
	if a.Genres == nil || strings.TrimSpace(*a.Genres) == "" {
		missing = append(missing, "genres")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
