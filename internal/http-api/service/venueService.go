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

type VenueService interface {
	ListAreas(ctx context.Context) ([]listing.Area, error)
	Search(ctx context.Context, term string) (dto.SearchResponse, error)
	GetDetail(ctx context.Context, id int64) (*dto.VenueDetail, error)
	GetByID(ctx context.Context, id int64) (*models.Venue, error)
	Create(ctx context.Context, v *models.Venue) error
	Update(ctx context.Context, id int64, form dto.VenueForm) (*models.Venue, error)
	Delete(ctx context.Context, id int64) (*models.Venue, error)
}

type venueService struct {
	repo     repository.VenueRepository
	notifier notify.Publisher
	log      *slog.Logger
	now      func() time.Time
}

// NewVenueService wires the venue use cases. A nil now defaults to time.Now.
func NewVenueService(r repository.VenueRepository, n notify.Publisher, log *slog.Logger, now func() time.Time) VenueService {
	if now == nil {
		now = time.Now
	}
	return &venueService{repo: r, notifier: n, log: log, now: now}
}

func (s *venueService) ListAreas(ctx context.Context) ([]listing.Area, error) {
	venues, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return listing.GroupByArea(venues, s.now()), nil
}

// Search trims the term; an empty term lists every venue.
func (s *venueService) Search(ctx context.Context, term string) (dto.SearchResponse, error) {
	venues, err := s.repo.SearchByName(ctx, strings.TrimSpace(term))
	if err != nil {
		return dto.SearchResponse{}, err
	}
	return dto.NewSearchResponse(listing.SummarizeVenues(venues, s.now())), nil
}

func (s *venueService) GetDetail(ctx context.Context, id int64) (*dto.VenueDetail, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewVenueDetail(*v, s.now())
	return &d, nil
}

func (s *venueService) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *venueService) Create(ctx context.Context, v *models.Venue) error {
	if err := validateVenue(v); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return err
	}
	s.publish(ctx, notify.VenueCreated, v)
	return nil
}

// Update overwrites all mutable fields of an existing venue.
func (s *venueService) Update(ctx context.Context, id int64, form dto.VenueForm) (*models.Venue, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	form.ApplyTo(existing)
	if err := validateVenue(existing); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.publish(ctx, notify.VenueUpdated, existing)
	return existing, nil
}

// Delete removes a venue with no shows and returns what was removed.
func (s *venueService) Delete(ctx context.Context, id int64) (*models.Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.repo.CountShows(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("venue %d has %d shows: %w", id, n, ErrHasShows)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		// a show was booked between the check and the delete
		if errors.Is(err, ErrInvalidReference) {
			return nil, fmt.Errorf("venue %d: %w", id, ErrHasShows)
		}
		return nil, err
	}
	s.publish(ctx, notify.VenueDeleted, v)
	return v, nil
}

func (s *venueService) publish(ctx context.Context, eventType string, v *models.Venue) {
	e := notify.Event{Type: eventType, EntityID: v.ID, Name: v.Name, OccurredAt: s.now().UTC()}
	if err := s.notifier.Publish(ctx, e); err != nil {
		s.log.Warn("listing_event_failed", "type", eventType, "venue_id", v.ID, "error", err)
	}
}

func validateVenue(v *models.Venue) error {
	missing := missingFields(map[string]string{
		"name":    v.Name,
		"city":    v.City,
		"state":   v.State,
		"address": v.Address,
	})
	if v.Genres == nil || strings.TrimSpace(*v.Genres) == "" {
		missing = append(missing, "genres")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
