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
	"fyyur/internal/notify"
)

type ShowService interface {
	ListUpcoming(ctx context.Context) ([]dto.ShowListItem, error)
	Create(ctx context.Context, sh *models.Show) error
	Delete(ctx context.Context, id int64) error
}

type showService struct {
	shows    repository.ShowRepository
	venues   repository.VenueRepository
	artists  repository.ArtistRepository
	notifier notify.Publisher
	log      *slog.Logger
	now      func() time.Time
}

func NewShowService(
	shows repository.ShowRepository,
	venues repository.VenueRepository,
	artists repository.ArtistRepository,
	n notify.Publisher,
	log *slog.Logger,
	now func() time.Time,
) ShowService {
	if now == nil {
		now = time.Now
	}
	return &showService{shows: shows, venues: venues, artists: artists, notifier: n, log: log, now: now}
}

// ListUpcoming returns shows starting strictly after now, earliest first.
func (s *showService) ListUpcoming(ctx context.Context) ([]dto.ShowListItem, error) {
	list, err := s.shows.ListStartingAfter(ctx, s.now().UTC())
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ShowListItem, 0, len(list))
	for _, sh := range list {
		resp = append(resp, dto.ShowListItemFromModel(sh))
	}
	return resp, nil
}

// Create books a show after checking that both sides exist.
func (s *showService) Create(ctx context.Context, sh *models.Show) error {
	var missing []string
	if sh.ArtistID <= 0 {
		missing = append(missing, "artist_id")
	}
	if sh.VenueID <= 0 {
		missing = append(missing, "venue_id")
	}
	if sh.StartTime.IsZero() {
		missing = append(missing, "start_time")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}

	artist, err := s.artists.GetByID(ctx, sh.ArtistID)
	if err != nil {
		return referenceError("artist", sh.ArtistID, err)
	}
	venue, err := s.venues.GetByID(ctx, sh.VenueID)
	if err != nil {
		return referenceError("venue", sh.VenueID, err)
	}

	sh.StartTime = sh.StartTime.UTC()
	if err := s.shows.Create(ctx, sh); err != nil {
		return err
	}

	s.publish(ctx, notify.ShowCreated, sh.ID, showLabel(artist.Name, venue.Name))
	return nil
}

func (s *showService) Delete(ctx context.Context, id int64) error {
	sh, err := s.shows.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.shows.Delete(ctx, id); err != nil {
		return err
	}

	var artistName, venueName string
	if sh.Artist != nil {
		artistName = sh.Artist.Name
	}
	if sh.Venue != nil {
		venueName = sh.Venue.Name
	}
	s.publish(ctx, notify.ShowDeleted, id, showLabel(artistName, venueName))
	return nil
}

func (s *showService) publish(ctx context.Context, eventType string, id int64, name string) {
	e := notify.Event{Type: eventType, EntityID: id, Name: name, OccurredAt: s.now().UTC()}
	if err := s.notifier.Publish(ctx, e); err != nil {
		s.log.Warn("listing_event_failed", "type", eventType, "show_id", id, "error", err)
	}
}

// showLabel reads "Artist at Venue".
func showLabel(artist, venue string) string {
	return artist + " at " + venue
}

func referenceError(kind string, id int64, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s %d does not exist: %w", kind, id, ErrInvalidReference)
	}
	return err
}
