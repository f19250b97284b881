package dto

import (
	"strings"
	"time"

	"fyyur/internal/http-api/models"
	"fyyur/internal/listing"
)

// ArtistForm for POST /artists/create and POST /artists/:id/edit
type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingVenue       Checkbox `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) ToModel() models.Artist {
	var a models.Artist
	f.ApplyTo(&a)
	return a
}

// ApplyTo overwrites every mutable field of a.
func (f ArtistForm) ApplyTo(a *models.Artist) {
	genres := listing.JoinGenres(f.Genres)
	a.Name = strings.TrimSpace(f.Name)
	a.City = strings.TrimSpace(f.City)
	a.State = strings.TrimSpace(f.State)
	a.Phone = f.Phone
	a.ImageLink = f.ImageLink
	a.Genres = &genres
	a.FacebookLink = f.FacebookLink
	a.Website = f.WebsiteLink
	a.SeekingVenue = bool(f.SeekingVenue)
	a.SeekingDescription = f.SeekingDescription
}

func ArtistFormFromModel(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             listing.SplitGenres(a.Genres),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.Website,
		SeekingVenue:       Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

// ArtistListItem is one row of GET /artists.
type ArtistListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ArtistListItemFromModel(a models.Artist) ArtistListItem {
	return ArtistListItem{ID: a.ID, Name: a.Name}
}

// ArtistShow is a show as seen from an artist page.
type ArtistShow struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type ArtistDetail struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// NewArtistDetail assembles the artist page. Shows must have Venue loaded.
func NewArtistDetail(a models.Artist, now time.Time) ArtistDetail {
	past, upcoming := listing.PartitionShows(a.Shows, now)
	d := ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             listing.SplitGenres(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          artistShows(past),
		UpcomingShows:      artistShows(upcoming),
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func artistShows(shows []models.Show) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, s := range shows {
		as := ArtistShow{VenueID: s.VenueID, StartTime: s.StartTime}
		if s.Venue != nil {
			as.VenueName = s.Venue.Name
			as.VenueImageLink = s.Venue.ImageLink
		}
		out = append(out, as)
	}
	return out
}
