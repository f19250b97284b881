package dto

import (
	"strings"
	"time"

	"fyyur/internal/http-api/models"
	"fyyur/internal/listing"
)

// VenueForm is the create/edit payload for POST /venues/create and
// POST /venues/:id/edit, bound from form posts or JSON.
type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Address            string   `form:"address" json:"address" binding:"required"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingTalent      Checkbox `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// Converters
func (f VenueForm) ToModel() models.Venue {
	var v models.Venue
	f.ApplyTo(&v)
	return v
}

// ApplyTo overwrites every mutable field of v.
func (f VenueForm) ApplyTo(v *models.Venue) {
	genres := listing.JoinGenres(f.Genres)
	v.Name = strings.TrimSpace(f.Name)
	v.City = strings.TrimSpace(f.City)
	v.State = strings.TrimSpace(f.State)
	v.Address = strings.TrimSpace(f.Address)
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.Genres = &genres
	v.FacebookLink = f.FacebookLink
	v.Website = f.WebsiteLink
	v.SeekingTalent = bool(f.SeekingTalent)
	v.SeekingDescription = f.SeekingDescription
}

// VenueFormFromModel prefills the edit form.
func VenueFormFromModel(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             listing.SplitGenres(v.Genres),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.Website,
		SeekingTalent:      Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

// VenueShow is a show as seen from a venue page.
type VenueShow struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type VenueDetail struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// NewVenueDetail assembles the venue page. Shows must have Artist loaded.
func NewVenueDetail(v models.Venue, now time.Time) VenueDetail {
	past, upcoming := listing.PartitionShows(v.Shows, now)
	d := VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             listing.SplitGenres(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          venueShows(past),
		UpcomingShows:      venueShows(upcoming),
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func venueShows(shows []models.Show) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, s := range shows {
		vs := VenueShow{ArtistID: s.ArtistID, StartTime: s.StartTime}
		if s.Artist != nil {
			vs.ArtistName = s.Artist.Name
			vs.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, vs)
	}
	return out
}
