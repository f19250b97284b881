package dto

import (
	"fmt"
	"strings"
	"time"

	"fyyur/internal/http-api/models"
)

// start_time layouts accepted from forms, tried in order
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ShowForm for POST /shows/create
type ShowForm struct {
	ArtistID  int64  `form:"artist_id" json:"artist_id" binding:"required"`
	VenueID   int64  `form:"venue_id" json:"venue_id" binding:"required"`
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
}

// ToModel parses the start time. Layouts without a zone are read as UTC.
func (f ShowForm) ToModel() (models.Show, error) {
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return models.Show{}, err
	}
	return models.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: start}, nil
}

func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start_time %q", s)
}

// ShowListItem is one row of GET /shows.
type ShowListItem struct {
	ID              int64     `json:"id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func ShowListItemFromModel(s models.Show) ShowListItem {
	item := ShowListItem{ID: s.ID, VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime}
	if s.Venue != nil {
		item.VenueName = s.Venue.Name
	}
	if s.Artist != nil {
		item.ArtistName = s.Artist.Name
		item.ArtistImageLink = s.Artist.ImageLink
	}
	return item
}
