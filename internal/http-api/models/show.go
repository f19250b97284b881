package models

import "time"

// Show books one Artist at one Venue. Deleting either side is refused
// while shows still reference it.
type Show struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	StartTime time.Time `json:"start_time" gorm:"not null;index"`
	ArtistID  int64     `json:"artist_id" gorm:"not null;index"`
	VenueID   int64     `json:"venue_id" gorm:"not null;index"`

	// Associations
	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:RESTRICT;"`
	Venue  *Venue  `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:RESTRICT;"`
}

func (Show) TableName() string {
	return "Show"
}
