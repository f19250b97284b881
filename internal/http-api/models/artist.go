package models

type Artist struct {
	ID                 int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string  `json:"name" gorm:"not null"`
	Genres             *string `json:"genres,omitempty" gorm:"size:120"` // comma-joined tags
	City               string  `json:"city" gorm:"size:120"`
	State              string  `json:"state" gorm:"size:120"`
	Phone              string  `json:"phone" gorm:"size:120"`
	Website            string  `json:"website" gorm:"size:200"`
	FacebookLink       string  `json:"facebook_link" gorm:"size:120"`
	SeekingVenue       bool    `json:"seeking_venue" gorm:"not null;default:false"`
	SeekingDescription string  `json:"seeking_description" gorm:"size:120"`
	ImageLink          string  `json:"image_link" gorm:"size:500"`

	// association
	Shows []Show `json:"shows,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:RESTRICT;"`
}

func (Artist) TableName() string {
	return "Artist"
}
