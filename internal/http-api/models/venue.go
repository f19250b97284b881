package models

type Venue struct {
	ID                 int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name               string  `json:"name" gorm:"not null"`
	Genres             *string `json:"genres,omitempty" gorm:"size:120"` // comma-joined tags
	Address            string  `json:"address" gorm:"size:120"`
	City               string  `json:"city" gorm:"size:120;index:idx_venue_area"`
	State              string  `json:"state" gorm:"size:120;index:idx_venue_area"`
	Phone              string  `json:"phone" gorm:"size:120"`
	Website            string  `json:"website" gorm:"size:200"`
	FacebookLink       string  `json:"facebook_link" gorm:"size:120"`
	SeekingTalent      bool    `json:"seeking_talent" gorm:"not null;default:false"`
	SeekingDescription string  `json:"seeking_description" gorm:"size:120"`
	ImageLink          string  `json:"image_link" gorm:"size:500"`

	// association
	Shows []Show `json:"shows,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:RESTRICT;"`
}

func (Venue) TableName() string {
	return "Venue"
}
