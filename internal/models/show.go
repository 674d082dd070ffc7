package models

import (
	"fmt"
	"time"
)

// Show links one venue and one artist at a point in time. Date holds the
// normalized UTC text form, so stored values sort chronologically.
type Show struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id" example:"1"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id" example:"1"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id" example:"4"`
	Date      string    `gorm:"column:date;size:120;not null;index" json:"date" example:"2035-04-01T20:00:00Z"`
	Venue     *Venue    `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Artist    *Artist   `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Show) TableName() string {
	return "shows"
}

// ShowRole selects which side of a show an entity id refers to.
type ShowRole string

const (
	RoleVenue  ShowRole = "venue"
	RoleArtist ShowRole = "artist"
)

// Column returns the shows column holding ids for the role.
func (r ShowRole) Column() (string, error) {
	switch r {
	case RoleVenue:
		return "venue_id", nil
	case RoleArtist:
		return "artist_id", nil
	default:
		return "", fmt.Errorf("unknown show role %q", string(r))
	}
}

// ShowListing is one row of the shows page.
type ShowListing struct {
	ID              uint   `json:"id" example:"1"`
	VenueID         uint   `json:"venue_id" example:"1"`
	VenueName       string `json:"venue_name" example:"The Musical Hop"`
	ArtistID        uint   `json:"artist_id" example:"4"`
	ArtistName      string `json:"artist_name" example:"Guns N Petals"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time" example:"2035-04-01T20:00:00Z"`
	PastShow        bool   `json:"past_show" example:"false"`
}

// ShowSummary is a show as seen from a venue or artist page. The counterpart
// fields describe the other side of the show.
type ShowSummary struct {
	ShowID    uint   `json:"show_id" example:"1"`
	ID        uint   `json:"id" example:"4"`
	Name      string `json:"name" example:"Guns N Petals"`
	ImageLink string `json:"image_link"`
	StartTime string `json:"start_time" example:"2035-04-01T20:00:00Z"`
}

type ShowCounts struct {
	Upcoming int64 `json:"upcoming"`
	Past     int64 `json:"past"`
}
