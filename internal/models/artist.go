package models

import "time"

type Artist struct {
	ID                 uint      `gorm:"primaryKey" json:"id" example:"4"`
	Name               string    `gorm:"not null;index" json:"name" example:"Guns N Petals"`
	City               string    `gorm:"size:120;not null" json:"city" example:"San francisco"`
	State              string    `gorm:"size:120;not null" json:"state" example:"CA"`
	Phone              string    `gorm:"size:120" json:"phone" example:"326-123-5000"`
	Genres             string    `gorm:"size:120" json:"-"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	SeekingVenue       bool      `json:"seeking_venue" example:"true"`
	SeekingDescription string    `gorm:"size:120" json:"seeking_description"`
	PastShowCount      int       `gorm:"not null" json:"past_show_count" example:"0"`
	UpcomingShowCount  int       `gorm:"not null" json:"upcoming_show_count" example:"0"`
	Shows              []Show    `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Artist) TableName() string {
	return "artists"
}

// GenreList decodes the stored genre tags.
func (a *Artist) GenreList() []string {
	return DecodeGenres(a.Genres)
}

// ArtistDetail is the artist page payload: stored fields plus the values
// derived at read time.
type ArtistDetail struct {
	ID                 uint          `json:"id" example:"4"`
	Name               string        `json:"name" example:"Guns N Petals"`
	City               string        `json:"city" example:"San francisco"`
	State              string        `json:"state" example:"CA"`
	Phone              string        `json:"phone"`
	Genres             []string      `json:"genres"`
	ImageLink          string        `json:"image_link"`
	FacebookLink       string        `json:"facebook_link"`
	WebsiteLink        string        `json:"website_link"`
	SeekingVenue       bool          `json:"seeking_venue"`
	SeekingDescription string        `json:"seeking_description"`
	UpcomingShowCount  int           `json:"upcoming_show_count" example:"1"`
	PastShowCount      int           `json:"past_show_count" example:"0"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShows          []ShowSummary `json:"past_shows"`
}

// NewArtistDetail copies the stored fields. Show lists start empty and are
// filled by the caller.
func NewArtistDetail(a *Artist) *ArtistDetail {
	return &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.GenreList(),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		UpcomingShowCount:  a.UpcomingShowCount,
		PastShowCount:      a.PastShowCount,
		UpcomingShows:      []ShowSummary{},
		PastShows:          []ShowSummary{},
	}
}
