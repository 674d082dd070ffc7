package models

import "time"

type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name               string    `gorm:"not null;index" json:"name" example:"The Musical Hop"`
	City               string    `gorm:"size:120;not null;index:idx_venues_area" json:"city" example:"San francisco"`
	State              string    `gorm:"size:120;not null;index:idx_venues_area" json:"state" example:"CA"`
	Address            string    `gorm:"size:120" json:"address" example:"1015 Folsom Street"`
	Phone              string    `gorm:"size:120" json:"phone" example:"123-123-1234"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	SeekingTalent      bool      `json:"seeking_talent" example:"true"`
	SeekingDescription string    `gorm:"size:120" json:"seeking_description"`
	Genres             string    `gorm:"size:120" json:"-"`
	PastShowCount      int       `gorm:"not null" json:"past_show_count" example:"0"`
	UpcomingShowCount  int       `gorm:"not null" json:"upcoming_show_count" example:"0"`
	Shows              []Show    `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

// GenreList decodes the stored genre tags.
func (v *Venue) GenreList() []string {
	return DecodeGenres(v.Genres)
}

// VenueDetail is the venue page payload: stored fields plus the values
// derived at read time.
type VenueDetail struct {
	ID                 uint          `json:"id" example:"1"`
	Name               string        `json:"name" example:"The Musical Hop"`
	City               string        `json:"city" example:"San francisco"`
	State              string        `json:"state" example:"CA"`
	Address            string        `json:"address"`
	Phone              string        `json:"phone"`
	ImageLink          string        `json:"image_link"`
	FacebookLink       string        `json:"facebook_link"`
	WebsiteLink        string        `json:"website_link"`
	SeekingTalent      bool          `json:"seeking_talent"`
	SeekingDescription string        `json:"seeking_description"`
	Genres             []string      `json:"genres"`
	UpcomingShowCount  int           `json:"upcoming_show_count" example:"2"`
	PastShowCount      int           `json:"past_show_count" example:"1"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShows          []ShowSummary `json:"past_shows"`
}

// NewVenueDetail copies the stored fields. Show lists start empty and are
// filled by the caller.
func NewVenueDetail(v *Venue) *VenueDetail {
	return &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		Genres:             v.GenreList(),
		UpcomingShowCount:  v.UpcomingShowCount,
		PastShowCount:      v.PastShowCount,
		UpcomingShows:      []ShowSummary{},
		PastShows:          []ShowSummary{},
	}
}

// Area groups the venues that share a city and state.
type Area struct {
	City   string      `json:"city" example:"San francisco"`
	State  string      `json:"state" example:"CA"`
	Venues []AreaVenue `json:"venues"`
}

type AreaVenue struct {
	ID               uint   `json:"id" example:"1"`
	Name             string `json:"name" example:"The Musical Hop"`
	NumUpcomingShows int    `json:"num_upcoming_shows" example:"0"`
}
