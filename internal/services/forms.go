package services

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"venue-booking/internal/models"
	"venue-booking/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// VenueForm is the submitted venue form. Genres arrive as a multi-select, so
// each tag is checked for the separator used by the stored encoding.
type VenueForm struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,max=120"`
	Address            string   `json:"address" form:"address" validate:"max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"max=120"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      string   `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,required,excludesall=0x2C"`
}

type ArtistForm struct {
	Name               string   `json:"name" form:"name" validate:"required,max=255"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"max=120"`
	Genres             []string `json:"genres" form:"genres" validate:"dive,required,excludesall=0x2C"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       string   `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=120"`
}

type ShowForm struct {
	VenueID   uint   `json:"venue_id" form:"venue_id" validate:"required"`
	ArtistID  uint   `json:"artist_id" form:"artist_id" validate:"required"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
}

// SearchForm carries the free-text term of a name search.
type SearchForm struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

// CapitalizeCity upper-cases the first letter and lower-cases the rest.
func CapitalizeCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return city
	}
	first, size := utf8.DecodeRuneInString(city)
	return string(unicode.ToUpper(first)) + strings.ToLower(city[size:])
}

// ParseSeekingFlag is true only for the literal "True" a form checkbox posts.
func ParseSeekingFlag(value string) bool {
	return value == "True"
}

func (f *VenueForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	f.Genres = trimTags(f.Genres)
}

func (f *ArtistForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	f.Genres = trimTags(f.Genres)
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.TrimSpace(tag))
	}
	return out
}

// Validate trims the form and checks it. The returned error is a
// *ValidationError.
func (f *VenueForm) Validate() error {
	f.normalize()
	return checkGenresLength(validateStruct(f), f.Genres)
}

func (f *ArtistForm) Validate() error {
	f.normalize()
	return checkGenresLength(validateStruct(f), f.Genres)
}

// checkGenresLength adds a genres error to err when the encoded tags do not
// fit the genres column.
func checkGenresLength(err error, genres []string) error {
	if len(models.EncodeGenres(genres)) <= models.GenresMaxLen {
		return err
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		verr = &ValidationError{Fields: map[string]string{}}
	}
	verr.Fields["genres"] = "max"
	return verr
}

func (f *ShowForm) Validate() error {
	f.StartTime = strings.TrimSpace(f.StartTime)
	if err := validateStruct(f); err != nil {
		return err
	}
	if _, err := utils.ParseShowTime(f.StartTime); err != nil {
		return &ValidationError{Fields: map[string]string{"start_time": "datetime"}}
	}
	return nil
}

func (f *VenueForm) ToVenue() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               CapitalizeCity(f.City),
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      ParseSeekingFlag(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
		Genres:             models.EncodeGenres(f.Genres),
		PastShowCount:      0,
		UpcomingShowCount:  0,
	}
}

func (f *ArtistForm) ToArtist() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               CapitalizeCity(f.City),
		State:              f.State,
		Phone:              f.Phone,
		Genres:             models.EncodeGenres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       ParseSeekingFlag(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
		PastShowCount:      0,
		UpcomingShowCount:  0,
	}
}

// ToShow expects a validated form.
func (f *ShowForm) ToShow() (*models.Show, error) {
	date, err := utils.NormalizeShowTime(f.StartTime)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"start_time": "datetime"}}
	}
	return &models.Show{
		VenueID:  f.VenueID,
		ArtistID: f.ArtistID,
		Date:     date,
	}, nil
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: map[string]string{"form": err.Error()}}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fieldPath(fe)] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

// fieldPath drops the struct name prefix, leaving e.g. "genres[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
