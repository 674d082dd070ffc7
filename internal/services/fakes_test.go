package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
	"venue-booking/internal/utils"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// memoryStore backs all three fake repositories so show writes can check
// references the way the database does.
type memoryStore struct {
	venues    []models.Venue
	artists   []models.Artist
	shows     []models.Show
	failWrite error
}

func (m *memoryStore) venueByID(id uint) *models.Venue {
	for i := range m.venues {
		if m.venues[i].ID == id {
			return &m.venues[i]
		}
	}
	return nil
}

func (m *memoryStore) artistByID(id uint) *models.Artist {
	for i := range m.artists {
		if m.artists[i].ID == id {
			return &m.artists[i]
		}
	}
	return nil
}

func containsFold(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

type fakeVenueRepo struct{ store *memoryStore }

func (r *fakeVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	if r.store.failWrite != nil {
		return r.store.failWrite
	}
	venue.ID = uint(len(r.store.venues) + 1)
	r.store.venues = append(r.store.venues, *venue)
	return nil
}

func (r *fakeVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	if v := r.store.venueByID(id); v != nil {
		copied := *v
		return &copied, nil
	}
	return nil, repository.ErrVenueNotFound
}

func (r *fakeVenueRepo) SearchByName(ctx context.Context, term string) ([]models.SearchItem, error) {
	var items []models.SearchItem
	for _, v := range r.store.venues {
		if containsFold(v.Name, term) {
			items = append(items, models.SearchItem{ID: v.ID, Name: v.Name})
		}
	}
	return items, nil
}

func (r *fakeVenueRepo) ListAreas(ctx context.Context) ([]models.Area, error) {
	seen := map[string]bool{}
	var areas []models.Area
	for _, v := range r.store.venues {
		key := v.City + "|" + v.State
		if seen[key] {
			continue
		}
		seen[key] = true
		areas = append(areas, models.Area{City: v.City, State: v.State, Venues: []models.AreaVenue{}})
	}
	return areas, nil
}

func (r *fakeVenueRepo) FindByArea(ctx context.Context, city, state string) ([]models.Venue, error) {
	var venues []models.Venue
	for _, v := range r.store.venues {
		if v.City == city && v.State == state {
			venues = append(venues, v)
		}
	}
	return venues, nil
}

type fakeArtistRepo struct{ store *memoryStore }

func (r *fakeArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	if r.store.failWrite != nil {
		return r.store.failWrite
	}
	artist.ID = uint(len(r.store.artists) + 1)
	r.store.artists = append(r.store.artists, *artist)
	return nil
}

func (r *fakeArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	if a := r.store.artistByID(id); a != nil {
		copied := *a
		return &copied, nil
	}
	return nil, repository.ErrArtistNotFound
}

func (r *fakeArtistRepo) FindAll(ctx context.Context) ([]models.Artist, error) {
	return append([]models.Artist(nil), r.store.artists...), nil
}

func (r *fakeArtistRepo) SearchByName(ctx context.Context, term string) ([]models.SearchItem, error) {
	var items []models.SearchItem
	for _, a := range r.store.artists {
		if containsFold(a.Name, term) {
			items = append(items, models.SearchItem{ID: a.ID, Name: a.Name})
		}
	}
	return items, nil
}

type fakeShowRepo struct{ store *memoryStore }

func (r *fakeShowRepo) Create(ctx context.Context, show *models.Show) error {
	if r.store.venueByID(show.VenueID) == nil {
		return repository.ErrVenueNotFound
	}
	if r.store.artistByID(show.ArtistID) == nil {
		return repository.ErrArtistNotFound
	}
	if r.store.failWrite != nil {
		return r.store.failWrite
	}
	show.ID = uint(len(r.store.shows) + 1)
	r.store.shows = append(r.store.shows, *show)
	return nil
}

func (r *fakeShowRepo) withRefs(show models.Show) models.Show {
	show.Venue = r.store.venueByID(show.VenueID)
	show.Artist = r.store.artistByID(show.ArtistID)
	return show
}

func (r *fakeShowRepo) FindAll(ctx context.Context) ([]models.Show, error) {
	shows := make([]models.Show, 0, len(r.store.shows))
	for _, s := range r.store.shows {
		shows = append(shows, r.withRefs(s))
	}
	return shows, nil
}

func (r *fakeShowRepo) matches(show models.Show, role models.ShowRole, id uint) (bool, error) {
	switch role {
	case models.RoleVenue:
		return show.VenueID == id, nil
	case models.RoleArtist:
		return show.ArtistID == id, nil
	}
	return false, errors.New("unknown role")
}

func (r *fakeShowRepo) FindByEntity(ctx context.Context, role models.ShowRole, id uint) ([]models.Show, error) {
	var shows []models.Show
	for _, s := range r.store.shows {
		ok, err := r.matches(s, role, id)
		if err != nil {
			return nil, err
		}
		if ok {
			shows = append(shows, r.withRefs(s))
		}
	}
	return shows, nil
}

func (r *fakeShowRepo) CountByEntity(ctx context.Context, role models.ShowRole, id uint, now time.Time) (*models.ShowCounts, error) {
	stamp := utils.FormatShowTime(now)
	var counts models.ShowCounts
	for _, s := range r.store.shows {
		ok, err := r.matches(s, role, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if s.Date > stamp {
			counts.Upcoming++
		}
		if s.Date < stamp {
			counts.Past++
		}
	}
	return &counts, nil
}

var fixedNow = time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixture struct {
	store   *memoryStore
	venues  *venueService
	artists *artistService
	shows   *showService
}

func newFixture() *fixture {
	store := &memoryStore{}
	log := quietLogger()
	showRepo := &fakeShowRepo{store: store}

	venues := NewVenueService(&fakeVenueRepo{store: store}, showRepo, log).(*venueService)
	venues.now = clock
	artists := NewArtistService(&fakeArtistRepo{store: store}, showRepo, log).(*artistService)
	artists.now = clock
	shows := NewShowService(showRepo, log).(*showService)
	shows.now = clock

	return &fixture{store: store, venues: venues, artists: artists, shows: shows}
}
