package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
	"venue-booking/internal/utils"

	"github.com/sirupsen/logrus"
)

type ShowService interface {
	CreateShow(ctx context.Context, form *ShowForm) (*models.Show, error)
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	ShowCounts(ctx context.Context, role models.ShowRole, id uint) (*models.ShowCounts, error)
}

type showService struct {
	repo   repository.ShowRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewShowService(repo repository.ShowRepository, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// CreateShow persists a show for an existing venue and artist. A missing
// reference is reported like any other store failure.
func (s *showService) CreateShow(ctx context.Context, form *ShowForm) (*models.Show, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	show, err := form.ToShow()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, show); err != nil {
		fields := logrus.Fields{
			"venue_id":  show.VenueID,
			"artist_id": show.ArtistID,
		}
		if errors.Is(err, repository.ErrVenueNotFound) || errors.Is(err, repository.ErrArtistNotFound) {
			s.logger.WithError(err).WithFields(fields).Warn("Show references a missing record")
		} else {
			s.logger.WithError(err).WithFields(fields).Error("Failed to create show")
		}
		return nil, fmt.Errorf("%w: show: %w", ErrWriteFailed, err)
	}

	s.logger.WithFields(logrus.Fields{
		"show_id":   show.ID,
		"venue_id":  show.VenueID,
		"artist_id": show.ArtistID,
		"date":      show.Date,
	}).Info("Show listed")

	return show, nil
}

func (s *showService) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	shows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	now := s.now()
	listings := make([]models.ShowListing, 0, len(shows))
	for _, show := range shows {
		listing := models.ShowListing{
			ID:        show.ID,
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.Date,
			PastShow:  utils.IsPast(show.Date, now),
		}
		if show.Venue != nil {
			listing.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			listing.ArtistName = show.Artist.Name
			listing.ArtistImageLink = show.Artist.ImageLink
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (s *showService) ShowCounts(ctx context.Context, role models.ShowRole, id uint) (*models.ShowCounts, error) {
	counts, err := s.repo.CountByEntity(ctx, role, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to count shows for %s %d: %w", role, id, err)
	}
	return counts, nil
}

// splitShows partitions shows into upcoming and past relative to now. Shows
// starting exactly at now land in neither list.
func splitShows(shows []models.Show, now time.Time, side func(models.Show) models.ShowSummary) (upcoming, past []models.ShowSummary) {
	upcoming = []models.ShowSummary{}
	past = []models.ShowSummary{}
	for _, show := range shows {
		switch {
		case utils.IsUpcoming(show.Date, now):
			upcoming = append(upcoming, side(show))
		case utils.IsPast(show.Date, now):
			past = append(past, side(show))
		}
	}
	return upcoming, past
}

func artistSide(show models.Show) models.ShowSummary {
	summary := models.ShowSummary{ShowID: show.ID, ID: show.ArtistID, StartTime: show.Date}
	if show.Artist != nil {
		summary.Name = show.Artist.Name
		summary.ImageLink = show.Artist.ImageLink
	}
	return summary
}

func venueSide(show models.Show) models.ShowSummary {
	summary := models.ShowSummary{ShowID: show.ID, ID: show.VenueID, StartTime: show.Date}
	if show.Venue != nil {
		summary.Name = show.Venue.Name
		summary.ImageLink = show.Venue.ImageLink
	}
	return summary
}
