package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type VenueService interface {
	CreateVenue(ctx context.Context, form *VenueForm) (*models.Venue, error)
	GetVenue(ctx context.Context, id uint) (*models.VenueDetail, error)
	ListAreas(ctx context.Context) ([]models.Area, error)
	SearchVenues(ctx context.Context, term string) (*models.SearchResult, error)
}

type venueService struct {
	repo     repository.VenueRepository
	showRepo repository.ShowRepository
	logger   *logrus.Logger
	now      func() time.Time
}

func NewVenueService(repo repository.VenueRepository, showRepo repository.ShowRepository, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:     repo,
		showRepo: showRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, form *VenueForm) (*models.Venue, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	venue := form.ToVenue()
	if err := s.repo.Create(ctx, venue); err != nil {
		s.logger.WithError(err).WithField("name", venue.Name).Error("Failed to create venue")
		return nil, fmt.Errorf("%w: venue %q: %w", ErrWriteFailed, venue.Name, err)
	}

	s.logger.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"name":     venue.Name,
	}).Info("Venue listed")

	return venue, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.VenueDetail, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, fmt.Errorf("%w: venue %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load venue %d: %w", id, err)
	}

	now := s.now()
	counts, err := s.showRepo.CountByEntity(ctx, models.RoleVenue, id, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count shows for venue %d: %w", id, err)
	}

	shows, err := s.showRepo.FindByEntity(ctx, models.RoleVenue, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load shows for venue %d: %w", id, err)
	}

	detail := models.NewVenueDetail(venue)
	detail.UpcomingShowCount = int(counts.Upcoming)
	detail.PastShowCount = int(counts.Past)
	detail.UpcomingShows, detail.PastShows = splitShows(shows, now, artistSide)

	return detail, nil
}

func (s *venueService) ListAreas(ctx context.Context) ([]models.Area, error) {
	areas, err := s.repo.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}

	now := s.now()
	for i := range areas {
		venues, err := s.repo.FindByArea(ctx, areas[i].City, areas[i].State)
		if err != nil {
			return nil, fmt.Errorf("failed to list venues in %s, %s: %w", areas[i].City, areas[i].State, err)
		}

		for _, v := range venues {
			counts, err := s.showRepo.CountByEntity(ctx, models.RoleVenue, v.ID, now)
			if err != nil {
				return nil, fmt.Errorf("failed to count shows for venue %d: %w", v.ID, err)
			}
			areas[i].Venues = append(areas[i].Venues, models.AreaVenue{
				ID:               v.ID,
				Name:             v.Name,
				NumUpcomingShows: int(counts.Upcoming),
			})
		}
	}

	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*models.SearchResult, error) {
	items, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}
	return models.NewSearchResult(items), nil
}
