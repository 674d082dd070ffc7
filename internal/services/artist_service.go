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

type ArtistService interface {
	CreateArtist(ctx context.Context, form *ArtistForm) (*models.Artist, error)
	GetArtist(ctx context.Context, id uint) (*models.ArtistDetail, error)
	ListArtists(ctx context.Context) ([]models.SearchItem, error)
	SearchArtists(ctx context.Context, term string) (*models.SearchResult, error)
}

type artistService struct {
	repo     repository.ArtistRepository
	showRepo repository.ShowRepository
	logger   *logrus.Logger
	now      func() time.Time
}

func NewArtistService(repo repository.ArtistRepository, showRepo repository.ShowRepository, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:     repo,
		showRepo: showRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *artistService) CreateArtist(ctx context.Context, form *ArtistForm) (*models.Artist, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	artist := form.ToArtist()
	if err := s.repo.Create(ctx, artist); err != nil {
		s.logger.WithError(err).WithField("name", artist.Name).Error("Failed to create artist")
		return nil, fmt.Errorf("%w: artist %q: %w", ErrWriteFailed, artist.Name, err)
	}

	s.logger.WithFields(logrus.Fields{
		"artist_id": artist.ID,
		"name":      artist.Name,
	}).Info("Artist listed")

	return artist, nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*models.ArtistDetail, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, fmt.Errorf("%w: artist %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load artist %d: %w", id, err)
	}

	now := s.now()
	counts, err := s.showRepo.CountByEntity(ctx, models.RoleArtist, id, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count shows for artist %d: %w", id, err)
	}

	shows, err := s.showRepo.FindByEntity(ctx, models.RoleArtist, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load shows for artist %d: %w", id, err)
	}

	detail := models.NewArtistDetail(artist)
	detail.UpcomingShowCount = int(counts.Upcoming)
	detail.PastShowCount = int(counts.Past)
	detail.UpcomingShows, detail.PastShows = splitShows(shows, now, venueSide)

	return detail, nil
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.SearchItem, error) {
	artists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	items := make([]models.SearchItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, models.SearchItem{ID: a.ID, Name: a.Name})
	}
	return items, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*models.SearchResult, error) {
	items, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return models.NewSearchResult(items), nil
}
