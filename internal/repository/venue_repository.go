package repository

import (
	"context"
	"errors"

	"venue-booking/internal/database"
	"venue-booking/internal/models"

	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.SearchItem, error)

	// Area listing
	ListAreas(ctx context.Context) ([]models.Area, error)
	FindByArea(ctx context.Context, city, state string) ([]models.Venue, error)
}

type venueRepository struct {
	baseRepository
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{baseRepository: newBaseRepository(db)}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Shows").Create(venue).Error
	})
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.SearchItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var items []models.SearchItem
	err := r.db.WithContext(ctx).Model(&models.Venue{}).
		Select("id, name").
		Where("name ILIKE ?", containsPattern(term)).
		Order("id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *venueRepository) ListAreas(ctx context.Context) ([]models.Area, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type areaRow struct {
		City  string
		State string
	}

	var rows []areaRow
	err := r.db.WithContext(ctx).Model(&models.Venue{}).
		Distinct("city", "state").
		Order("state ASC, city ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	areas := make([]models.Area, 0, len(rows))
	for _, row := range rows {
		areas = append(areas, models.Area{
			City:   row.City,
			State:  row.State,
			Venues: []models.AreaVenue{},
		})
	}
	return areas, nil
}

func (r *venueRepository) FindByArea(ctx context.Context, city, state string) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Where("city = ? AND state = ?", city, state).
		Order("id ASC").
		Find(&venues).Error
	return venues, err
}
