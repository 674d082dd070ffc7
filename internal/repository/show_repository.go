package repository

import (
	"context"
	"time"

	"venue-booking/internal/database"
	"venue-booking/internal/models"
	"venue-booking/internal/utils"

	"gorm.io/gorm"
)

type ShowRepository interface {
	// Create inserts the show only if both referenced records exist; nothing
	// is written otherwise.
	Create(ctx context.Context, show *models.Show) error
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByEntity(ctx context.Context, role models.ShowRole, id uint) ([]models.Show, error)

	// CountByEntity counts shows strictly after and strictly before now.
	CountByEntity(ctx context.Context, role models.ShowRole, id uint, now time.Time) (*models.ShowCounts, error)
}

type showRepository struct {
	baseRepository
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{baseRepository: newBaseRepository(db)}
}

func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venues int64
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&venues).Error; err != nil {
			return err
		}
		if venues == 0 {
			return ErrVenueNotFound
		}

		var artists int64
		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&artists).Error; err != nil {
			return err
		}
		if artists == 0 {
			return ErrArtistNotFound
		}

		return tx.Omit("Venue", "Artist").Create(show).Error
	})
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Order("id ASC").
		Find(&shows).Error
	return shows, err
}

func (r *showRepository) FindByEntity(ctx context.Context, role models.ShowRole, id uint) ([]models.Show, error) {
	column, err := role.Column()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err = r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Where(column+" = ?", id).
		Order(`"date" ASC, id ASC`).
		Find(&shows).Error
	return shows, err
}

func (r *showRepository) CountByEntity(ctx context.Context, role models.ShowRole, id uint, now time.Time) (*models.ShowCounts, error) {
	column, err := role.Column()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stamp := utils.FormatShowTime(now)
	db := r.db.WithContext(ctx)

	var counts models.ShowCounts
	if err := db.Model(&models.Show{}).
		Where(column+" = ?", id).
		Where(`"date" > ?`, stamp).
		Count(&counts.Upcoming).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Show{}).
		Where(column+" = ?", id).
		Where(`"date" < ?`, stamp).
		Count(&counts.Past).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}
