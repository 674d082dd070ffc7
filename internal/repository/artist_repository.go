package repository

import (
	"context"
	"errors"

	"venue-booking/internal/database"
	"venue-booking/internal/models"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.SearchItem, error)
}

type artistRepository struct {
	baseRepository
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{baseRepository: newBaseRepository(db)}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Shows").Create(artist).Error
	})
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).Order("id ASC").Find(&artists).Error
	return artists, err
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.SearchItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var items []models.SearchItem
	err := r.db.WithContext(ctx).Model(&models.Artist{}).
		Select("id, name").
		Where("name ILIKE ?", containsPattern(term)).
		Order("id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
