package repository

import (
	"context"

	"go.uber.org/zap"

	"olradar.se/Olradar/pkg/model"
)

// AddVenue inserts a venue row. A duplicate identifier surfaces as
// gorm.ErrDuplicatedKey rather than being swallowed: venue creation is not an
// upsert, unlike beers.
func (r *Repository) AddVenue(ctx context.Context, venue model.Venue) (*model.Venue, error) {
	if result := r.DB.WithContext(ctx).Create(&venue); result.Error != nil {
		return nil, result.Error
	}

	return &venue, nil
}

// GetVenues lists venues ordered by name, optionally filtered by city.
func (r *Repository) GetVenues(ctx context.Context, city string) ([]*model.Venue, error) {
	var venues []*model.Venue

	query := r.DB.WithContext(ctx).Order("name")
	if city != "" {
		query = query.Where("city = ?", city)
	}

	if result := query.Find(&venues); result.Error != nil {
		r.Logger.Error("error listing venues", zap.String("city", city), zap.Error(result.Error))

		return nil, result.Error
	}

	return venues, nil
}
