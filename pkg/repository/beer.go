package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"olradar.se/Olradar/pkg/model"
)

// UpsertBeer creates the beer or, when the identifier already exists,
// overwrites name and style in place. Last writer wins on style; a duplicate
// key can never surface as an error here.
func (r *Repository) UpsertBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "style", "updated_at"}),
	}).Create(&beer)

	if result.Error != nil {
		return nil, result.Error
	}

	return &beer, nil
}
