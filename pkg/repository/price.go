package repository

import (
	"context"

	"go.uber.org/zap"

	"olradar.se/Olradar/pkg/model"
)

// AddPrice writes an immutable price observation. created_at is assigned by
// the store layer on insert; rows are never updated or deleted.
func (r *Repository) AddPrice(ctx context.Context, price model.Price) (*model.Price, error) {
	if result := r.DB.WithContext(ctx).Create(&price); result.Error != nil {
		return nil, result.Error
	}

	return &price, nil
}

const recentDealsQuery = `SELECT p.venue_id, b.name AS beer, b.style, p.price_sek AS price,` +
	` p.rating, p.verified, p.photo_url, p.created_at AS updated_at` +
	` FROM (SELECT prices.*, row_number() OVER (PARTITION BY venue_id ORDER BY created_at DESC) AS recency_rank FROM prices) p` +
	` INNER JOIN beers b ON b.id = p.beer_id` +
	` INNER JOIN venues v ON v.id = p.venue_id` +
	` WHERE p.recency_rank <= ?`

// GetRecentDeals fetches the most recent price observations joined with their
// beers, at most limit per venue, newest first within each venue. One round
// trip regardless of how many venues match.
func (r *Repository) GetRecentDeals(ctx context.Context, city string, limit int) ([]*model.Deal, error) {
	var (
		deals []*model.Deal
		query = recentDealsQuery
		args  = []interface{}{limit}
	)

	if city != "" {
		query += ` AND v.city = ?`

		args = append(args, city)
	}

	query += ` ORDER BY p.venue_id, p.created_at DESC`

	if result := r.DB.WithContext(ctx).Raw(query, args...).Scan(&deals); result.Error != nil {
		r.Logger.Error("error fetching recent deals", zap.String("city", city), zap.Error(result.Error))

		return nil, result.Error
	}

	return deals, nil
}
