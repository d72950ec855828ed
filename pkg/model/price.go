package model

import "time"

// Price is a single immutable observation of a beer's price at a venue.
// PriceSEK mirrors PriceOriginal verbatim; the column is kept for a currency
// conversion that was never implemented upstream.
type Price struct {
	ID            string `gorm:"primaryKey"`
	VenueID       string `gorm:"index"`
	BeerID        string
	PriceOriginal float64
	Currency      string
	PriceSEK      float64
	Rating        float64
	Verified      bool
	PhotoURL      *string
	CreatedAt     time.Time

	Venue Venue `gorm:"foreignKey:VenueID"`
	Beer  Beer  `gorm:"foreignKey:BeerID"`
}

// Deal is one row of the pre-joined nearby query: a recent price observation
// together with the beer it was logged for.
type Deal struct {
	VenueID   string
	Beer      string
	Style     string
	Price     float64
	Rating    float64
	Verified  bool
	PhotoURL  *string
	UpdatedAt time.Time
}
