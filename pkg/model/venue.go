package model

import "time"

// Venue is a physical location where beer prices are observed. User-created
// venues get a slug-derived identifier; seeded venues carry externally
// assigned ones. Rows are never mutated or deleted once written.
type Venue struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	City      string `gorm:"index"`
	Address   *string
	Country   string
	Lat       *float64
	Lng       *float64
	OpenNow   bool
	CreatedAt time.Time
}
