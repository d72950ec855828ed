package model

import "time"

// Beer is keyed by its slug-derived identifier. Re-upserting the same beer
// with a different style overwrites the style, last writer wins.
type Beer struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Style     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
