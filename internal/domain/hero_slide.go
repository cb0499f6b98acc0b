package domain

import "time"

// HeroSlide is one image of the home-page carousel. Title and subtitle are
// optional overlays; ordering is the plain display_order integer with no
// rebalancing.
type HeroSlide struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	ImageURL     string    `json:"image_url"`
	Title        *string   `json:"title"`
	Subtitle     *string   `json:"subtitle"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (HeroSlide) TableName() string { return "hero_slides" }
