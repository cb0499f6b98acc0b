package domain

import "time"

// Portfolio is a single project in the gallery. Images are public URLs in
// display order; the first one doubles as the list thumbnail.
type Portfolio struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Portfolio) TableName() string { return "portfolios" }

func (p *Portfolio) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
