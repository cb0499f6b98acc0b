package domain

import "time"

// AboutContent is one block of the about page, grouped by section tag and
// ordered within it.
type AboutContent struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Section      string    `json:"section"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	DisplayOrder int       `json:"display_order"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AboutContent) TableName() string { return "about_content" }
