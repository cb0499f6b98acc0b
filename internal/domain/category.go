package domain

// Category feeds the portfolio category selector. Portfolio.Category stores
// the name as free text, so deleting a category never touches portfolio rows.
type Category struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

func (Category) TableName() string { return "categories" }
