package portfolio

type CreatePortfolioRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images"`
	IsPublished bool     `json:"is_published"`
}

// UpdatePortfolioRequest patches named fields only; nil pointers leave the
// stored value untouched.
type UpdatePortfolioRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	IsPublished *bool     `json:"is_published,omitempty"`
}
