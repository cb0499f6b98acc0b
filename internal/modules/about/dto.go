package about

type CreateContentRequest struct {
	Section      string `json:"section" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Content      string `json:"content"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateContentRequest struct {
	Section      *string `json:"section,omitempty"`
	Title        *string `json:"title,omitempty"`
	Content      *string `json:"content,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}
