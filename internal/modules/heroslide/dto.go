package heroslide

type CreateSlideRequest struct {
	ImageURL     string  `json:"image_url" validate:"required"`
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	DisplayOrder int     `json:"display_order"`
	IsActive     bool    `json:"is_active"`
}

type UpdateSlideRequest struct {
	ImageURL     *string `json:"image_url,omitempty"`
	Title        *string `json:"title,omitempty"`
	Subtitle     *string `json:"subtitle,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
