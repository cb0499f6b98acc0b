package domain

import "time"

// Inquiry is a contact-form submission. IsRead flips once, when an admin
// opens the detail view for the first time.
type Inquiry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Inquiry) TableName() string { return "inquiries" }
