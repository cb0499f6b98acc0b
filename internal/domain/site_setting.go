package domain

import "time"

// SiteSetting is a generic key/value pair (logo URL, footer text and the
// like). Call sites supply their own fallback when a key is absent.
type SiteSetting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteSetting) TableName() string { return "site_settings" }

// Well-known setting keys used by the site shell.
const (
	SettingLogoURL    = "logo_url"
	SettingFooterText = "footer_text"
)
