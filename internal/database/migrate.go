package database

import "interiorstudio/internal/domain"

// Migrate creates or updates the schema for every model. A no-op when the
// handle is unconfigured.
func (h *Handle) Migrate() error {
	if !h.Configured() {
		return nil
	}
	return h.db.AutoMigrate(
		&domain.User{},
		&domain.Portfolio{},
		&domain.Inquiry{},
		&domain.HeroSlide{},
		&domain.SiteSetting{},
		&domain.Category{},
		&domain.AboutContent{},
	)
}
