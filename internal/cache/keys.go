package cache

// Key addresses one cached read: entity plus filter variant. Keeping the set
// enumerated makes invalidation exhaustive. Every mutation names the keys it
// touches, and there is nothing else to forget.
type Key string

const (
	KeyPortfoliosPublished Key = "portfolios:published"
	KeyHeroSlidesActive    Key = "hero_slides:active"
	KeyCategoriesAll       Key = "categories:all"
	KeyAboutAll            Key = "about:all"
	KeySettingsAll         Key = "settings:all"
)

// PortfolioKeys are the keys a portfolio mutation invalidates.
func PortfolioKeys() []Key { return []Key{KeyPortfoliosPublished} }

// HeroSlideKeys are the keys a hero-slide mutation invalidates.
func HeroSlideKeys() []Key { return []Key{KeyHeroSlidesActive} }

// CategoryKeys are the keys a category mutation invalidates.
func CategoryKeys() []Key { return []Key{KeyCategoriesAll} }

// AboutKeys are the keys an about-content mutation invalidates.
func AboutKeys() []Key { return []Key{KeyAboutAll} }

// SettingKeys are the keys a settings upsert invalidates.
func SettingKeys() []Key { return []Key{KeySettingsAll} }
