package main

import (
	"log"
	"os"
	"time"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func strPtr(s string) *string { return &s }

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "interiorstudio.db"
	}

	h, err := database.Open(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if !h.Configured() {
		log.Fatal("seed requires a configured database")
	}

	log.Println("Running AutoMigrate...")
	if err := h.Migrate(); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	db := h.DB()

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM portfolios")
	db.Exec("DELETE FROM hero_slides")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM about_content")
	db.Exec("DELETE FROM inquiries")
	db.Exec("DELETE FROM site_settings")
	db.Exec("DELETE FROM users")

	// ================== ADMIN ==================
	log.Println("Creating admin user...")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@interiorstudio.kr"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        adminEmail,
		PasswordHash: string(adminHash),
		Name:         "관리자",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Printf("Admin created: %s / %s", adminEmail, adminPassword)

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")

	categories := []domain.Category{
		{Name: "주거공간", DisplayOrder: 1},
		{Name: "상업공간", DisplayOrder: 2},
		{Name: "사무공간", DisplayOrder: 3},
	}
	for i := range categories {
		db.Create(&categories[i])
	}

	// ================== HERO SLIDES ==================
	log.Println("Creating hero slides...")

	slides := []domain.HeroSlide{
		{
			ImageURL:     "https://images.unsplash.com/photo-1618221195710-dd6b41faaea6",
			Title:        strPtr("공간에 가치를 더하다"),
			Subtitle:     strPtr("주거와 상업 공간을 위한 프리미엄 인테리어 디자인"),
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			ImageURL:     "https://images.unsplash.com/photo-1600210492486-724fe5c67fb0",
			Title:        strPtr("당신만의 공간을 디자인합니다"),
			Subtitle:     strPtr("상담부터 시공까지 한 번에"),
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			ImageURL:     "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace",
			DisplayOrder: 3,
			IsActive:     false,
		},
	}
	for i := range slides {
		db.Create(&slides[i])
	}

	// ================== PORTFOLIOS ==================
	log.Println("Creating portfolios...")

	portfolios := []domain.Portfolio{
		{
			Title:       "한남동 아파트 리모델링",
			Description: "34평 아파트 전체 리모델링. 밝은 우드 톤과 간접 조명으로 따뜻한 분위기를 연출했습니다.",
			Category:    "주거공간",
			Images: []string{
				"https://images.unsplash.com/photo-1583847268964-b28dc8f51f92",
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7",
			},
			IsPublished: true,
		},
		{
			Title:       "성수동 카페 인테리어",
			Description: "노출 콘크리트와 원목 가구를 조합한 인더스트리얼 무드의 카페 공간입니다.",
			Category:    "상업공간",
			Images: []string{
				"https://images.unsplash.com/photo-1554118811-1e0d58224f24",
			},
			IsPublished: true,
		},
		{
			Title:       "판교 오피스 (진행중)",
			Description: "스타트업을 위한 협업 중심 사무공간. 촬영본 정리 후 공개 예정.",
			Category:    "사무공간",
			Images:      []string{},
			IsPublished: false,
		},
	}
	for i := range portfolios {
		db.Create(&portfolios[i])
	}

	// ================== ABOUT ==================
	log.Println("Creating about content...")

	about := []domain.AboutContent{
		{
			Section:      "intro",
			Title:        "우리는 공간을 디자인합니다",
			Content:      "10년 이상의 경험을 가진 디자이너들이 고객의 라이프스타일에 맞는 공간을 제안합니다.",
			DisplayOrder: 1,
			UpdatedAt:    time.Now(),
		},
		{
			Section:      "process",
			Title:        "상담",
			Content:      "공간의 용도와 예산, 취향을 파악하는 첫 단계입니다.",
			DisplayOrder: 1,
			UpdatedAt:    time.Now(),
		},
		{
			Section:      "process",
			Title:        "디자인",
			Content:      "3D 도면과 자재 샘플로 완성될 공간을 미리 확인합니다.",
			DisplayOrder: 2,
			UpdatedAt:    time.Now(),
		},
		{
			Section:      "process",
			Title:        "시공",
			Content:      "전담 감리가 일정과 품질을 관리합니다.",
			DisplayOrder: 3,
			UpdatedAt:    time.Now(),
		},
	}
	for i := range about {
		db.Create(&about[i])
	}

	// ================== SETTINGS ==================
	log.Println("Creating site settings...")

	settings := []domain.SiteSetting{
		{Key: domain.SettingLogoURL, Value: "/static/logo.svg", UpdatedAt: time.Now()},
		{Key: domain.SettingFooterText, Value: "© 2026 Interior Studio. All rights reserved.", UpdatedAt: time.Now()},
	}
	for i := range settings {
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&settings[i])
	}

	log.Println("Seed complete.")
}
