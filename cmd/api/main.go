package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"interiorstudio/internal/cache"
	"interiorstudio/internal/config"
	"interiorstudio/internal/database"
	"interiorstudio/internal/middleware"
	"interiorstudio/internal/modules/about"
	"interiorstudio/internal/modules/auth"
	"interiorstudio/internal/modules/category"
	"interiorstudio/internal/modules/dashboard"
	"interiorstudio/internal/modules/heroslide"
	"interiorstudio/internal/modules/inquiry"
	"interiorstudio/internal/modules/portfolio"
	"interiorstudio/internal/modules/settings"
	"interiorstudio/internal/modules/upload"
	jwtsvc "interiorstudio/internal/pkg/jwt"
	"interiorstudio/internal/pkg/mailer"
	"interiorstudio/internal/repository"
	"interiorstudio/internal/storage"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(); err != nil {
		log.Fatal(err)
	}

	portfolioRepo := repository.NewPortfolioRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	heroSlideRepo := repository.NewHeroSlideRepository(db)
	settingRepo := repository.NewSiteSettingRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	aboutRepo := repository.NewAboutContentRepository(db)
	userRepo := repository.NewUserRepository(db)

	store := cache.New(cfg.CacheTTL)
	store.SetTTL(cache.KeySettingsAll, cfg.SettingsCacheTTL)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL)
	mail := mailer.New(cfg.SMTP)

	var imageStore storage.ImageStore
	if s, err := storage.NewMinIOStore(cfg.MinIO); err != nil {
		log.Printf("minio unavailable, uploads disabled: %v", err)
	} else {
		imageStore = s
	}

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	portfolioHandler := portfolio.NewHandler(portfolio.NewService(portfolioRepo, store))
	heroSlideHandler := heroslide.NewHandler(heroslide.NewService(heroSlideRepo, store))
	categoryHandler := category.NewHandler(category.NewService(categoryRepo, store))
	aboutHandler := about.NewHandler(about.NewService(aboutRepo, store))
	settingsHandler := settings.NewHandler(settings.NewService(settingRepo, store))
	inquiryHandler := inquiry.NewHandler(inquiry.NewService(inquiryRepo, mail))
	uploadHandler := upload.NewHandler(upload.NewService(imageStore))
	dashboardHandler := dashboard.NewHandler(
		dashboard.NewService(portfolioRepo, inquiryRepo, heroSlideRepo, categoryRepo),
	)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		portfolioHandler.RegisterPublicRoutes(v1)
		heroSlideHandler.RegisterPublicRoutes(v1)
		categoryHandler.RegisterPublicRoutes(v1)
		aboutHandler.RegisterPublicRoutes(v1)
		settingsHandler.RegisterPublicRoutes(v1)
		inquiryHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				portfolioHandler.RegisterAdminRoutes(admin)
				heroSlideHandler.RegisterAdminRoutes(admin)
				categoryHandler.RegisterAdminRoutes(admin)
				aboutHandler.RegisterAdminRoutes(admin)
				settingsHandler.RegisterAdminRoutes(admin)
				inquiryHandler.RegisterAdminRoutes(admin)
				uploadHandler.RegisterAdminRoutes(admin)
				dashboardHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
