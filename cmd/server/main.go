package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"github.com/robokitlab/catalog-api/internal/bootstrap"
	"github.com/robokitlab/catalog-api/internal/config"
	"github.com/robokitlab/catalog-api/internal/handler"
	"github.com/robokitlab/catalog-api/internal/middleware"
	"github.com/robokitlab/catalog-api/internal/repository"
	"github.com/robokitlab/catalog-api/internal/service"
	"github.com/robokitlab/catalog-api/pkg/database"
	"github.com/robokitlab/catalog-api/pkg/servicekey"
	"github.com/robokitlab/catalog-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	servicekey.MustVerify(cfg.ServiceRoleKey)

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
	} else {
		log.Println("REDIS_URL not set, rate limiting disabled")
	}

	var searchSvc service.SearchService
	if _, ok := os.LookupEnv("MEILISEARCH_HOST"); ok || cfg.MeiliMasterKey != "" {
		meiliHost := cfg.MeiliSearchHost
		if !strings.HasPrefix(meiliHost, "http") {
			meiliHost = "http://" + meiliHost + ":7700"
		}
		meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		searchSvc = service.NewSearchService(meiliClient)
	} else {
		log.Println("MEILISEARCH_HOST not set, search indexing disabled")
	}

	fileStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	guideRepo := repository.NewGuideRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo))
	adminHandler := handler.NewAdminHandler(service.NewAdminService(userRepo))
	productHandler := handler.NewProductHandler(service.NewProductService(productRepo, searchSvc))
	guideHandler := handler.NewGuideHandler(service.NewGuideService(guideRepo, searchSvc))
	lessonHandler := handler.NewLessonHandler(service.NewLessonService(lessonRepo, searchSvc))
	taxonomyHandler := handler.NewTaxonomyHandler(service.NewTaxonomyService(taxonomyRepo))
	contactHandler := handler.NewContactHandler(service.NewContactService(contactRepo, redisClient, cfg.RateLimitContact))
	uploadHandler := handler.NewUploadHandler(service.NewMediaService(fileStorage, cfg.CloudinaryUploadFolder))
	searchHandler := handler.NewSearchHandler(searchSvc)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	api := router.Group("/api")
	{
		api.GET("/products", productHandler.ListPublic)
		api.GET("/products/:slug", productHandler.GetPublicBySlug)
		api.GET("/guides", guideHandler.ListPublic)
		api.GET("/guides/:slug", guideHandler.GetPublicBySlug)
		api.GET("/lessons", lessonHandler.ListPublic)
		api.GET("/lessons/:slug", lessonHandler.GetPublicBySlug)
		api.GET("/categories", taxonomyHandler.ListCategories)
		api.GET("/tags", taxonomyHandler.ListTags)
		api.GET("/search", searchHandler.Search)
		api.POST("/contact", contactHandler.Submit)

		api.POST("/auth/login", authHandler.Login)
	}

	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.GET("/products", productHandler.ListAdmin)
		admin.GET("/products/:id", productHandler.GetAdminByID)
		admin.POST("/products", productHandler.Save)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.GET("/guides", guideHandler.ListAdmin)
		admin.GET("/guides/:id", guideHandler.GetAdminByID)
		admin.POST("/guides", guideHandler.Save)
		admin.DELETE("/guides/:id", guideHandler.Delete)

		admin.GET("/lessons", lessonHandler.ListAdmin)
		admin.GET("/lessons/:id", lessonHandler.GetAdminByID)
		admin.POST("/lessons", lessonHandler.Save)
		admin.DELETE("/lessons/:id", lessonHandler.Delete)

		admin.POST("/categories", taxonomyHandler.SaveCategory)
		admin.DELETE("/categories/:id", taxonomyHandler.DeleteCategory)
		admin.POST("/tags", taxonomyHandler.SaveTag)
		admin.DELETE("/tags/:id", taxonomyHandler.DeleteTag)

		admin.POST("/uploads", uploadHandler.Upload)
		admin.DELETE("/uploads", uploadHandler.Delete)

		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users/invite", adminHandler.InviteAdmin)
		admin.POST("/users/promote", adminHandler.PromoteByEmail)

		admin.GET("/contact", contactHandler.List)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := strings.Split(allowedOrigins, ",")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
