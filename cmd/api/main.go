package main

import (
	"log"
	"time"

	"timetable-api/config"
	"timetable-api/handlers"
	"timetable-api/middleware"
	"timetable-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Start service")
	// Загружаем .env файл (игнорируем ошибку для продакшн)
	_ = godotenv.Load()

	cfg := config.Load()

	log.Println("init services")
	minioService, err := services.NewMinIOService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	cacheService := services.NewCacheService(cfg.CacheTTL, 2*cfg.CacheTTL)
	parserService := services.NewParserService(cfg.HeaderRow, cfg.GroupNameWidth, cfg.ParseWorkers)

	log.Println("init handlers")
	groupHandler := handlers.NewGroupHandler(minioService, cacheService, cfg.TargetBucket, cfg.GroupPathPattern)
	scheduleHandler := handlers.NewScheduleHandler(minioService, cacheService, cfg.TargetBucket, cfg.GroupPathPattern)
	uploadFileHandler := handlers.NewUploadFileHandler(minioService, parserService, cacheService,
		cfg.SourceBucket, cfg.TargetBucket, cfg.SourcePathPattern, cfg.GroupPathPattern)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Println("init router")
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now(),
			})
		})

		// Groups
		api.GET("/groups", groupHandler.GetGroups)
		api.GET("/groups/:group/schedule", scheduleHandler.GetSchedule)
		api.GET("/groups/:group/schedule/download", scheduleHandler.GetDownloadURL)

		// Timetable files
		api.POST("/timetables/upload-url", uploadFileHandler.GetUploadURL)
		api.POST("/files_uploaded", uploadFileHandler.ProcessFile)

		// Cache management
		api.POST("/cache/invalidate", scheduleHandler.InvalidateCache)
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
