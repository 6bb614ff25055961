package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/catalog"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/db"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/imagegen"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/importer"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/logger"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/middleware"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/restaurant"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"OPENAI_API_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── LOGGER ─────────────────────────
	zlog := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer zlog.Sync()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	imageService := imagegen.NewService(
		imagegen.NewOpenAIClient(),
		r2Client,
		zlog.Sugar(),
	)

	importService := importer.NewService(
		restaurantRepo,
		catalogRepo,
		imageService,
		zlog.Sugar(),
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	importHandler := importer.NewHandler(importService)

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	{
		admin.POST("/catalog/import", importHandler.Upload)
		admin.GET("/catalog/import/template", importHandler.Template)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 Admin API running at http://localhost:8000")
	r.Run(":8000")
}
