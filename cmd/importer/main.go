package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/catalog"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/db"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/imagegen"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/importer"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/logger"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/restaurant"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/storage"

	"github.com/joho/godotenv"
)

// One-shot catalog import from a CSV file on disk. Same pipeline as
// the API endpoint, report rendered to stdout.
func main() {
	filePath := flag.String("file", "", "path to the catalog CSV")
	generateImages := flag.Bool("generate-images", false, "synthesize photos for rows without an Image URL")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: importer -file catalog.csv [-generate-images]")
	}

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("❌ Missing env var: DATABASE_URL")
	}

	zlog := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer zlog.Sync()

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)

	var images importer.Acquirer
	if *generateImages {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		images = imagegen.NewService(
			imagegen.NewOpenAIClient(),
			r2Client,
			zlog.Sugar(),
		)
	}

	service := importer.NewService(restaurantRepo, catalogRepo, images, zlog.Sugar())

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	report, err := service.Run(context.Background(), file, *generateImages)
	if err != nil {
		log.Fatal("❌ Batch rejected: ", err)
	}

	printReport(report)
}

func printReport(report *importer.Report) {
	fmt.Printf(
		"Processed %d rows: %d added, %d skipped, %d failed\n\n",
		report.TotalRows,
		report.TotalAdded,
		report.TotalSkipped,
		report.TotalFailed,
	)

	for _, result := range report.Results {
		fmt.Printf("%s [%s] added=%d\n", result.RestaurantName, result.Status, result.Added)

		for _, issue := range result.Skipped {
			fmt.Printf("  skipped  %-30s %s\n", issue.ItemName, issue.Reason)
		}
		for _, issue := range result.Failed {
			fmt.Printf("  failed   %-30s %s\n", issue.ItemName, issue.Reason)
		}
	}
}
