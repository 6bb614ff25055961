package importer

import (
	"context"
	"strconv"
	"strings"

	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/catalog"
)

const (
	defaultCategoryName   = "General"
	defaultPrepTimeMinute = 15
)

// Committer normalizes one row and writes it as a catalog item.
type Committer struct {
	repo catalog.Repository
}

func NewCommitter(repo catalog.Repository) *Committer {
	return &Committer{repo: repo}
}

func (c *Committer) Commit(
	ctx context.Context,
	row ImportRow,
	restaurantID int,
	categoryID int,
) error {

	item := &catalog.MenuItem{
		RestaurantID:    restaurantID,
		CategoryID:      categoryID,
		Name:            row.ItemName,
		Description:     row.Description,
		Price:           ParsePrice(row.Price),
		IsVeg:           parseTruthy(row.IsVeg),
		IsVegan:         parseTruthy(row.IsVegan),
		IsAvailable:     parseAvailable(row.IsAvailable),
		PrepTimeMinutes: parsePrepTime(row.PrepTime),
		ImageURL:        strings.TrimSpace(row.ImageURL),
	}

	return c.repo.InsertItem(ctx, item)
}

// ParsePrice strips currency symbols and separators before parsing.
// An unparseable price collapses to 0 instead of failing the row.
func ParsePrice(raw string) float64 {
	var cleaned strings.Builder

	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			cleaned.WriteRune(r)
		}
	}

	price, err := strconv.ParseFloat(cleaned.String(), 64)
	if err != nil {
		return 0
	}
	return price
}

// parseTruthy: veg/vegan are true only for an explicit yes.
func parseTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

// parseAvailable: available unless explicitly marked otherwise.
func parseAvailable(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "no", "false", "0":
		return false
	}
	return true
}

func parsePrepTime(raw string) int {
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || minutes <= 0 {
		return defaultPrepTimeMinute
	}
	return minutes
}
