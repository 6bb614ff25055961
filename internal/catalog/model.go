package catalog

import "time"

type Category struct {
	ID        int
	Name      string
	SortOrder int
}

type MenuItem struct {
	ID              int
	RestaurantID    int
	CategoryID      int
	Name            string
	Description     string
	Price           float64
	IsVeg           bool
	IsVegan         bool
	IsAvailable     bool
	PrepTimeMinutes int
	ImageURL        string
	CreatedAt       time.Time
}

// ItemKey identifies one catalog item within a restaurant.
// Name is stored exactly as written; duplicate detection normalizes it.
type ItemKey struct {
	RestaurantID int
	Name         string
}
