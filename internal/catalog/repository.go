package catalog

import "context"

// Repository defines all database operations the import pipeline needs
// against the catalog tables.
type Repository interface {

	// -------------------------------
	// Categories
	// -------------------------------

	ListCategories(ctx context.Context) ([]Category, error)

	// FindCategoryByName performs a case-insensitive lookup.
	// found=false is not an error.
	FindCategoryByName(ctx context.Context, name string) (id int, found bool, err error)

	CreateCategory(ctx context.Context, name string, sortOrder int) (int, error)

	MaxCategorySortOrder(ctx context.Context) (int, error)

	// -------------------------------
	// Menu items
	// -------------------------------

	InsertItem(ctx context.Context, item *MenuItem) error

	// ListItemKeys returns (restaurantID, name) for every item belonging
	// to the given restaurants. Seeds the duplicate detector.
	ListItemKeys(ctx context.Context, restaurantIDs []int) ([]ItemKey, error)
}
