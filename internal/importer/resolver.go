package importer

import (
	"context"
	"strings"

	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/catalog"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/restaurant"
)

// normalizeName folds a free-text name for lookups: trimmed, lower-cased.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// --------------------------------------------------
// Restaurant index (immutable for the batch)
// --------------------------------------------------

// RestaurantIndex maps normalized restaurant names to ids, snapshotted
// once at the start of a batch. A restaurant renamed mid-run will not
// retroactively resolve.
type RestaurantIndex struct {
	byName map[string]int
}

func BuildRestaurantIndex(restaurants []restaurant.Restaurant) *RestaurantIndex {
	index := &RestaurantIndex{
		byName: make(map[string]int, len(restaurants)),
	}
	for _, r := range restaurants {
		index.byName[normalizeName(r.Name)] = r.ID
	}
	return index
}

func (ix *RestaurantIndex) Resolve(name string) (int, bool) {
	id, ok := ix.byName[normalizeName(name)]
	return id, ok
}

// --------------------------------------------------
// Category cache (grows during the batch)
// --------------------------------------------------

// CategoryCache resolves category names to ids, creating missing
// categories on the fly. Creation is idempotent per batch: the same new
// name is created at most once because rows are processed sequentially.
type CategoryCache struct {
	repo    catalog.Repository
	byName  map[string]int
	maxSort int
}

func NewCategoryCache(ctx context.Context, repo catalog.Repository) (*CategoryCache, error) {
	categories, err := repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	maxSort, err := repo.MaxCategorySortOrder(ctx)
	if err != nil {
		return nil, err
	}

	cache := &CategoryCache{
		repo:    repo,
		byName:  make(map[string]int, len(categories)),
		maxSort: maxSort,
	}
	for _, c := range categories {
		cache.byName[normalizeName(c.Name)] = c.ID
	}

	return cache, nil
}

func (c *CategoryCache) Resolve(ctx context.Context, name string) (int, error) {
	key := normalizeName(name)

	if id, ok := c.byName[key]; ok {
		return id, nil
	}

	// Another operator may have created it after the cache was seeded
	id, found, err := c.repo.FindCategoryByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if found {
		c.byName[key] = id
		return id, nil
	}

	// New category: next sort position past the current maximum, so
	// existing ordering is preserved
	c.maxSort += 10

	id, err = c.repo.CreateCategory(ctx, strings.TrimSpace(name), c.maxSort)
	if err != nil {
		return 0, err
	}

	c.byName[key] = id
	return id, nil
}
