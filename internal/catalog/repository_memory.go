package catalog

import (
	"context"
	"strings"
	"time"
)

// InMemoryRepository is a test double for the postgres repository.
type InMemoryRepository struct {
	categories []Category
	items      []MenuItem

	nextCategoryID int
	nextItemID     int

	// InsertItemErr, when set, fails every InsertItem call. Used by
	// tests to simulate write failures.
	InsertItemErr error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextCategoryID: 1,
		nextItemID:     1,
	}
}

// --------------------------------------------------
// Seeding helpers (tests only)
// --------------------------------------------------

func (m *InMemoryRepository) AddCategory(name string, sortOrder int) int {
	id := m.nextCategoryID
	m.nextCategoryID++

	m.categories = append(m.categories, Category{
		ID:        id,
		Name:      name,
		SortOrder: sortOrder,
	})
	return id
}

func (m *InMemoryRepository) AddItem(restaurantID, categoryID int, name string) int {
	id := m.nextItemID
	m.nextItemID++

	m.items = append(m.items, MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         name,
		IsAvailable:  true,
	})
	return id
}

func (m *InMemoryRepository) Categories() []Category {
	return m.categories
}

func (m *InMemoryRepository) Items() []MenuItem {
	return m.items
}

// --------------------------------------------------
// Repository interface
// --------------------------------------------------

func (m *InMemoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *InMemoryRepository) FindCategoryByName(
	ctx context.Context,
	name string,
) (int, bool, error) {

	for _, c := range m.categories {
		if strings.EqualFold(c.Name, name) {
			return c.ID, true, nil
		}
	}
	return 0, false, nil
}

func (m *InMemoryRepository) CreateCategory(
	ctx context.Context,
	name string,
	sortOrder int,
) (int, error) {

	id := m.nextCategoryID
	m.nextCategoryID++

	m.categories = append(m.categories, Category{
		ID:        id,
		Name:      name,
		SortOrder: sortOrder,
	})
	return id, nil
}

func (m *InMemoryRepository) MaxCategorySortOrder(ctx context.Context) (int, error) {
	max := 0
	for _, c := range m.categories {
		if c.SortOrder > max {
			max = c.SortOrder
		}
	}
	return max, nil
}

func (m *InMemoryRepository) InsertItem(ctx context.Context, item *MenuItem) error {
	if m.InsertItemErr != nil {
		return m.InsertItemErr
	}

	item.ID = m.nextItemID
	m.nextItemID++
	item.CreatedAt = time.Now()

	m.items = append(m.items, *item)
	return nil
}

func (m *InMemoryRepository) ListItemKeys(
	ctx context.Context,
	restaurantIDs []int,
) ([]ItemKey, error) {

	wanted := make(map[int]bool, len(restaurantIDs))
	for _, id := range restaurantIDs {
		wanted[id] = true
	}

	var keys []ItemKey
	for _, item := range m.items {
		if wanted[item.RestaurantID] {
			keys = append(keys, ItemKey{
				RestaurantID: item.RestaurantID,
				Name:         item.Name,
			})
		}
	}
	return keys, nil
}
