package restaurant

import "context"

// InMemoryRepository is a test double for the postgres repository.
type InMemoryRepository struct {
	restaurants []Restaurant
	nextID      int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// Add seeds a restaurant and returns its assigned id.
func (m *InMemoryRepository) Add(name, city, cuisine string) int {
	id := m.nextID
	m.nextID++

	m.restaurants = append(m.restaurants, Restaurant{
		ID:          id,
		Name:        name,
		City:        city,
		CuisineType: cuisine,
		Status:      "active",
	})
	return id
}

func (m *InMemoryRepository) All(ctx context.Context) ([]Restaurant, error) {
	out := make([]Restaurant, len(m.restaurants))
	copy(out, m.restaurants)
	return out, nil
}
