package importer

import (
	"fmt"

	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/catalog"
)

// ItemKeySet tracks (restaurantID, normalized item name) membership.
// Seeded from existing catalog contents and extended after every
// successful commit, so duplicates within the same file are caught too.
// Re-uploading the same file twice creates zero new items on the second
// run.
type ItemKeySet struct {
	keys map[string]struct{}
}

func NewItemKeySet() *ItemKeySet {
	return &ItemKeySet{keys: make(map[string]struct{})}
}

func (s *ItemKeySet) Seed(existing []catalog.ItemKey) {
	for _, k := range existing {
		s.Add(k.RestaurantID, k.Name)
	}
}

func (s *ItemKeySet) Contains(restaurantID int, itemName string) bool {
	_, ok := s.keys[itemKey(restaurantID, itemName)]
	return ok
}

func (s *ItemKeySet) Add(restaurantID int, itemName string) {
	s.keys[itemKey(restaurantID, itemName)] = struct{}{}
}

func itemKey(restaurantID int, itemName string) string {
	return fmt.Sprintf("%d|%s", restaurantID, normalizeName(itemName))
}
