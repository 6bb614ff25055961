package restaurant

import "time"

type Restaurant struct {
	ID          int
	Name        string
	City        string
	CuisineType string
	Status      string
	CreatedAt   time.Time
}
