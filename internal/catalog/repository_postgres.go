package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CATEGORIES
// --------------------------------------------------

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, sort_order
		FROM categories
		ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category

	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Case-insensitive lookup, covers categories created by other
// operators after the batch cache was seeded
func (r *PostgresRepository) FindCategoryByName(
	ctx context.Context,
	name string,
) (int, bool, error) {

	var id int

	err := r.db.QueryRow(ctx, `
		SELECT id
		FROM categories
		WHERE LOWER(name) = LOWER($1)
		ORDER BY id
		LIMIT 1
	`, name).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return id, true, nil
}

func (r *PostgresRepository) CreateCategory(
	ctx context.Context,
	name string,
	sortOrder int,
) (int, error) {

	var id int

	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, sort_order)
		VALUES ($1, $2)
		RETURNING id
	`, name, sortOrder).Scan(&id)

	return id, err
}

func (r *PostgresRepository) MaxCategorySortOrder(ctx context.Context) (int, error) {
	var max int

	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(sort_order), 0)
		FROM categories
	`).Scan(&max)

	return max, err
}

// --------------------------------------------------
// MENU ITEMS
// --------------------------------------------------

func (r *PostgresRepository) InsertItem(ctx context.Context, item *MenuItem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			restaurant_id,
			category_id,
			name,
			description,
			price,
			is_veg,
			is_vegan,
			is_available,
			prep_time_minutes,
			image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`,
		item.RestaurantID,
		item.CategoryID,
		item.Name,
		item.Description,
		item.Price,
		item.IsVeg,
		item.IsVegan,
		item.IsAvailable,
		item.PrepTimeMinutes,
		item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListItemKeys(
	ctx context.Context,
	restaurantIDs []int,
) ([]ItemKey, error) {

	if len(restaurantIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT restaurant_id, name
		FROM menu_items
		WHERE restaurant_id = ANY($1)
	`, restaurantIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []ItemKey

	for rows.Next() {
		var k ItemKey
		if err := rows.Scan(&k.RestaurantID, &k.Name); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	return keys, rows.Err()
}
