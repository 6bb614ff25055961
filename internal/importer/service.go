package importer

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/catalog"
	"github.com/arepsilon/KhanaGo-Admin-22022026-sub000/internal/restaurant"
)

// Acquirer synthesizes a product photo for an item that has none and
// returns a public URL. Implemented by the imagegen service.
type Acquirer interface {
	Acquire(ctx context.Context, itemName, category, description string) (string, error)
}

type Service struct {
	restaurants restaurant.Repository
	catalog     catalog.Repository
	committer   *Committer
	images      Acquirer
	log         *zap.SugaredLogger
}

// NewService wires the import pipeline. images may be nil, in which
// case rows without an Image URL are committed without one.
func NewService(
	restaurants restaurant.Repository,
	catalogRepo catalog.Repository,
	images Acquirer,
	log *zap.SugaredLogger,
) *Service {

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Service{
		restaurants: restaurants,
		catalog:     catalogRepo,
		committer:   NewCommitter(catalogRepo),
		images:      images,
		log:         log,
	}
}

// Run processes one uploaded file as a batch. Only a malformed file
// stops the run before any write; every other condition is captured
// into the owning row's outcome. Rows are processed sequentially so the
// category cache and the dedup set observe every prior row's effect.
func (s *Service) Run(
	ctx context.Context,
	file io.Reader,
	generateImages bool,
) (*Report, error) {

	rows, err := ParseRows(file)
	if err != nil {
		return nil, err
	}

	all, err := s.restaurants.All(ctx)
	if err != nil {
		return nil, err
	}
	index := BuildRestaurantIndex(all)

	categories, err := NewCategoryCache(ctx, s.catalog)
	if err != nil {
		return nil, err
	}

	seen, err := s.seedExistingItems(ctx, index, rows)
	if err != nil {
		return nil, err
	}

	if generateImages && s.images != nil {
		s.fillMissingImages(ctx, rows)
	}

	agg := NewAggregator()

	for i := range rows {
		outcome := s.processRow(ctx, rows[i], index, categories, seen)
		agg.Record(rows[i], outcome)
	}

	report := agg.Report()

	s.log.Infow("import finished",
		"rows", report.TotalRows,
		"added", report.TotalAdded,
		"skipped", report.TotalSkipped,
		"failed", report.TotalFailed,
	)

	return report, nil
}

// seedExistingItems loads (restaurantID, itemName) pairs for every
// restaurant named in the batch.
func (s *Service) seedExistingItems(
	ctx context.Context,
	index *RestaurantIndex,
	rows []ImportRow,
) (*ItemKeySet, error) {

	idSet := make(map[int]bool)
	var ids []int

	for _, row := range rows {
		if id, ok := index.Resolve(row.RestaurantName); ok && !idSet[id] {
			idSet[id] = true
			ids = append(ids, id)
		}
	}

	keys, err := s.catalog.ListItemKeys(ctx, ids)
	if err != nil {
		return nil, err
	}

	seen := NewItemKeySet()
	seen.Seed(keys)
	return seen, nil
}

func (s *Service) processRow(
	ctx context.Context,
	row ImportRow,
	index *RestaurantIndex,
	categories *CategoryCache,
	seen *ItemKeySet,
) RowOutcome {

	restaurantID, ok := index.Resolve(row.RestaurantName)
	if !ok {
		return RowOutcome{Kind: OutcomeFailed, Reason: ReasonRestaurantNotFound}
	}

	if seen.Contains(restaurantID, row.ItemName) {
		return RowOutcome{Kind: OutcomeSkipped, Reason: ReasonDuplicateItem}
	}

	categoryName := row.CategoryName
	if strings.TrimSpace(categoryName) == "" {
		categoryName = defaultCategoryName
	}

	categoryID, err := categories.Resolve(ctx, categoryName)
	if err != nil {
		return RowOutcome{Kind: OutcomeFailed, Reason: err.Error()}
	}

	if err := s.committer.Commit(ctx, row, restaurantID, categoryID); err != nil {
		return RowOutcome{Kind: OutcomeFailed, Reason: err.Error()}
	}

	seen.Add(restaurantID, row.ItemName)
	return RowOutcome{Kind: OutcomeAdded}
}

// fillMissingImages backfills image URLs before rows are committed.
// Sequential on purpose: it bounds concurrent load on the generation
// service. A failed acquisition never drops the row.
func (s *Service) fillMissingImages(ctx context.Context, rows []ImportRow) {
	for i := range rows {
		if strings.TrimSpace(rows[i].ImageURL) != "" {
			continue
		}

		url, err := s.images.Acquire(
			ctx,
			rows[i].ItemName,
			rows[i].CategoryName,
			rows[i].Description,
		)
		if err != nil {
			s.log.Warnw("image acquisition failed",
				"item", rows[i].ItemName,
				"error", err,
			)
			continue
		}

		rows[i].ImageURL = url
	}
}
