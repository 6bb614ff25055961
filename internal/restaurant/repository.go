package restaurant

import "context"

type Repository interface {
	// All returns every restaurant. The import pipeline snapshots this
	// once per batch and resolves names against the snapshot.
	All(ctx context.Context) ([]Restaurant, error)
}
