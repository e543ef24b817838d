package corpus

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/txscan/pkg/interfaces"
	"github.com/Veraticus/txscan/pkg/types"
)

// LoadAll loads every identifier with at most parallelism loads in flight.
// Documents are returned in the order of identifiers. The first failure
// cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, loader interfaces.Loader, identifiers []string, parallelism int) ([]types.Document, error) {
	docs := make([]types.Document, len(identifiers))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, id := range identifiers {
		i, id := i, id
		g.Go(func() error {
			doc, err := loader.Load(ctx, id)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
