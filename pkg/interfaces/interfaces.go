// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import (
	"context"

	"github.com/Veraticus/txscan/pkg/types"
)

// Loader resolves an identifier to its content.
type Loader interface {
	Load(ctx context.Context, identifier string) (types.Document, error)
}

// Reporter renders the results of an analysis run.
type Reporter interface {
	Report(report types.Report) error
}
