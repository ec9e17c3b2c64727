package ports

import (
	"context"
	"errors"

	"sales-analytics-service/internal/analytics/core/domain"
)

// ErrDatasetUnavailable wraps every failure to read the sales table.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

type DatasetSource interface {
	// Load returns a fresh snapshot of the sales table. Implementations
	// re-read their backing store on every call.
	Load(ctx context.Context) (*domain.Table, error)
}
