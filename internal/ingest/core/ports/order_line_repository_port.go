package ports

import (
	"context"

	"sales-analytics-service/internal/ingest/core/domain"
)

type OrderLineRepositoryPort interface {
	// InsertOrderLines writes lines and returns how many were stored.
	// Either every line of a call is stored or none is.
	InsertOrderLines(ctx context.Context, lines []domain.OrderLine) (int, error)
}
