package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	analytics "sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
	"sales-analytics-service/internal/ingest/core/domain"
	"sales-analytics-service/internal/ingest/core/ports"
)

var ErrEmptyDataset = errors.New("dataset has no rows")

// syntheticNameLen caps the item name part of a generated item code.
const syntheticNameLen = 20

type ImportInput struct {
	Table *analytics.Table
}

type ImportResult struct {
	BatchID  uuid.UUID
	Imported int
	Skipped  int // blank rows
}

// ImportObserver receives one call per finished import.
type ImportObserver interface {
	ObserveImport(imported, skipped int)
}

type ImportDatasetUseCase struct {
	repo     ports.OrderLineRepositoryPort
	dates    normalize.DateResolver
	logger   *slog.Logger
	observer ImportObserver
	newID    func() uuid.UUID
}

type Option func(*ImportDatasetUseCase)

func WithLogger(l *slog.Logger) Option {
	return func(uc *ImportDatasetUseCase) { uc.logger = l }
}

func WithObserver(o ImportObserver) Option {
	return func(uc *ImportDatasetUseCase) { uc.observer = o }
}

func NewImportDatasetUseCase(repo ports.OrderLineRepositoryPort, dates normalize.DateResolver, opts ...Option) *ImportDatasetUseCase {
	uc := &ImportDatasetUseCase{
		repo:   repo,
		dates:  dates,
		logger: slog.Default(),
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ImportDatasetUseCase) Execute(ctx context.Context, in ImportInput) (ImportResult, error) {
	if in.Table.Len() == 0 {
		return ImportResult{}, ErrEmptyDataset
	}

	res := ImportResult{BatchID: uc.newID()}
	n := normalize.NewNormalizer(in.Table.Columns, uc.dates)

	lines := make([]domain.OrderLine, 0, in.Table.Len())
	for i := range in.Table.Rows {
		row := in.Table.Row(i)
		if row.Blank() {
			res.Skipped++
			continue
		}
		lines = append(lines, uc.line(n.Normalize(row), len(lines), res.BatchID))
	}
	if len(lines) == 0 {
		return ImportResult{}, ErrEmptyDataset
	}

	backfillDates(lines)

	stored, err := uc.repo.InsertOrderLines(ctx, lines)
	if err != nil {
		return ImportResult{}, fmt.Errorf("insert order lines: %w", err)
	}
	res.Imported = stored

	uc.logger.Info("dataset imported",
		slog.String("batch", res.BatchID.String()),
		slog.Int("imported", res.Imported),
		slog.Int("skipped", res.Skipped),
	)
	if uc.observer != nil {
		uc.observer.ObserveImport(res.Imported, res.Skipped)
	}

	return res, nil
}

// line maps one normalized record; seq is the number of lines already
// accepted and numbers synthetic order codes.
func (uc *ImportDatasetUseCase) line(r normalize.Record, seq int, batch uuid.UUID) domain.OrderLine {
	l := domain.OrderLine{
		BatchID:      batch,
		OrderCode:    r.OrderID,
		CustomerCode: r.CustomerCode,
		CustomerName: r.CustomerName,
		SegmentCode:  r.SegmentCode,
		SegmentDesc:  r.SegmentDesc,
		GroupCode:    r.GroupCode,
		GroupName:    r.GroupName,
		ItemCode:     r.ItemCode,
		ItemName:     r.ItemName,
		ImportPrice:  r.ImportPrice,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		TotalPrice:   r.Amount,
	}

	if l.OrderCode == "" {
		l.OrderCode = fmt.Sprintf("GEN-%d", seq)
	}
	if l.ItemCode == "" && l.ItemName != "" {
		l.ItemCode = "GEN_" + truncateRunes(l.ItemName, syntheticNameLen)
	}
	if r.HasDate {
		at := r.OrderedAt
		l.OrderedAt = &at
	}

	return l
}

// backfillDates stamps every line of an order with the first date seen on
// any of its lines, so an order carries a single timestamp.
func backfillDates(lines []domain.OrderLine) {
	first := make(map[string]time.Time)
	for _, l := range lines {
		if l.OrderedAt == nil {
			continue
		}
		if _, ok := first[l.OrderCode]; !ok {
			first[l.OrderCode] = *l.OrderedAt
		}
	}

	for i := range lines {
		if at, ok := first[lines[i].OrderCode]; ok {
			lines[i].OrderedAt = &at
		}
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
