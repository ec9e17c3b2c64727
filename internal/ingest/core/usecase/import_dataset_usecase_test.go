package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-analytics-service/internal/analytics/core/dates"
	analytics "sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/ingest/core/domain"
	"sales-analytics-service/internal/ingest/core/usecase"
)

// Fake repository implementing OrderLineRepositoryPort
type fakeOrderLineRepo struct {
	InsertFn func(ctx context.Context, lines []domain.OrderLine) (int, error)
	lines    []domain.OrderLine
}

func (f *fakeOrderLineRepo) InsertOrderLines(ctx context.Context, lines []domain.OrderLine) (int, error) {
	f.lines = lines
	if f.InsertFn != nil {
		return f.InsertFn(ctx, lines)
	}
	return len(lines), nil
}

type fakeObserver struct {
	imported, skipped int
}

func (f *fakeObserver) ObserveImport(imported, skipped int) {
	f.imported, f.skipped = imported, skipped
}

var columns = []string{
	"Thời gian tạo đơn", "Mã đơn hàng", "Mã khách hàng", "Mã nhóm hàng",
	"Tên nhóm hàng", "Mã mặt hàng", "Tên mặt hàng", "SL", "Đơn giá", "Thành tiền",
}

func resolver() *dates.Resolver {
	return dates.NewResolver(dates.WithLocation(time.UTC))
}

// ------------------------------------------------------------
// SUCCESS TEST
// ------------------------------------------------------------
func TestImportDataset_Success(t *testing.T) {
	repo := &fakeOrderLineRepo{}
	obs := &fakeObserver{}

	uc := usecase.NewImportDatasetUseCase(repo, resolver(), usecase.WithObserver(obs))

	table := &analytics.Table{
		Columns: columns,
		Rows: [][]string{
			{"05/03/2024 14:30", "DH01", "KH01", "BOT", "Bột", "SP01", "Bột matcha", "2", "60.000", "120.000đ"},
			{"", "", "", "", "", "", "", "", "", ""},
			{"06/03/2024 09:00", "DH02", "KH02", "TRA", "Trà", "SP02", "Trà xanh", "1", "45000", "45000"},
		},
	}

	res, err := uc.Execute(context.Background(), usecase.ImportInput{Table: table})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 1 {
		t.Fatalf("expected imported=2 skipped=1, got %+v", res)
	}
	if obs.imported != 2 || obs.skipped != 1 {
		t.Fatalf("observer not notified: %+v", obs)
	}

	first := repo.lines[0]
	if first.OrderCode != "DH01" || first.ItemCode != "SP01" || first.GroupCode != "BOT" {
		t.Fatalf("unexpected identifiers: %+v", first)
	}
	if first.TotalPrice != 120000 || first.UnitPrice != 60000 || first.Quantity != 2 {
		t.Fatalf("unexpected amounts: %+v", first)
	}
	want := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	if first.OrderedAt == nil || !first.OrderedAt.Equal(want) {
		t.Fatalf("expected %v, got %v", want, first.OrderedAt)
	}
	for _, l := range repo.lines {
		if l.BatchID != res.BatchID {
			t.Fatalf("expected every line tagged with batch %s", res.BatchID)
		}
	}
}

// ------------------------------------------------------------
// EMPTY DATASET
// ------------------------------------------------------------
func TestImportDataset_Empty(t *testing.T) {
	tests := []struct {
		name  string
		table *analytics.Table
	}{
		{"nil_table", nil},
		{"header_only", &analytics.Table{Columns: columns}},
		{"blank_rows", &analytics.Table{Columns: columns, Rows: [][]string{{" ", ""}, {}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeOrderLineRepo{
				InsertFn: func(ctx context.Context, lines []domain.OrderLine) (int, error) {
					t.Fatalf("repository should not be called")
					return 0, nil
				},
			}

			uc := usecase.NewImportDatasetUseCase(repo, resolver())

			_, err := uc.Execute(context.Background(), usecase.ImportInput{Table: tt.table})
			if !errors.Is(err, usecase.ErrEmptyDataset) {
				t.Fatalf("expected ErrEmptyDataset, got %v", err)
			}
		})
	}
}

// ------------------------------------------------------------
// REPOSITORY ERROR
// ------------------------------------------------------------
func TestImportDataset_RepoError(t *testing.T) {
	dbErr := errors.New("db failure")
	repo := &fakeOrderLineRepo{
		InsertFn: func(ctx context.Context, lines []domain.OrderLine) (int, error) {
			return 0, dbErr
		},
	}

	uc := usecase.NewImportDatasetUseCase(repo, resolver())

	table := &analytics.Table{Columns: columns, Rows: [][]string{{"", "DH01"}}}

	_, err := uc.Execute(context.Background(), usecase.ImportInput{Table: table})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db failure, got %v", err)
	}
}
