package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"sales-analytics-service/internal/analytics/core/dates"
	analytics "sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/ingest/core/domain"
)

// Fake repo
type captureRepo struct {
	lines []domain.OrderLine
}

func (f *captureRepo) InsertOrderLines(ctx context.Context, lines []domain.OrderLine) (int, error) {
	f.lines = append(f.lines, lines...)
	return len(lines), nil
}

func TestImport_SyntheticCodes(t *testing.T) {
	repo := &captureRepo{}
	uc := NewImportDatasetUseCase(repo, dates.NewResolver(dates.WithLocation(time.UTC)))
	uc.newID = func() uuid.UUID { return uuid.MustParse("00000000-0000-0000-0000-000000000001") }

	table := &analytics.Table{
		Columns: []string{"Mã đơn hàng", "Mã mặt hàng", "Tên mặt hàng", "Thành tiền"},
		Rows: [][]string{
			{"DH01", "SP01", "Bột matcha", "100"},
			{"", "", "Trà ô long thượng hạng đặc biệt", "200"},
			{"", "", "", "300"},
		},
	}

	res, err := uc.Execute(context.Background(), ImportInput{Table: table})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BatchID.String() != "00000000-0000-0000-0000-000000000001" {
		t.Fatalf("unexpected batch id %s", res.BatchID)
	}
	if len(repo.lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(repo.lines))
	}

	if got := repo.lines[1].OrderCode; got != "GEN-1" {
		t.Fatalf("expected GEN-1, got %s", got)
	}
	if got := repo.lines[2].OrderCode; got != "GEN-2" {
		t.Fatalf("expected GEN-2, got %s", got)
	}
	if got := repo.lines[1].ItemCode; got != "GEN_Trà ô long thượng hạ" {
		t.Fatalf("expected item code from first 20 runes of the name, got %q", got)
	}
	if got := repo.lines[2].ItemCode; got != "" {
		t.Fatalf("expected no item code without a name, got %q", got)
	}
}

func TestImport_BackfillsOrderDate(t *testing.T) {
	repo := &captureRepo{}
	uc := NewImportDatasetUseCase(repo, dates.NewResolver(dates.WithLocation(time.UTC)))

	table := &analytics.Table{
		Columns: []string{"Thời gian tạo đơn", "Mã đơn hàng", "Thành tiền"},
		Rows: [][]string{
			{"", "DH01", "100"},
			{"07/04/2024 10:15", "DH01", "200"},
			{"08/04/2024 11:00", "DH01", "300"},
			{"", "DH02", "400"},
		},
	}

	if _, err := uc.Execute(context.Background(), ImportInput{Table: table}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 4, 7, 10, 15, 0, 0, time.UTC)
	if at := repo.lines[0].OrderedAt; at == nil || !at.Equal(want) {
		t.Fatalf("expected backfilled %v, got %v", want, at)
	}
	for i := 1; i <= 2; i++ {
		if at := repo.lines[i].OrderedAt; at == nil || !at.Equal(want) {
			t.Fatalf("line %d: expected the order's first date %v, got %v", i, want, at)
		}
	}
	if repo.lines[3].OrderedAt != nil {
		t.Fatalf("expected no date for an order without any dated line")
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("Đường", 3); got != "Đườ" {
		t.Fatalf("expected Đườ, got %q", got)
	}
	if got := truncateRunes("ab", 5); got != "ab" {
		t.Fatalf("expected ab, got %q", got)
	}
}
