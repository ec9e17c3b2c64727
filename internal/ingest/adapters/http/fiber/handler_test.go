package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-analytics-service/internal/ingest/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeImportDatasetUseCase struct {
	ExecuteFunc      func(ctx context.Context, in usecase.ImportInput) (usecase.ImportResult, error)
	LastExecuteInput usecase.ImportInput
	called           bool
}

func (f *fakeImportDatasetUseCase) Execute(ctx context.Context, in usecase.ImportInput) (usecase.ImportResult, error) {
	f.called = true
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return usecase.ImportResult{}, nil
}

// helper: create fiber app and routes
func setupTestApp(uc ImportDatasetUseCase) *fiber.App {
	app := fiber.New()
	h := NewImportHandler(uc)

	app.Post("/imports", h.CreateImport)

	return app
}

// helper: send a multipart upload; an empty name sends no file part
func doUpload(t *testing.T, app *fiber.App, name string, content []byte) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if name != "" {
		part, err := w.CreateFormFile("file", name)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	} else {
		_ = w.WriteField("note", "no file")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/imports", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return resp, respBody
}

const csvUpload = "Mã đơn hàng,Tên mặt hàng,Thành tiền\nDH01,Trà xanh,45000\nDH02,Bột matcha,120000\n"

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestCreateImport_Success(t *testing.T) {
	batch := uuid.New()
	uc := &fakeImportDatasetUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.ImportInput) (usecase.ImportResult, error) {
			if in.Table.Len() != 2 {
				t.Fatalf("expected 2 rows, got %d", in.Table.Len())
			}
			return usecase.ImportResult{BatchID: batch, Imported: 2}, nil
		},
	}

	app := setupTestApp(uc)

	resp, body := doUpload(t, app, "sales.csv", []byte(csvUpload))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", resp.StatusCode, body)
	}

	var got ImportResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.BatchID != batch.String() || got.Imported != 2 || got.Skipped != 0 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

// ------------------------------------------------------------
// BAD REQUESTS
// ------------------------------------------------------------

func TestCreateImport_MissingFile(t *testing.T) {
	uc := &fakeImportDatasetUseCase{}
	app := setupTestApp(uc)

	resp, _ := doUpload(t, app, "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("usecase should not be called without a file")
	}
}

func TestCreateImport_EmptyFile(t *testing.T) {
	uc := &fakeImportDatasetUseCase{}
	app := setupTestApp(uc)

	resp, _ := doUpload(t, app, "sales.csv", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if uc.called {
		t.Fatalf("usecase should not be called for a file without header")
	}
}

func TestCreateImport_EmptyDataset(t *testing.T) {
	uc := &fakeImportDatasetUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.ImportInput) (usecase.ImportResult, error) {
			return usecase.ImportResult{}, usecase.ErrEmptyDataset
		},
	}
	app := setupTestApp(uc)

	resp, _ := doUpload(t, app, "sales.csv", []byte("Mã đơn hàng,Thành tiền\n"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// USECASE OTHER ERROR -> 500
// ------------------------------------------------------------

func TestCreateImport_InternalError(t *testing.T) {
	uc := &fakeImportDatasetUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.ImportInput) (usecase.ImportResult, error) {
			return usecase.ImportResult{}, errors.New("db down")
		},
	}
	app := setupTestApp(uc)

	resp, _ := doUpload(t, app, "sales.csv", []byte(csvUpload))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
