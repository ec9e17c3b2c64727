package fiber

import (
	"context"
	"errors"
	"net/http"

	"sales-analytics-service/internal/analytics/adapters/source"
	"sales-analytics-service/internal/ingest/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ImportDatasetUseCase interface {
	Execute(ctx context.Context, in usecase.ImportInput) (usecase.ImportResult, error)
}

type ImportHandler struct {
	importUC ImportDatasetUseCase
}

func NewImportHandler(importUC ImportDatasetUseCase) *ImportHandler {
	return &ImportHandler{importUC: importUC}
}

// CreateImport godoc
// @Summary Import a sales dataset
// @Description Stores every non-blank row of an uploaded CSV, TSV or XLSX file as order lines
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Sales dataset"
// @Success 201 {object} ImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /imports [post]
func (h *ImportHandler) CreateImport(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "file_required",
			Message: "multipart field 'file' is required",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	defer f.Close()

	table, err := source.Decode(fh.Filename, f)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_dataset",
			Message: err.Error(),
		})
	}

	res, err := h.importUC.Execute(c.UserContext(), usecase.ImportInput{Table: table})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyDataset):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_dataset",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(ImportResponse{
		BatchID:  res.BatchID.String(),
		Imported: res.Imported,
		Skipped:  res.Skipped,
	})
}
