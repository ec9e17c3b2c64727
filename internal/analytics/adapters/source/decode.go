package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"

	"sales-analytics-service/internal/analytics/core/domain"
)

var ErrNoHeader = errors.New("dataset has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// sniffSize is how much of the file is inspected to pick a delimiter.
const sniffSize = 4096

// Decode reads a table from r, choosing the format from name's extension:
// .xlsx goes through excelize, anything else is treated as delimited text.
func Decode(name string, r io.Reader) (*domain.Table, error) {
	if strings.EqualFold(path.Ext(name), ".xlsx") {
		return DecodeXLSX(r)
	}
	return DecodeDelimited(r)
}

// DecodeDelimited reads comma- or tab-separated text with a header row.
// A UTF-8 BOM is dropped; the delimiter is tab when tabs outnumber commas
// in the first few kilobytes.
func DecodeDelimited(r io.Reader) (*domain.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited: %w", err)
	}
	return tableFromRecords(records)
}

func sniffDelimiter(data []byte) rune {
	sample := data
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}
	if bytes.Count(sample, []byte{'\t'}) > bytes.Count(sample, []byte{','}) {
		return '\t'
	}
	return ','
}

// DecodeXLSX reads the first sheet of a workbook.
func DecodeXLSX(r io.Reader) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return tableFromRecords(rows)
}

func tableFromRecords(records [][]string) (*domain.Table, error) {
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := make([]string, len(records[0]))
	for i, c := range records[0] {
		header[i] = strings.TrimSpace(c)
	}

	return &domain.Table{Columns: header, Rows: records[1:]}, nil
}
