package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-booklist/internal/logging"
	"github.com/goliatone/go-booklist/pkg/interfaces"
)

var requiredColumns = []string{
	ColumnCategory,
	ColumnAuthors,
	ColumnTitle,
	ColumnISBN10,
	ColumnISBN13,
}

// Reader loads book records from a CSV source.
type Reader struct {
	logger interfaces.Logger
}

// NewReader constructs a Reader. A nil provider yields a silent reader.
func NewReader(provider interfaces.LoggerProvider) *Reader {
	return &Reader{logger: logging.CatalogLogger(provider)}
}

// LoadFile opens path and parses every row into records. Missing or
// unreadable sources surface as a not-found error; a header row lacking any
// required column surfaces as a validation error before rows are read.
func (r *Reader) LoadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, sourceNotFoundError(path, err)
	}
	defer file.Close()

	records, err := r.Load(file)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}

	logging.WithFields(r.logger, map[string]any{
		"source":       path,
		"record_count": len(records),
	}).Debug("catalog.load.completed")

	return records, nil
}

// Load parses CSV content from src. The first row must be a header carrying
// every required column; column order is irrelevant and unknown columns are
// ignored.
func (r *Reader) Load(src io.Reader) ([]Record, error) {
	reader := csv.NewReader(src)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, missingColumnError(requiredColumns[0])
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}

		record := Record{
			Category: field(row, index, ColumnCategory),
			Authors:  field(row, index, ColumnAuthors),
			Title:    field(row, index, ColumnTitle),
			ISBN10:   field(row, index, ColumnISBN10),
			ISBN13:   field(row, index, ColumnISBN13),
			Pages:    field(row, index, ColumnPages),
		}
		records = append(records, record)
	}

	return records, nil
}

// headerIndex maps column names to their positions, failing fast when a
// required column is absent.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, missingColumnError(column)
		}
	}
	return index, nil
}

func field(row []string, index map[string]int, column string) string {
	pos, ok := index[column]
	if !ok || pos >= len(row) {
		return ""
	}
	return row[pos]
}

func sourceNotFoundError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryNotFound, "catalog source not readable").
		WithTextCode("SOURCE_NOT_FOUND").
		WithMetadata(map[string]any{"path": path})
}

func missingColumnError(column string) error {
	return goerrors.New("catalog source missing required column", goerrors.CategoryValidation).
		WithTextCode("MISSING_COLUMN").
		WithMetadata(map[string]any{"column": column})
}
