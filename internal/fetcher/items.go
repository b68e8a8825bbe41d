package fetcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/model"
)

// Format is an input file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// attrColumns are tabular columns copied to item attributes instead of features.
var attrColumns = map[string]bool{"id": true, "name": true, "lat": true, "lon": true}

// FormatOf infers the input format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", eris.Errorf("fetcher: unsupported input %q (want .json, .csv or .xlsx)", path)
	}
}

// LoadItems reads candidate locations from a JSON, CSV or XLSX file.
func LoadItems(ctx context.Context, path string) ([]model.Item, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	if format == FormatXLSX {
		rowCh, errCh := StreamXLSX(ctx, path, XLSXOptions{})
		return collectTable(rowCh, errCh)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	if format == FormatCSV {
		return ReadCSVItems(ctx, f)
	}
	return ReadJSONItems(ctx, f)
}

// ReadCSVItems parses a CSV table with a header row into items.
func ReadCSVItems(ctx context.Context, r io.Reader) ([]model.Item, error) {
	rowCh, errCh := StreamCSV(ctx, r, CSVOptions{TrimSpace: true})
	return collectTable(rowCh, errCh)
}

func collectTable(rowCh <-chan []string, errCh <-chan error) ([]model.Item, error) {
	var (
		header []string
		items  []model.Item
	)
	for row := range rowCh {
		if header == nil {
			header = normalizeHeader(row)
			continue
		}
		if it, ok := rowToItem(header, row); ok {
			items = append(items, it)
		}
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	if header == nil {
		return nil, nil
	}
	return items, nil
}

func normalizeHeader(row []string) []string {
	header := make([]string, len(row))
	for i, h := range row {
		h = strings.TrimPrefix(h, "\ufeff")
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return header
}

// rowToItem maps one table row onto an item. Blank cells are treated as
// absent; cells that are not numbers are kept as text and score as 0.
func rowToItem(header, row []string) (model.Item, bool) {
	it := model.Item{Attrs: map[string]any{}, Features: feature.Set{}}
	blank := true

	for i, cell := range row {
		if i >= len(header) || header[i] == "" {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		blank = false

		col := header[i]
		switch {
		case col == "id" || col == "name":
			it.Attrs[col] = cell
		case attrColumns[col]:
			if v, ok := feature.Parse(cell); ok {
				it.Attrs[col] = v
			}
		default:
			if v, ok := feature.Parse(cell); ok {
				it.Features[col] = v
			} else {
				it.Features[col] = cell
			}
		}
	}
	return it, !blank
}
