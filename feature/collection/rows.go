package collection

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"collection-manager/core/resolver"

	"github.com/xuri/excelize/v2"
)

// Format is the file format of a collection sheet.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// xlsxSheet names the sheet written to new workbooks.
const xlsxSheet = "Collection"

// Header is the column layout of written sheets.
var Header = []string{
	resolver.FieldSet,
	resolver.FieldName,
	resolver.FieldNumber,
	resolver.FieldScryfallID,
	resolver.FieldNonfoil,
	resolver.FieldFoil,
}

// ErrUnsupportedFormat is returned for paths that are neither .csv nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported sheet format")

// SheetRow is one written line: a printing and its counts.
type SheetRow struct {
	Set        string
	Name       string
	Number     string
	ScryfallID string
	Nonfoil    int
	Foil       int
}

// FormatOf returns the sheet format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadRows reads a sheet and converts every record into a resolver row.
func ReadRows(path string) ([]resolver.Row, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}

	rows := make([]resolver.Row, 0, len(records))
	for i, rec := range records {
		row, err := resolver.RowFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadRecords reads the header-keyed records of a CSV or XLSX sheet.
func ReadRecords(path string) ([]map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case FormatXLSX:
		return readXLSX(f)
	default:
		return readCSV(f)
	}
}

func readCSV(r io.Reader) ([]map[string]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines [][]string
	for {
		line, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return toRecords(header, lines), nil
}

func readXLSX(r io.Reader) ([]map[string]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	var fallback [][]string
	for i, sheet := range sheets {
		lines, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		if i == 0 {
			fallback = lines
		}
		if len(lines) > 0 && hasCollectionColumns(lines[0]) {
			return toRecords(lines[0], lines[1:]), nil
		}
	}

	if len(fallback) == 0 {
		return nil, nil
	}
	return toRecords(fallback[0], fallback[1:]), nil
}

func hasCollectionColumns(header []string) bool {
	for _, name := range header {
		switch normalizeColumn(name) {
		case resolver.FieldScryfallID, resolver.FieldName:
			return true
		}
	}
	return false
}

// toRecords keys each line by the normalized header, skipping blank lines.
func toRecords(header []string, lines [][]string) []map[string]any {
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = normalizeColumn(name)
	}

	records := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		rec := make(map[string]any, len(columns))
		for i, col := range columns {
			if col == "" || i >= len(line) {
				continue
			}
			rec[col] = line[i]
		}
		records = append(records, rec)
	}
	return records
}

func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func isBlank(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// WriteRows writes rows under Header, in the format implied by path.
// An existing file at path is replaced only once the new content is complete.
func WriteRows(path string, rows []SheetRow) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	return replaceFile(path, func(w io.Writer) error {
		if format == FormatXLSX {
			return writeXLSX(w, rows)
		}
		return writeCSV(w, rows)
	})
}

// replaceFile writes to a temporary file next to path and renames it over path.
// On failure path is left untouched and the temporary file is removed.
func replaceFile(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func writeCSV(w io.Writer, rows []SheetRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{
			row.Set,
			row.Name,
			row.Number,
			row.ScryfallID,
			countCell(row.Nonfoil),
			countCell(row.Foil),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, rows []SheetRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, name := range Header {
		header[i] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []any{
			row.Set,
			row.Name,
			row.Number,
			row.ScryfallID,
			countValue(row.Nonfoil),
			countValue(row.Foil),
		}); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

// countCell leaves zero counts blank so full sheets stay readable.
func countCell(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func countValue(n int) any {
	if n == 0 {
		return nil
	}
	return n
}
