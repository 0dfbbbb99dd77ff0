package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Header is the column order used when writing rows.
var Header = []string{ColumnName, ColumnPrice, ColumnQuantity, ColumnDate}

// Row is one data row of a source file.
type Row struct {
	// Line is the 1-based line (or sheet row) number, header included.
	Line int
	// Fields maps column name to raw cell text.
	Fields map[string]string
}

// ReadRows reads every data row of a .csv or .xlsx file.
// A missing file or a header without the expected columns is an error; malformed
// cells are left for ParseRow to reject.
func ReadRows(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readSheet(path)
	default:
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		rows, err := DecodeCSV(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return rows, nil
	}
}

// DecodeCSV reads rows from a comma separated stream with a header line.
func DecodeCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, Row{Line: line, Fields: fieldsOf(record, columns)})
	}

	return rows, nil
}

func readSheet(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	columns, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, Row{Line: i + 2, Fields: fieldsOf(record, columns)})
	}
	return rows, nil
}

// headerIndex maps each required column to its position in header.
func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	var missing []string
	for _, name := range Header {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header is missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func fieldsOf(record []string, columns map[string]int) map[string]string {
	fields := make(map[string]string, len(Header))
	for _, name := range Header {
		if i := columns[name]; i < len(record) {
			fields[name] = record[i]
		} else {
			fields[name] = ""
		}
	}
	return fields
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// WriteRows replaces the file at path with Header followed by records.
// The format follows the extension, as in ReadRows.
func WriteRows(path string, records [][]string) error {
	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return writeSheet(path, records)
	}
	return writeCSV(path, records)
}

// writeCSV writes to a temporary file next to path and renames it into place, so
// a failed export never leaves a truncated backup behind.
func writeCSV(path string, records [][]string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err = w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeSheet(path string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]string{Header}, records...)
	for i, record := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := record
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
