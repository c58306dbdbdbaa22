// Package csvfile reads comma-separated files with a header row into
// simple in-memory tables.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Table is an in-memory CSV file: the header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read loads the file at path as a table. A missing file surfaces the
// underlying fs error (errors.Is(err, fs.ErrNotExist) holds); malformed
// content surfaces a *ParseError.
func Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// The header row fixes the record width; ragged rows are parse errors.
	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, wrapParseError(path, err)
	}
	if len(records) == 0 {
		return Table{}, &ParseError{File: filepath.Base(path), Err: errors.New("missing header row")}
	}

	return Table{Header: records[0], Rows: records[1:]}, nil
}

// ColumnIndex returns the position of a named header column.
func (t Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.Header {
		if col == name {
			return i, true
		}
	}
	return 0, false
}

// Index maps every header column to its position.
func (t Table) Index() map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, col := range t.Header {
		idx[col] = i
	}
	return idx
}

func wrapParseError(path string, err error) error {
	line := 0
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		line = csvErr.Line
	}
	return &ParseError{File: filepath.Base(path), Line: line, Err: err}
}
