// Package table provides a small column-ordered table over string cells with
// CSV input/output, pure column projection, and numeric cell access. Missing
// values are empty cells; a derived float column writes NaN back as an empty
// cell so a round trip through CSV preserves missingness.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmpty indicates a CSV with no header row.
	ErrEmpty = errors.New("table: empty input, expected a header row")
	// ErrDuplicateColumn indicates a header naming the same column twice.
	ErrDuplicateColumn = errors.New("table: duplicate column name")
)

// Table is an in-memory tabular dataset: one header naming the columns and one
// string cell per row and column. Column order is preserved from input to
// output; derived columns are appended on the right.
type Table struct {
	cols []string
	idx  map[string]int
	rows [][]string
}

// New returns an empty table with the given column names.
func New(cols []string) (*Table, error) {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := idx[c]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c)
		}
		idx[c] = i
	}
	return &Table{cols: append([]string(nil), cols...), idx: idx}, nil
}

// ReadCSV reads a comma-delimited file with one header row. Structural damage
// (ragged rows, bad quoting) is a fatal parse error.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()
	t, err := ReadCSVFrom(f)
	if err != nil {
		return nil, fmt.Errorf("table: parse %s: %w", path, err)
	}
	return t, nil
}

// ReadCSVFrom reads CSV from r. The first record is the header; every later
// record must have the same field count.
func ReadCSVFrom(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	t, err := New(header)
	if err != nil {
		return nil, err
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.rows = append(t.rows, rec)
	}
}

// WriteCSV writes the table to path, header first.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("table: create %s: %w", path, err)
	}
	if err := t.WriteCSVTo(f); err != nil {
		f.Close()
		return fmt.Errorf("table: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("table: write %s: %w", path, err)
	}
	return nil
}

// WriteCSVTo writes the table to w, header first.
func (t *Table) WriteCSVTo(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the column names in order.
func (t *Table) Columns() []string { return append([]string(nil), t.cols...) }

// Has reports whether the table contains the named column.
func (t *Table) Has(col string) bool {
	_, ok := t.idx[col]
	return ok
}

// Select returns a projection keeping only the columns present in both the
// table and names, in names order. Absent names are skipped without error.
func (t *Table) Select(names []string) *Table {
	var keep []int
	var cols []string
	for _, name := range names {
		if i, ok := t.idx[name]; ok {
			keep = append(keep, i)
			cols = append(cols, name)
		}
	}
	out, _ := New(cols)
	out.rows = make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells := make([]string, len(keep))
		for j, i := range keep {
			cells[j] = row[i]
		}
		out.rows[r] = cells
	}
	return out
}

// String returns the raw cell text, or "" if the column is absent.
func (t *Table) String(row int, col string) string {
	i, ok := t.idx[col]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

// Strings returns the whole column as raw cell text; nil if absent.
func (t *Table) Strings(col string) []string {
	i, ok := t.idx[col]
	if !ok {
		return nil
	}
	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out
}

// Float parses the cell as a number. An absent column, empty cell, or
// unparsable value yields (NaN, false); those cells count as missing.
func (t *Table) Float(row int, col string) (float64, bool) {
	i, ok := t.idx[col]
	if !ok {
		return math.NaN(), false
	}
	s := strings.TrimSpace(t.rows[row][i])
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

// Floats returns the whole column as float64 with NaN for missing cells. An
// absent column is all-NaN with length Len().
func (t *Table) Floats(col string) []float64 {
	out := make([]float64, len(t.rows))
	for r := range t.rows {
		v, ok := t.Float(r, col)
		if !ok {
			v = math.NaN()
		}
		out[r] = v
	}
	return out
}

// AddFloats appends a derived column. NaN values become empty cells. The
// slice length must equal Len().
func (t *Table) AddFloats(name string, vals []float64) error {
	if _, dup := t.idx[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if len(vals) != len(t.rows) {
		return fmt.Errorf("table: column %q has %d values for %d rows", name, len(vals), len(t.rows))
	}
	t.idx[name] = len(t.cols)
	t.cols = append(t.cols, name)
	for r := range t.rows {
		cell := ""
		if !math.IsNaN(vals[r]) {
			cell = strconv.FormatFloat(vals[r], 'g', -1, 64)
		}
		t.rows[r] = append(t.rows[r], cell)
	}
	return nil
}
