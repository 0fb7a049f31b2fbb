package twistlock

import (
	"encoding/csv"
	"io"
	"strings"

	"golang.org/x/xerrors"
)

const utf8BOM = "\xEF\xBB\xBF"

// Row is a single data row of a Twistlock CSV export. Values are looked up by column name.
type Row struct {
	Line    int
	columns map[string]int
	values  []string
}

// Get returns the value of the named column.
func (r Row) Get(column string) (string, error) {
	i, ok := r.columns[column]
	if !ok || i >= len(r.values) {
		return "", &MissingFieldError{Line: r.Line, Field: column}
	}
	return r.values[i], nil
}

// Reader reads the data rows of a Twistlock CSV export, header included.
type Reader struct {
	reader  *csv.Reader
	header  []string
	columns map[string]int
}

// newCSVReader accepts ragged rows and stray quotes inside unquoted fields,
// which Twistlock writes verbatim from vulnerability descriptions.
func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// NewReader consumes the header row of r.
func NewReader(r io.Reader) (*Reader, error) {
	reader := newCSVReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &UnknownSchemaError{Column: "", Known: knownKeys()}
	}
	if err != nil {
		return nil, xerrors.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	// When a column name repeats the last occurrence wins.
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	return &Reader{
		reader:  reader,
		header:  header,
		columns: columns,
	}, nil
}

// Header returns the column names of the export.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next data row, or io.EOF when there are no more rows.
func (r *Reader) Next() (Row, error) {
	values, err := r.reader.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	if err != nil {
		return Row{}, xerrors.Errorf("reading row: %w", err)
	}

	line, _ := r.reader.FieldPos(0)
	return Row{
		Line:    line,
		columns: r.columns,
		values:  values,
	}, nil
}
