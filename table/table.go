package table

import (
	"fmt"
	"log"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

// tableImpl is Tidy's internal implementation of Table
type tableImpl struct {
	id     string
	rows   [][]interface{}
	schema tidy.Schema
}

// createTableImpl creates a new, empty Table with a schema
func createTableImpl(schema tidy.Schema, initialCapacity int) *tableImpl {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Table: %v", err)
	}
	return &tableImpl{
		id:     id.String(),
		rows:   make([][]interface{}, 0, initialCapacity),
		schema: schema,
	}
}

// CreateTable creates a new, empty Table with a schema
func CreateTable(schema tidy.Schema) tidy.BuildableTable {
	return createTableImpl(schema, 0)
}

// FromRows creates a new Table from a schema and row values. Every row which does
// not fit the schema is reported.
func FromRows(schema tidy.Schema, rows [][]interface{}) (tidy.BuildableTable, error) {
	t := createTableImpl(schema, len(rows))
	if err := t.AppendRows(rows); err != nil {
		return nil, err
	}
	return t, nil
}

// ID retrieves the ID of this Table
func (t *tableImpl) ID() string {
	return t.id
}

// Schema returns the Schema of this Table
func (t *tableImpl) Schema() tidy.Schema {
	return t.schema
}

// NumRows returns the number of rows in this Table
func (t *tableImpl) NumRows() int {
	return len(t.rows)
}

// GetRow retrieves a specific row from this Table
func (t *tableImpl) GetRow(rowNum int) tidy.Row {
	return &rowImpl{values: t.rows[rowNum], schema: t.schema}
}

// ForEachRow iterates over Rows in this Table, in order
func (t *tableImpl) ForEachRow(fn tidy.MapOperation) error {
	row := &rowImpl{schema: t.schema}
	for i := range t.rows {
		row.values = t.rows[i]
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// Column returns the values of a column, in row order
func (t *tableImpl) Column(colName string) ([]interface{}, error) {
	col, err := t.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	idx := col.Index()
	vals := make([]interface{}, len(t.rows))
	for i, row := range t.rows {
		vals[i] = row[idx]
	}
	return vals, nil
}

// Clone returns a deep copy of this Table
func (t *tableImpl) Clone() tidy.Table {
	result := createTableImpl(t.schema.Clone(), len(t.rows))
	for _, row := range t.rows {
		result.rows = append(result.rows, copyValues(row))
	}
	return result
}

// AppendRow adds a Row to the end of this Table, if it fits within the schema
func (t *tableImpl) AppendRow(values ...interface{}) error {
	if len(values) != t.schema.NumColumns() {
		return errors.IncompatibleRowError{Expected: t.schema.NumColumns(), Actual: len(values)}
	}
	row := make([]interface{}, len(values))
	names := t.schema.ColumnNames()
	var multierr *multierror.Error
	for i, colType := range t.schema.ColumnTypes() {
		v, err := checkValue(names[i], colType, values[i])
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		row[i] = v
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return err
	}
	t.rows = append(t.rows, row)
	return nil
}

// AppendRows adds many Rows to the end of this Table. Rows which fit the schema are
// appended even when others do not; every failure is reported.
func (t *tableImpl) AppendRows(rows [][]interface{}) error {
	var multierr *multierror.Error
	for i, values := range rows {
		if err := t.AppendRow(values...); err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("row %d: %w", i, err))
		}
	}
	return multierr.ErrorOrNil()
}

// appendOwned appends a row slice without validating or copying it
func (t *tableImpl) appendOwned(row []interface{}) {
	t.rows = append(t.rows, row)
}

func copyValues(values []interface{}) []interface{} {
	res := make([]interface{}, len(values))
	copy(res, values)
	return res
}
