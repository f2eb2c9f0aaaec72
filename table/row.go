package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
)

// rowImpl is a view over a single record of a tableImpl. Mutations
// made through a rowImpl are visible in the Table it was taken from.
type rowImpl struct {
	values []interface{} // a slice of a table's row data
	schema tidy.Schema
}

// CreateRow builds a standalone Row from a schema and values, without validating them
func CreateRow(schema tidy.Schema, values []interface{}) tidy.Row {
	return &rowImpl{values: values, schema: schema}
}

// Schema returns the schema for this row
func (r *rowImpl) Schema() tidy.Schema {
	return r.schema
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.schema.ForEachColumn(func(name string, col tidy.Column) error {
		var val string
		if v := r.values[col.Index()]; v == nil {
			val = "nil"
		} else {
			val = col.Type().ToString(v)
		}
		fmt.Fprintf(&res, "\"%s\": %s,", name, val)
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}

// Values returns a copy of the values in this row, in column index order
func (r *rowImpl) Values() []interface{} {
	vals := make([]interface{}, len(r.values))
	copy(vals, r.values)
	return vals
}

// IsNil returns true iff the given column value is missing in this row. If the column does not exist, this function will return false.
func (r *rowImpl) IsNil(colName string) bool {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return false
	}
	return r.values[col.Index()] == nil
}

// SetNil marks the given column value as missing within this row
func (r *rowImpl) SetNil(colName string) error {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	r.values[col.Index()] = nil
	return nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (interface{}, error) {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return r.values[col.Index()], nil
}

// Set stores a value in the column with the given name, if the value fits the column's type. A nil value marks the column as missing.
func (r *rowImpl) Set(colName string, value interface{}) error {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return err
	}
	value, err = checkValue(colName, col.Type(), value)
	if err != nil {
		return err
	}
	r.values[col.Index()] = value
	return nil
}

func (r *rowImpl) getNotNil(colName string) (interface{}, tidy.Column, error) {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, nil, err
	}
	v := r.values[col.Index()]
	if v == nil {
		return nil, nil, errors.NilValueError{Name: colName}
	}
	return v, col, nil
}

// GetString retrieves a single string from a VarString or Category column
func (r *rowImpl) GetString(colName string) (string, error) {
	v, col, err := r.getNotNil(colName)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.TypeMismatchError{Name: colName, Type: tidy.TypeName(col.Type()), Value: v}
	}
	return s, nil
}

// GetInt64 retrieves a value from any integer column, widened to int64
func (r *rowImpl) GetInt64(colName string) (int64, error) {
	v, col, err := r.getNotNil(colName)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	}
	return 0, errors.TypeMismatchError{Name: colName, Type: tidy.TypeName(col.Type()), Value: v}
}

// GetFloat64 retrieves a value from any numeric column, widened to float64
func (r *rowImpl) GetFloat64(colName string) (float64, error) {
	v, col, err := r.getNotNil(colName)
	if err != nil {
		return 0, err
	}
	f, ok := ToFloat64(v)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Type: tidy.TypeName(col.Type()), Value: v}
	}
	return f, nil
}

// ToFloat64 widens any numeric value to a float64
func ToFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// GetBool retrieves a single bool from the column with the given name
func (r *rowImpl) GetBool(colName string) (bool, error) {
	v, col, err := r.getNotNil(colName)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.TypeMismatchError{Name: colName, Type: tidy.TypeName(col.Type()), Value: v}
	}
	return b, nil
}

// GetTime retrieves a single Time from the column with the given name
func (r *rowImpl) GetTime(colName string) (time.Time, error) {
	v, col, err := r.getNotNil(colName)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, errors.TypeMismatchError{Name: colName, Type: tidy.TypeName(col.Type()), Value: v}
	}
	return t, nil
}

// checkValue validates a value against a ColumnType, returning the value which should be stored
func checkValue(colName string, colType tidy.ColumnType, value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	if !colType.Accepts(value) {
		return nil, errors.TypeMismatchError{Name: colName, Type: tidy.TypeName(colType), Value: value}
	}
	// categorical values share storage with their level
	if cat, ok := colType.(*tidy.CategoryColumnType); ok {
		level, _ := cat.Level(value.(string))
		return level, nil
	}
	return value, nil
}
