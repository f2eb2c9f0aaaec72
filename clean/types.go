package clean

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/datasource/parser/dsv"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/table"
)

// Target kinds for FixColDataType
const (
	FloatKind    = "float"
	IntKind      = "int"
	DatetimeKind = "datetime"
	StringKind   = "str"
)

// DatetimeLayouts are tried, in order, when coercing strings to datetimes
var DatetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
}

// FixColDataType produces a new Table in which a column has been coerced to a kind of data:
//
//   "float", "int":  values are parsed as numbers. The column becomes Int64 if every value is
//                    integral, and Float64 otherwise.
//   "datetime":      values are parsed as times, trying each of DatetimeLayouts. Numbers are
//                    treated as nanoseconds since the Unix epoch.
//   "str":           values are rendered as strings.
//
// Values which cannot be coerced become nil.
func FixColDataType(t tidy.Table, colName string, kind string) (tidy.Table, error) {
	col, err := t.Schema().GetColumn(colName)
	if err != nil {
		return nil, err
	}
	values, err := t.Column(colName)
	if err != nil {
		return nil, err
	}
	var colType tidy.ColumnType
	switch kind {
	case FloatKind, IntKind:
		colType = toNumeric(values)
	case DatetimeKind:
		for i, v := range values {
			values[i] = toTime(v)
		}
		colType = &tidy.TimeColumnType{}
	case StringKind:
		for i, v := range values {
			if v != nil {
				values[i] = dsv.FormatValue(col.Type(), v, "")
			}
		}
		colType = &tidy.VarStringColumnType{}
	default:
		return nil, errors.InvalidArgumentError{
			Name:   "kind",
			Reason: fmt.Sprintf("must be one of %s, %s, %s or %s, was %q", FloatKind, IntKind, DatetimeKind, StringKind, kind),
		}
	}
	return table.ReplaceColumn(t, colName, colType, values)
}

// toNumeric coerces values in place to int64 or float64, returning the resulting ColumnType
func toNumeric(values []interface{}) tidy.ColumnType {
	integral := true
	for i, v := range values {
		n := toNumber(v)
		values[i] = n
		if f, ok := n.(float64); ok && !isIntegral(f) {
			integral = false
		}
	}
	for i, v := range values {
		switch n := v.(type) {
		case int64:
			if !integral {
				values[i] = float64(n)
			}
		case float64:
			if integral {
				values[i] = int64(n)
			}
		}
	}
	if integral {
		return &tidy.Int64ColumnType{}
	}
	return &tidy.Float64ColumnType{}
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// toNumber returns v as an int64 or float64, or nil if it is not numeric
func toNumber(v interface{}) interface{} {
	switch n := v.(type) {
	case nil:
		return nil
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		if n > math.MaxInt64 {
			return float64(n)
		}
		return int64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	case bool:
		if n {
			return int64(1)
		}
		return int64(0)
	case time.Time:
		return n.UnixNano()
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return nil
}

// toTime returns v as a time.Time, or nil if it cannot be interpreted as one
func toTime(v interface{}) interface{} {
	switch n := v.(type) {
	case nil:
		return nil
	case time.Time:
		return n
	case string:
		s := strings.TrimSpace(n)
		for _, layout := range DatetimeLayouts {
			if tval, err := time.Parse(layout, s); err == nil {
				return tval
			}
		}
		return nil
	}
	switch num := toNumber(v).(type) {
	case int64:
		return time.Unix(0, num).UTC()
	case float64:
		if math.IsNaN(num) || math.IsInf(num, 0) {
			return nil
		}
		return time.Unix(0, int64(num)).UTC()
	}
	return nil
}
