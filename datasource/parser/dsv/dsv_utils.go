package dsv

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
)

// Parses a slice of strings into row values, according to a schema. keep selects the fields of rowStrings which
// correspond to each column, and width is the expected number of fields.
func scanRow(conf *ParserConf, names []string, colTypes []tidy.ColumnType, keep []int, width int, rowStrings []string) ([]interface{}, error) {
	if len(rowStrings) != width {
		return nil, errors.IncompatibleRowError{Expected: width, Actual: len(rowStrings)}
	}
	values := make([]interface{}, len(names))
	for i, field := range keep {
		colVal := rowStrings[field]
		// check for a nil value
		if len(colVal) == 0 || colVal == conf.NilValue {
			continue
		}
		v, err := parseValue(names[i], colTypes[i], colVal)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// parseValue parses a single field according to a ColumnType
func parseValue(name string, colType tidy.ColumnType, colVal string) (interface{}, error) {
	switch ct := colType.(type) {
	case *tidy.BoolColumnType:
		return strconv.ParseBool(colVal)
	case *tidy.Uint8ColumnType:
		ival, err := strconv.ParseUint(colVal, 10, 8)
		return uint8(ival), err
	case *tidy.Uint16ColumnType:
		ival, err := strconv.ParseUint(colVal, 10, 16)
		return uint16(ival), err
	case *tidy.Uint32ColumnType:
		ival, err := strconv.ParseUint(colVal, 10, 32)
		return uint32(ival), err
	case *tidy.Uint64ColumnType:
		return strconv.ParseUint(colVal, 10, 64)
	case *tidy.Int8ColumnType:
		ival, err := strconv.ParseInt(colVal, 10, 8)
		return int8(ival), err
	case *tidy.Int16ColumnType:
		ival, err := strconv.ParseInt(colVal, 10, 16)
		return int16(ival), err
	case *tidy.Int32ColumnType:
		ival, err := strconv.ParseInt(colVal, 10, 32)
		return int32(ival), err
	case *tidy.Int64ColumnType:
		return strconv.ParseInt(colVal, 10, 64)
	case *tidy.Float32ColumnType:
		fval, err := strconv.ParseFloat(colVal, 32)
		return float32(fval), err
	case *tidy.Float64ColumnType:
		return strconv.ParseFloat(colVal, 64)
	case *tidy.TimeColumnType:
		format := ct.Format
		if format == "" {
			format = time.RFC3339
		}
		tval, err := time.Parse(format, colVal)
		if err != nil {
			return nil, fmt.Errorf("Column %s could not be parsed as datetime with format %s. Was: %#v", name, format, colVal)
		}
		return tval, nil
	case *tidy.VarStringColumnType, *tidy.CategoryColumnType:
		return colVal, nil
	default:
		return nil, fmt.Errorf("DSV parsing does not support column type %T", colType)
	}
}

// FormatValue renders a value for output as a DSV field. Missing values are rendered as nilValue.
func FormatValue(colType tidy.ColumnType, v interface{}, nilValue string) string {
	if v == nil {
		return nilValue
	}
	if s, ok := v.(string); ok {
		return s
	}
	return colType.ToString(v)
}
