package jsonl

import (
	"fmt"
	"time"

	"github.com/go-sif/tidy"
	"github.com/tidwall/gjson"
)

// ParseJSONRow extracts row values from parsed JSON, using each column name as a gjson path. Missing
// and null values are nil.
func ParseJSONRow(names []string, colTypes []tidy.ColumnType, data gjson.Result) ([]interface{}, error) {
	values := make([]interface{}, len(names))
	for i, colName := range names {
		val := data.Get(colName)
		if !val.Exists() || val.Type == gjson.Null {
			continue
		}
		v, err := parseValue(val, colName, colTypes[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseValue(val gjson.Result, colName string, colType tidy.ColumnType) (interface{}, error) {
	// parse type
	switch ct := colType.(type) {
	case *tidy.BoolColumnType:
		if val.Type != gjson.True && val.Type != gjson.False {
			return nil, fmt.Errorf("Column %s was not a boolean. Was: %s", colName, val.Raw)
		}
		return val.Bool(), nil
	case *tidy.Uint8ColumnType, *tidy.Uint16ColumnType, *tidy.Uint32ColumnType, *tidy.Uint64ColumnType,
		*tidy.Int8ColumnType, *tidy.Int16ColumnType, *tidy.Int32ColumnType, *tidy.Int64ColumnType,
		*tidy.Float32ColumnType, *tidy.Float64ColumnType:
		if val.Type != gjson.Number {
			return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
		}
		return numberAs(val, colType), nil
	case *tidy.TimeColumnType:
		if val.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, val.Raw)
		}
		format := ct.Format
		if format == "" {
			format = time.RFC3339
		}
		tval, err := time.Parse(format, val.String())
		if err != nil {
			return nil, fmt.Errorf("Column %s could not be parsed as datetime with format %s. Was: %s", colName, format, val.Raw)
		}
		return tval, nil
	case *tidy.VarStringColumnType, *tidy.CategoryColumnType:
		if val.Type != gjson.String {
			return nil, fmt.Errorf("Column %s was not a string. Was: %s", colName, val.Raw)
		}
		return val.String(), nil
	default:
		return nil, fmt.Errorf("JSONL parsing does not support column type %T", colType)
	}
}

func numberAs(val gjson.Result, colType tidy.ColumnType) interface{} {
	switch colType.(type) {
	case *tidy.Uint8ColumnType:
		return uint8(val.Uint())
	case *tidy.Uint16ColumnType:
		return uint16(val.Uint())
	case *tidy.Uint32ColumnType:
		return uint32(val.Uint())
	case *tidy.Uint64ColumnType:
		return val.Uint()
	case *tidy.Int8ColumnType:
		return int8(val.Int())
	case *tidy.Int16ColumnType:
		return int16(val.Int())
	case *tidy.Int32ColumnType:
		return int32(val.Int())
	case *tidy.Int64ColumnType:
		return val.Int()
	case *tidy.Float32ColumnType:
		return float32(val.Float())
	default:
		return val.Float()
	}
}
