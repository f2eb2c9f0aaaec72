package clean

import (
	"math"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/table"
)

// float32Epsilon is the difference between 1 and the next float32
const float32Epsilon = 1.0 / (1 << 23)

// CategoryThreshold is the proportion of rows which must exceed the number of unique values
// in a string column for CompressTable to convert it to a CategoryColumnType
const CategoryThreshold = 0.5

// CompressTable produces a new Table whose columns use the smallest suitable ColumnTypes:
// VarString columns with few unique values become Category columns, signed integer columns
// with no negative values become the narrowest unsigned type which fits them, and Float64
// columns whose values survive narrowing become Float32 columns.
func CompressTable(t tidy.Table) (tidy.Table, error) {
	result := t
	for _, name := range t.Schema().ColumnNames() {
		col, err := result.Schema().GetColumn(name)
		if err != nil {
			return nil, err
		}
		values, err := result.Column(name)
		if err != nil {
			return nil, err
		}
		var colType tidy.ColumnType
		switch col.Type().(type) {
		case *tidy.VarStringColumnType:
			colType = compressStrings(values, result.NumRows())
		case *tidy.Int8ColumnType, *tidy.Int16ColumnType, *tidy.Int32ColumnType, *tidy.Int64ColumnType:
			colType = compressIntegers(values)
		case *tidy.Float64ColumnType:
			colType = compressFloats(values)
		}
		if colType == nil {
			continue
		}
		if result, err = table.ReplaceColumn(result, name, colType, values); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func compressStrings(values []interface{}, numRows int) tidy.ColumnType {
	unique := make(map[string]bool)
	for _, v := range values {
		if v != nil {
			unique[v.(string)] = true
		}
	}
	if float64(len(unique)) >= CategoryThreshold*float64(numRows) {
		return nil
	}
	levels := make([]string, 0, len(unique))
	for level := range unique {
		levels = append(levels, level)
	}
	return tidy.CreateCategoryColumnType(levels...)
}

// compressIntegers narrows non-negative signed integers in place
func compressIntegers(values []interface{}) tidy.ColumnType {
	var max int64
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		n, _ := toNumber(v).(int64)
		if n < 0 {
			return nil
		}
		if n > max {
			max = n
		}
		found = true
	}
	if !found {
		return nil
	}
	var colType tidy.ColumnType
	var narrow func(int64) interface{}
	switch {
	case max <= math.MaxUint8:
		colType, narrow = &tidy.Uint8ColumnType{}, func(n int64) interface{} { return uint8(n) }
	case max <= math.MaxUint16:
		colType, narrow = &tidy.Uint16ColumnType{}, func(n int64) interface{} { return uint16(n) }
	case max <= math.MaxUint32:
		colType, narrow = &tidy.Uint32ColumnType{}, func(n int64) interface{} { return uint32(n) }
	default:
		colType, narrow = &tidy.Uint64ColumnType{}, func(n int64) interface{} { return uint64(n) }
	}
	for i, v := range values {
		if v != nil {
			values[i] = narrow(toNumber(v).(int64))
		}
	}
	return colType
}

// compressFloats narrows float64s in place, if every one of them fits within a float32
func compressFloats(values []interface{}) tidy.ColumnType {
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !fitsFloat32(v.(float64)) {
			return nil
		}
		found = true
	}
	if !found {
		return nil
	}
	for i, v := range values {
		if v != nil {
			values[i] = float32(v.(float64))
		}
	}
	return &tidy.Float32ColumnType{}
}

func fitsFloat32(f float64) bool {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return true
	}
	if math.Abs(f) > math.MaxFloat32 {
		return false
	}
	return math.Abs(float64(float32(f))-f) <= float32Epsilon*math.Abs(f)
}
