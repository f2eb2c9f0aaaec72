package table

import (
	"github.com/go-sif/tidy"
)

// commonType returns a ColumnType able to hold the values of both a and b, or false if there is none.
// Strings and Categories share VarString; numbers widen to the narrowest type holding both ranges,
// falling back to Float64.
func commonType(a tidy.ColumnType, b tidy.ColumnType) (tidy.ColumnType, bool) {
	if tidy.SameType(a, b) {
		if cat, ok := a.(*tidy.CategoryColumnType); ok {
			return mergeLevels(cat, b.(*tidy.CategoryColumnType)), true
		}
		return a, true
	}
	ka, kb := tidy.KindOf(a), tidy.KindOf(b)
	if ka == tidy.StringKind && kb == tidy.StringKind {
		return &tidy.VarStringColumnType{}, true
	}
	if !isNumericKind(ka) || !isNumericKind(kb) {
		return nil, false
	}
	switch {
	case ka == tidy.FloatKind || kb == tidy.FloatKind:
		return &tidy.Float64ColumnType{}, true
	case ka == kb && ka == tidy.IntegerKind:
		return signedOfSize(maxInt(a.Size(), b.Size())), true
	case ka == kb:
		return unsignedOfSize(maxInt(a.Size(), b.Size())), true
	}
	signed, unsigned := a, b
	if ka == tidy.UnsignedKind {
		signed, unsigned = b, a
	}
	if unsigned.Size() < signed.Size() {
		return signed, true
	}
	if unsigned.Size() < 8 {
		return signedOfSize(2 * unsigned.Size()), true
	}
	return &tidy.Float64ColumnType{}, true
}

func isNumericKind(k tidy.Kind) bool {
	return k == tidy.IntegerKind || k == tidy.UnsignedKind || k == tidy.FloatKind
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func signedOfSize(size int) tidy.ColumnType {
	switch size {
	case 1:
		return &tidy.Int8ColumnType{}
	case 2:
		return &tidy.Int16ColumnType{}
	case 4:
		return &tidy.Int32ColumnType{}
	default:
		return &tidy.Int64ColumnType{}
	}
}

func unsignedOfSize(size int) tidy.ColumnType {
	switch size {
	case 1:
		return &tidy.Uint8ColumnType{}
	case 2:
		return &tidy.Uint16ColumnType{}
	case 4:
		return &tidy.Uint32ColumnType{}
	default:
		return &tidy.Uint64ColumnType{}
	}
}

// convertValue converts a non-nil value to the Go type stored by colType, which must be a
// commonType of the value's own ColumnType
func convertValue(v interface{}, colType tidy.ColumnType) interface{} {
	if v == nil {
		return nil
	}
	switch colType.(type) {
	case *tidy.VarStringColumnType:
		return v
	case *tidy.Float64ColumnType:
		return asFloat64(v)
	case *tidy.Float32ColumnType:
		return float32(asFloat64(v))
	case *tidy.Int8ColumnType:
		return int8(asInt64(v))
	case *tidy.Int16ColumnType:
		return int16(asInt64(v))
	case *tidy.Int32ColumnType:
		return int32(asInt64(v))
	case *tidy.Int64ColumnType:
		return asInt64(v)
	case *tidy.Uint8ColumnType:
		return uint8(asUint64(v))
	case *tidy.Uint16ColumnType:
		return uint16(asUint64(v))
	case *tidy.Uint32ColumnType:
		return uint32(asUint64(v))
	case *tidy.Uint64ColumnType:
		return asUint64(v)
	}
	return v
}

func asFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	case uint8, uint16, uint32, uint64:
		return float64(asUint64(v))
	}
	return float64(asInt64(v))
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
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
		return int64(n)
	}
	return 0
}

func asUint64(v interface{}) uint64 {
	switch n := v.(type) {
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	}
	return uint64(asInt64(v))
}
