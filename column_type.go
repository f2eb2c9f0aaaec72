package tidy

import (
	"fmt"
	"reflect"
	"time"
)

// ColumnType is an interface which is implemented to define supported column types.
// Tidy provides a variety of built-in types within this package.
type ColumnType interface {
	Size() int                     // returns size in bytes of a value of this type, or 0 for variable-length types
	ToString(v interface{}) string // produces a string representation of a value of this type
	Accepts(v interface{}) bool    // returns true iff v is a valid, non-nil value of this type
}

// Kind broadly classifies ColumnTypes, for operations which treat all numbers (or all strings) alike
type Kind int

const (
	// StringKind covers VarString and Category columns
	StringKind Kind = iota
	// IntegerKind covers signed integer columns
	IntegerKind
	// UnsignedKind covers unsigned integer columns
	UnsignedKind
	// FloatKind covers floating point columns
	FloatKind
	// BoolKind covers boolean columns
	BoolKind
	// TimeKind covers time columns
	TimeKind
)

// KindOf returns the Kind of a ColumnType
func KindOf(colType ColumnType) Kind {
	switch colType.(type) {
	case *Int8ColumnType, *Int16ColumnType, *Int32ColumnType, *Int64ColumnType:
		return IntegerKind
	case *Uint8ColumnType, *Uint16ColumnType, *Uint32ColumnType, *Uint64ColumnType:
		return UnsignedKind
	case *Float32ColumnType, *Float64ColumnType:
		return FloatKind
	case *BoolColumnType:
		return BoolKind
	case *TimeColumnType:
		return TimeKind
	default:
		return StringKind
	}
}

// SameType returns true iff two ColumnTypes store the same kind of Go value
func SameType(a ColumnType, b ColumnType) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// TypeName returns a short, printable name for a ColumnType
func TypeName(colType ColumnType) string {
	return reflect.TypeOf(colType).Elem().Name()
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Size in bytes of a BoolColumn
func (b *BoolColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Accepts returns true iff v is a bool
func (b *BoolColumnType) Accepts(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

// Uint8ColumnType is a column type which stores a uint8 value
type Uint8ColumnType struct{}

// Size in bytes of a Uint8Column
func (b *Uint8ColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a value of a Uint8ColumnType value
func (b *Uint8ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint8))
}

// Accepts returns true iff v is a uint8
func (b *Uint8ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(uint8)
	return ok
}

// Uint16ColumnType is a column type which stores a uint16 value
type Uint16ColumnType struct{}

// Size in bytes of a Uint16Column
func (b *Uint16ColumnType) Size() int {
	return 2
}

// ToString produces a string representation of a value of a Uint16ColumnType value
func (b *Uint16ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint16))
}

// Accepts returns true iff v is a uint16
func (b *Uint16ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(uint16)
	return ok
}

// Uint32ColumnType is a column type which stores a uint32 value
type Uint32ColumnType struct{}

// Size in bytes of a Uint32Column
func (b *Uint32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of a value of a Uint32ColumnType value
func (b *Uint32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint32))
}

// Accepts returns true iff v is a uint32
func (b *Uint32ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(uint32)
	return ok
}

// Uint64ColumnType is a column type which stores a uint64 value
type Uint64ColumnType struct{}

// Size in bytes of a Uint64Column
func (b *Uint64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Uint64ColumnType value
func (b *Uint64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint64))
}

// Accepts returns true iff v is a uint64
func (b *Uint64ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(uint64)
	return ok
}

// Int8ColumnType is a column type which stores a int8 value
type Int8ColumnType struct{}

// Size in bytes of a Int8Column
func (b *Int8ColumnType) Size() int {
	return 1
}

// ToString produces a string representation of a value of a Int8ColumnType value
func (b *Int8ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int8))
}

// Accepts returns true iff v is an int8
func (b *Int8ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int8)
	return ok
}

// Int16ColumnType is a column type which stores a int16 value
type Int16ColumnType struct{}

// Size in bytes of a Int16Column
func (b *Int16ColumnType) Size() int {
	return 2
}

// ToString produces a string representation of a value of a Int16ColumnType value
func (b *Int16ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int16))
}

// Accepts returns true iff v is an int16
func (b *Int16ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int16)
	return ok
}

// Int32ColumnType is a column type which stores a int32 value
type Int32ColumnType struct{}

// Size in bytes of a Int32Column
func (b *Int32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of a value of a Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Accepts returns true iff v is an int32
func (b *Int32ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int32)
	return ok
}

// Int64ColumnType is a column type which stores a int64 value
type Int64ColumnType struct{}

// Size in bytes of a Int64Column
func (b *Int64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Accepts returns true iff v is an int64
func (b *Int64ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int64)
	return ok
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Size in bytes of a Float32Column
func (b *Float32ColumnType) Size() int {
	return 4
}

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%g", v.(float32))
}

// Accepts returns true iff v is a float32
func (b *Float32ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(float32)
	return ok
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Size in bytes of a Float64Column
func (b *Float64ColumnType) Size() int {
	return 8
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%g", v.(float64))
}

// Accepts returns true iff v is a float64
func (b *Float64ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(float64)
	return ok
}

// TimeColumnType is a column type which stores a time.Time value. Format is used when rendering
// values, and defaults to time.RFC3339.
type TimeColumnType struct {
	Format string
}

// Size in bytes of a TimeColumn
func (b *TimeColumnType) Size() int {
	return 15
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	format := b.Format
	if format == "" {
		format = time.RFC3339
	}
	return v.(time.Time).Format(format)
}

// Accepts returns true iff v is a time.Time
func (b *TimeColumnType) Accepts(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}
