package errors

import (
	"fmt"
)

// NilValueError occurs when a value in a Row is missing and a typed getter was used
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// ColumnNotFoundError occurs when a referenced column is absent from a Schema
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// InvalidArgumentError occurs when an operation receives an argument outside of its domain
type InvalidArgumentError struct {
	Name   string
	Reason string
}

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument %s: %s", e.Name, e.Reason)
}

// IncompatibleRowError occurs when a Row's width does not match an expected Schema
type IncompatibleRowError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}

// IncompatibleColumnTypeError occurs when two columns with the same name, or a pair of join
// columns, do not share a ColumnType
type IncompatibleColumnTypeError struct {
	Name  string
	Left  string
	Right string
}

// Error returns a textual representation of this IncompatibleColumnTypeError
func (e IncompatibleColumnTypeError) Error() string {
	return fmt.Sprintf("Column %s has incompatible types %s and %s", e.Name, e.Left, e.Right)
}

// TypeMismatchError occurs when a value does not fit the ColumnType of the column it is stored in
// or retrieved from
type TypeMismatchError struct {
	Name  string
	Type  string
	Value interface{}
}

// Error returns a textual representation of this TypeMismatchError
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Column %s of type %s cannot hold value %#v", e.Name, e.Type, e.Value)
}
