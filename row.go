package tidy

import "time"

// Row is a representation of a single record within a Table,
// along with a reference to the Schema for that record. In practice,
// users of Row will call its getter and setter methods to retrieve,
// manipulate and store data. A nil value represents a missing value.
type Row interface {
	Schema() Schema                                     // Schema returns the schema for this row
	ToString() string                                   // ToString returns a string representation of this row
	Values() []interface{}                              // Values returns a copy of the values in this row, in column index order
	IsNil(colName string) bool                          // IsNil returns true iff the given column value is missing in this row. If the column does not exist, this function will return false.
	SetNil(colName string) error                        // SetNil marks the given column value as missing within this row
	Get(colName string) (interface{}, error)            // Get returns the value of any column as an interface{}, if it exists
	Set(colName string, value interface{}) error        // Set stores a value in the column with the given name, if the value fits the column's type
	GetString(colName string) (string, error)           // GetString retrieves a single string from a VarString or Category column
	GetInt64(colName string) (int64, error)             // GetInt64 retrieves a value from any integer column, widened to int64
	GetFloat64(colName string) (float64, error)         // GetFloat64 retrieves a value from any numeric column, widened to float64
	GetBool(colName string) (bool, error)               // GetBool retrieves a single bool from the column with the given name
	GetTime(colName string) (col time.Time, err error)  // GetTime retrieves a single Time from the column with the given name
}
