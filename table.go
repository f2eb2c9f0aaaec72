package tidy

// A Table is an ordered sequence of Rows sharing one Schema.
// Tables are transient, in-memory structures, and are the unit
// of work for every operation in Tidy.
type Table interface {
	ID() string                                    // ID retrieves the ID of this Table
	Schema() Schema                                // Schema returns the Schema of this Table
	NumRows() int                                  // NumRows returns the number of rows in this Table
	GetRow(rowNum int) Row                         // GetRow retrieves a specific row from this Table
	ForEachRow(fn MapOperation) error              // ForEachRow iterates over Rows in this Table, in order
	Column(colName string) ([]interface{}, error)  // Column returns the values of a column, in row order
	Clone() Table                                  // Clone returns a deep copy of this Table
}

// A BuildableTable can be built. Used in the implementation of parsers and operations
type BuildableTable interface {
	Table
	AppendRow(values ...interface{}) error  // AppendRow adds a Row to the end of this Table, if it fits within the schema
	AppendRows(rows [][]interface{}) error  // AppendRows adds many Rows to the end of this Table, reporting every Row which does not fit the schema
}
