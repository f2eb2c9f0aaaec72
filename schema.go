package tidy

// Schema is an ordered mapping from column names to Columns.
// It allows one to obtain Columns by name, define new columns,
// remove columns, etc. Column names are unique within a Schema.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	GetColumn(colName string) (col Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	RemoveColumn(colName string) (newSchema Schema, err error)
	ColumnNames() []string
	ColumnTypes() []ColumnType
	ForEachColumn(fn func(name string, col Column) error) error // iterates in index order
}
