// Package tidy contains the core components of Tidy, a toolkit for cleaning text and tabular data in memory.
// This root package defines the types which are employed during the regular use of the toolkit (Tables, Schemas,
// Rows and ColumnTypes), as well as the function types accepted by its operations, and is an excellent overview
// of Tidy's key concepts. Implementations live in the schema, table, batch and clean packages.
package tidy
