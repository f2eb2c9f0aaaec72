package tidy

import "io"

// A TableParser turns raw data into a Table, according to a Schema. Parsers may accept a nil Schema
// if they are able to infer one from the data.
type TableParser interface {
	Parse(r io.Reader, schema Schema) (Table, error)
}
