package datasource

import (
	"io"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/table"
)

// LoadAll parses each Reader in turn and concatenates the resulting Tables, in order
func LoadAll(parser tidy.TableParser, schema tidy.Schema, readers ...io.Reader) (tidy.Table, error) {
	parts := make([]tidy.Table, 0, len(readers))
	for _, r := range readers {
		part, err := parser.Parse(r, schema)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return table.Concat(parts...)
}
