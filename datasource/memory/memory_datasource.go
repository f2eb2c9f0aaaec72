package memory

import (
	"bytes"
	"io"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/datasource"
)

// Load parses each in-memory buffer and concatenates the results
func Load(data [][]byte, parser tidy.TableParser, schema tidy.Schema) (tidy.Table, error) {
	readers := make([]io.Reader, len(data))
	for i := range data {
		readers[i] = bytes.NewReader(data[i])
	}
	return datasource.LoadAll(parser, schema, readers...)
}
