package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/tidy"
)

// Write renders a Table as DSV data, including a header line naming its columns
func (p *Parser) Write(w io.Writer, t tidy.Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = p.conf.Delimiter
	if err := writer.Write(t.Schema().ColumnNames()); err != nil {
		return err
	}
	colTypes := t.Schema().ColumnTypes()
	record := make([]string, len(colTypes))
	err := t.ForEachRow(func(row tidy.Row) error {
		for i, v := range row.Values() {
			record[i] = FormatValue(colTypes[i], v, p.conf.NilValue)
		}
		return writer.Write(record)
	})
	if err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
