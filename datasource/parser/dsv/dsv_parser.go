package dsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/logging"
	"github.com/go-sif/tidy/schema"
	"github.com/go-sif/tidy/table"
	"github.com/hashicorp/go-multierror"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines     int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Delimiter       rune   // The delimiter separating columns in the file. Defaults to ,
	Comment         rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue        string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
	IgnoreRowErrors bool   // If true, rows which cannot be parsed are logged and skipped. Otherwise, they are reported together once parsing is complete.
}

// Parser produces Tables from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce a Table. If schema is nil, the first line after any
// ignored header lines names the columns, all of which are VarString columns; when the
// header repeats a name, only the first such column is kept.
func (p *Parser) Parse(r io.Reader, s tidy.Schema) (tidy.Table, error) {
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	var keep []int
	var width int
	if s == nil {
		header, err := reader.Read()
		if err == io.EOF {
			return table.CreateTable(schema.CreateSchema()), nil
		} else if err != nil {
			return nil, err
		}
		width = len(header)
		s, keep, err = inferSchema(header)
		if err != nil {
			return nil, err
		}
	}
	colNames := s.ColumnNames()
	colTypes := s.ColumnTypes()
	if keep == nil {
		width = len(colNames)
		keep = make([]int, len(colNames))
		for i := range keep {
			keep[i] = i
		}
	}

	logger := logging.Logger("dsv")
	result := table.CreateTable(s)
	var multierr *multierror.Error
	line := p.conf.HeaderLines
	for {
		line++
		rowStrings, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			if _, ok := err.(*csv.ParseError); !ok {
				return nil, err
			}
		} else {
			var values []interface{}
			values, err = scanRow(p.conf, colNames, colTypes, keep, width, rowStrings)
			if err == nil {
				err = result.AppendRow(values...)
			}
		}
		if err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
			if p.conf.IgnoreRowErrors {
				logger.Warn().Err(err).Msg("skipping row")
				continue
			}
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}

func inferSchema(header []string) (tidy.Schema, []int, error) {
	keep := table.FirstOccurrences(header)
	s := schema.CreateSchema()
	for _, i := range keep {
		if _, err := s.CreateColumn(header[i], &tidy.VarStringColumnType{}); err != nil {
			return nil, nil, err
		}
	}
	return s, keep, nil
}
