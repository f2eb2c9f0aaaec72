package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/logging"
	"github.com/go-sif/tidy/table"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines     int  // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Comment         rune // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize   int  // Maximum size in bytes of the buffer used to read lines from the file
	IgnoreRowErrors bool // If true, rows which cannot be parsed are logged and skipped. Otherwise, they are reported together once parsing is complete.
}

// Parser produces Tables from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a Schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a Table
func (p *Parser) Parse(r io.Reader, schema tidy.Schema) (tidy.Table, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	logger := logging.Logger("jsonl")
	colNames := schema.ColumnNames()
	colTypes := schema.ColumnTypes()
	result := table.CreateTable(schema)
	var multierr *multierror.Error
	line := p.conf.HeaderLines
	for scanner.Scan() {
		line++
		rowString := scanner.Text()
		trimmed := strings.TrimSpace(rowString)
		if len(trimmed) == 0 || (p.conf.Comment != 0 && strings.HasPrefix(trimmed, string(p.conf.Comment))) {
			continue
		}
		var err error
		if !gjson.Valid(rowString) {
			err = fmt.Errorf("invalid JSON")
		} else {
			var values []interface{}
			values, err = ParseJSONRow(colNames, colTypes, gjson.Parse(rowString))
			if err == nil {
				err = result.AppendRow(values...)
			}
		}
		if err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
			if p.conf.IgnoreRowErrors {
				logger.Warn().Err(err).Str("line", rowString).Msg("skipping row")
				continue
			}
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}
