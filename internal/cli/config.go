package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/schema"
	"gopkg.in/yaml.v3"
)

// Input and output formats
const (
	FormatDSV      = "dsv"
	FormatJSONL    = "jsonl"
	FormatSnapshot = "snapshot"
)

// ColumnConfig declares a single column of an input Schema
type ColumnConfig struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Format string   `yaml:"format,omitempty"` // time layout, for time columns
	Levels []string `yaml:"levels,omitempty"` // for category columns
}

// InputConfig describes a set of files to load as a single Table
type InputConfig struct {
	Path            string         `yaml:"path"` // a file path or glob
	Format          string         `yaml:"format,omitempty"`
	Delimiter       string         `yaml:"delimiter,omitempty"`
	Comment         string         `yaml:"comment,omitempty"`
	NilValue        string         `yaml:"nil_value,omitempty"`
	HeaderLines     int            `yaml:"header_lines,omitempty"`
	IgnoreRowErrors bool           `yaml:"ignore_row_errors,omitempty"`
	Schema          []ColumnConfig `yaml:"schema,omitempty"`
}

// OutputConfig describes where and how the resulting Table is written
type OutputConfig struct {
	Path      string `yaml:"path"` // "-" writes to standard output
	Format    string `yaml:"format,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`
	NilValue  string `yaml:"nil_value,omitempty"`
}

// BatchConfig configures chunked processing of row-local steps
type BatchConfig struct {
	NumSplits   int    `yaml:"num_splits,omitempty"`
	Identifier  string `yaml:"identifier,omitempty"`
	Parallelism int    `yaml:"parallelism,omitempty"`
}

// StepConfig configures a single pipeline step. Which fields apply depends on Op.
type StepConfig struct {
	Op     string       `yaml:"op"`
	Column string       `yaml:"column,omitempty"`
	Kind   string       `yaml:"kind,omitempty"`
	Num    int          `yaml:"num,omitempty"`
	Old    string       `yaml:"old,omitempty"`
	New    string       `yaml:"new,omitempty"`
	Names  string       `yaml:"names,omitempty"`
	Right  *InputConfig `yaml:"right,omitempty"`
	Join   string       `yaml:"join,omitempty"`
}

// Pipeline is a complete cleaning job: an input, a sequence of steps and an output
type Pipeline struct {
	LogLevel string       `yaml:"log_level,omitempty"`
	Input    InputConfig  `yaml:"input"`
	Batch    BatchConfig  `yaml:"batch,omitempty"`
	Steps    []StepConfig `yaml:"steps"`
	Output   OutputConfig `yaml:"output"`
}

// LoadPipeline reads and validates a Pipeline from a YAML file
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline %s: %w", path, err)
	}
	return ParsePipeline(data)
}

// ParsePipeline parses and validates a Pipeline from YAML
func ParsePipeline(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing pipeline: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks a Pipeline for missing or inconsistent settings, filling in defaults
func (p *Pipeline) Validate() error {
	if err := p.Input.validate("input"); err != nil {
		return err
	}
	if p.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if p.Output.Format == "" {
		p.Output.Format = FormatDSV
	}
	if p.Output.Format != FormatDSV && p.Output.Format != FormatSnapshot {
		return fmt.Errorf("output.format must be %s or %s, was %q", FormatDSV, FormatSnapshot, p.Output.Format)
	}
	if p.Batch.NumSplits < 0 {
		return fmt.Errorf("batch.num_splits must be non-negative")
	}
	if p.Batch.NumSplits > 0 && p.Batch.Identifier == "" {
		return fmt.Errorf("batch.identifier is required when batch.num_splits is set")
	}
	for i := range p.Steps {
		if err := validateStep(&p.Steps[i]); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	return nil
}

func (in *InputConfig) validate(field string) error {
	if in.Path == "" {
		return fmt.Errorf("%s.path is required", field)
	}
	if in.Format == "" {
		in.Format = FormatDSV
	}
	switch in.Format {
	case FormatDSV:
	case FormatJSONL:
		if len(in.Schema) == 0 {
			return fmt.Errorf("%s.schema is required for %s input", field, FormatJSONL)
		}
	default:
		return fmt.Errorf("%s.format must be %s or %s, was %q", field, FormatDSV, FormatJSONL, in.Format)
	}
	if len([]rune(in.Delimiter)) > 1 || len([]rune(in.Comment)) > 1 {
		return fmt.Errorf("%s.delimiter and %s.comment must be single characters", field, field)
	}
	_, err := in.schema()
	return err
}

// schema builds the Schema declared by an InputConfig, or nil if none was declared
func (in *InputConfig) schema() (tidy.Schema, error) {
	if len(in.Schema) == 0 {
		return nil, nil
	}
	s := schema.CreateSchema()
	for _, col := range in.Schema {
		colType, err := parseColumnType(col)
		if err != nil {
			return nil, err
		}
		if _, err := s.CreateColumn(col.Name, colType); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func parseColumnType(col ColumnConfig) (tidy.ColumnType, error) {
	switch strings.ToLower(col.Type) {
	case "string", "varstring", "":
		return &tidy.VarStringColumnType{}, nil
	case "category":
		return tidy.CreateCategoryColumnType(col.Levels...), nil
	case "bool":
		return &tidy.BoolColumnType{}, nil
	case "int8":
		return &tidy.Int8ColumnType{}, nil
	case "int16":
		return &tidy.Int16ColumnType{}, nil
	case "int32":
		return &tidy.Int32ColumnType{}, nil
	case "int64", "int":
		return &tidy.Int64ColumnType{}, nil
	case "uint8":
		return &tidy.Uint8ColumnType{}, nil
	case "uint16":
		return &tidy.Uint16ColumnType{}, nil
	case "uint32":
		return &tidy.Uint32ColumnType{}, nil
	case "uint64", "uint":
		return &tidy.Uint64ColumnType{}, nil
	case "float32":
		return &tidy.Float32ColumnType{}, nil
	case "float64", "float":
		return &tidy.Float64ColumnType{}, nil
	case "time", "datetime":
		format := col.Format
		if format == "" {
			format = time.RFC3339
		}
		return &tidy.TimeColumnType{Format: format}, nil
	default:
		return nil, fmt.Errorf("column %s has unknown type %q", col.Name, col.Type)
	}
}
