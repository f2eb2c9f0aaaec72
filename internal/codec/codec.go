// Package codec serializes Tables to and from compact snapshots: a gob-encoded schema and row set,
// compressed with lz4.
package codec

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/schema"
	"github.com/go-sif/tidy/table"
	"github.com/pierrec/lz4"
)

func init() {
	gob.Register(time.Time{})
}

type snapshotColumn struct {
	Name   string
	Type   string
	Format string
	Levels []string
}

type snapshot struct {
	Columns []snapshotColumn
	Rows    [][]interface{}
}

// Codec is an lz4 Table snapshot serializer. A Codec reuses its compression buffers,
// and must not be used from multiple goroutines at once.
type Codec struct {
	compressor         *lz4.Writer
	decompressor       *lz4.Reader
	reusableReadBuffer *bytes.Buffer
}

// CreateCodec instantiates a new Codec
func CreateCodec() *Codec {
	return &Codec{
		compressor:         lz4.NewWriter(new(bytes.Buffer)),
		decompressor:       lz4.NewReader(new(bytes.Buffer)),
		reusableReadBuffer: new(bytes.Buffer),
	}
}

// Encode serializes and compresses a Table to a write stream
func (c *Codec) Encode(w io.Writer, t tidy.Table) error {
	snap := snapshot{Rows: make([][]interface{}, 0, t.NumRows())}
	err := t.Schema().ForEachColumn(func(name string, col tidy.Column) error {
		sc, err := describeColumn(name, col.Type())
		if err != nil {
			return err
		}
		snap.Columns = append(snap.Columns, sc)
		return nil
	})
	if err != nil {
		return err
	}
	err = t.ForEachRow(func(row tidy.Row) error {
		snap.Rows = append(snap.Rows, row.Values())
		return nil
	})
	if err != nil {
		return err
	}
	c.compressor.Reset(w)
	if err := gob.NewEncoder(c.compressor).Encode(&snap); err != nil {
		return fmt.Errorf("unable to encode table snapshot: %w", err)
	}
	return c.compressor.Close()
}

// Decode decompresses and deserializes a Table from a read stream
func (c *Codec) Decode(r io.Reader) (tidy.Table, error) {
	c.decompressor.Reset(r)
	c.reusableReadBuffer.Reset()
	if _, err := c.reusableReadBuffer.ReadFrom(c.decompressor); err != nil {
		return nil, fmt.Errorf("unable to decompress table snapshot: %w", err)
	}
	var snap snapshot
	if err := gob.NewDecoder(c.reusableReadBuffer).Decode(&snap); err != nil {
		return nil, fmt.Errorf("unable to decode table snapshot: %w", err)
	}
	s := schema.CreateSchema()
	for _, sc := range snap.Columns {
		colType, err := createColumnType(sc)
		if err != nil {
			return nil, err
		}
		if _, err := s.CreateColumn(sc.Name, colType); err != nil {
			return nil, err
		}
	}
	return table.FromRows(s, snap.Rows)
}

// Encode serializes a Table to a write stream with a new Codec
func Encode(w io.Writer, t tidy.Table) error {
	return CreateCodec().Encode(w, t)
}

// Decode deserializes a Table from a read stream with a new Codec
func Decode(r io.Reader) (tidy.Table, error) {
	return CreateCodec().Decode(r)
}

func describeColumn(name string, colType tidy.ColumnType) (snapshotColumn, error) {
	sc := snapshotColumn{Name: name, Type: tidy.TypeName(colType)}
	switch ct := colType.(type) {
	case *tidy.TimeColumnType:
		sc.Format = ct.Format
	case *tidy.CategoryColumnType:
		sc.Levels = ct.Levels
	}
	if _, err := createColumnType(sc); err != nil {
		return sc, err
	}
	return sc, nil
}

func createColumnType(sc snapshotColumn) (tidy.ColumnType, error) {
	switch sc.Type {
	case "BoolColumnType":
		return &tidy.BoolColumnType{}, nil
	case "Uint8ColumnType":
		return &tidy.Uint8ColumnType{}, nil
	case "Uint16ColumnType":
		return &tidy.Uint16ColumnType{}, nil
	case "Uint32ColumnType":
		return &tidy.Uint32ColumnType{}, nil
	case "Uint64ColumnType":
		return &tidy.Uint64ColumnType{}, nil
	case "Int8ColumnType":
		return &tidy.Int8ColumnType{}, nil
	case "Int16ColumnType":
		return &tidy.Int16ColumnType{}, nil
	case "Int32ColumnType":
		return &tidy.Int32ColumnType{}, nil
	case "Int64ColumnType":
		return &tidy.Int64ColumnType{}, nil
	case "Float32ColumnType":
		return &tidy.Float32ColumnType{}, nil
	case "Float64ColumnType":
		return &tidy.Float64ColumnType{}, nil
	case "TimeColumnType":
		return &tidy.TimeColumnType{Format: sc.Format}, nil
	case "VarStringColumnType":
		return &tidy.VarStringColumnType{}, nil
	case "CategoryColumnType":
		return &tidy.CategoryColumnType{Levels: sc.Levels}, nil
	default:
		return nil, fmt.Errorf("snapshots do not support column type %s", sc.Type)
	}
}
