package dsv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/schema"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestDSVParserWithSchema(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("name", &tidy.VarStringColumnType{})
	s.CreateColumn("age", &tidy.Uint8ColumnType{})
	s.CreateColumn("score", &tidy.Float64ColumnType{})

	parser := CreateParser(&ParserConf{
		HeaderLines: 1,
		NilValue:    "null",
	})
	data := "name,age,score\nSean,31,1.5\nChris,null,2\nPhil,40,\n"
	tbl, err := parser.Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	require.Equal(t, 3, tbl.NumRows())
	require.True(t, tbl.GetRow(1).IsNil("age"))
	require.True(t, tbl.GetRow(2).IsNil("score"))
	age, err := tbl.GetRow(2).GetInt64("age")
	require.Nil(t, err)
	require.EqualValues(t, 40, age)
}

func TestDSVParserInfersHeader(t *testing.T) {
	parser := CreateParser(&ParserConf{Delimiter: '|'})
	data := "First Name|Last Name|Last Name\nKristie|Smith|Jones\n"
	tbl, err := parser.Parse(strings.NewReader(data), nil)
	require.Nil(t, err)
	require.Equal(t, []string{"First Name", "Last Name"}, tbl.Schema().ColumnNames())
	last, err := tbl.GetRow(0).GetString("Last Name")
	require.Nil(t, err)
	require.Equal(t, "Smith", last)
}

func TestDSVParserRowErrors(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("id", &tidy.Int32ColumnType{})
	s.CreateColumn("flag", &tidy.BoolColumnType{})
	data := "1,true\nx,false\n3,maybe\n4\n5,false\n"

	_, err := CreateParser(&ParserConf{}).Parse(strings.NewReader(data), s)
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 3)

	tbl, err := CreateParser(&ParserConf{IgnoreRowErrors: true}).Parse(strings.NewReader(data), s)
	require.Nil(t, err)
	require.Equal(t, 2, tbl.NumRows())
}

func TestDSVWriteRoundTrip(t *testing.T) {
	parser := CreateParser(&ParserConf{NilValue: "NA"})
	data := "a,b\nx,NA\n\"with, comma\",z\n"
	tbl, err := parser.Parse(strings.NewReader(data), nil)
	require.Nil(t, err)
	var buf bytes.Buffer
	require.Nil(t, parser.Write(&buf, tbl))
	require.Equal(t, data, buf.String())
}
