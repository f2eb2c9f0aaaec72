package table

import (
	"testing"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/schema"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func createTestSchema() tidy.Schema {
	s := schema.CreateSchema()
	s.CreateColumn("text", &tidy.VarStringColumnType{})
	s.CreateColumn("int", &tidy.Int64ColumnType{})
	s.CreateColumn("float", &tidy.Float64ColumnType{})
	return s
}

func createTestTable(t *testing.T) tidy.Table {
	tbl, err := FromRows(createTestSchema(), [][]interface{}{
		{"some text", int64(1), 1.2},
		{"i like bananas", int64(2), 6.5},
		{nil, int64(3), nil},
	})
	require.Nil(t, err)
	return tbl
}

func TestAppendRowValidation(t *testing.T) {
	tbl := CreateTable(createTestSchema())
	err := tbl.AppendRow("a", int64(1))
	require.IsType(t, errors.IncompatibleRowError{}, err)

	err = tbl.AppendRow("a", "not an int", 1.0)
	require.NotNil(t, err)
	require.Equal(t, 0, tbl.NumRows())

	require.Nil(t, tbl.AppendRow("a", int64(1), nil))
	require.Equal(t, 1, tbl.NumRows())
	require.True(t, tbl.GetRow(0).IsNil("float"))
}

func TestAppendRowsReportsEveryFailure(t *testing.T) {
	tbl := CreateTable(createTestSchema())
	err := tbl.AppendRows([][]interface{}{
		{"ok", int64(1), 1.0},
		{"bad", 1, 1.0},
		{"bad", int64(1), "1.0"},
	})
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.Equal(t, 1, tbl.NumRows())
}

func TestRowAccessors(t *testing.T) {
	tbl := createTestTable(t)
	row := tbl.GetRow(1)
	s, err := row.GetString("text")
	require.Nil(t, err)
	require.Equal(t, "i like bananas", s)
	i, err := row.GetInt64("int")
	require.Nil(t, err)
	require.EqualValues(t, 2, i)
	f, err := row.GetFloat64("int")
	require.Nil(t, err)
	require.Equal(t, 2.0, f)

	_, err = tbl.GetRow(2).GetString("text")
	require.IsType(t, errors.NilValueError{}, err)
	_, err = row.GetBool("text")
	require.IsType(t, errors.TypeMismatchError{}, err)
	_, err = row.Get("missing")
	require.IsType(t, errors.ColumnNotFoundError{}, err)

	require.Nil(t, row.Set("text", "i love bananas"))
	s, err = tbl.GetRow(1).GetString("text")
	require.Nil(t, err)
	require.Equal(t, "i love bananas", s)
	require.NotNil(t, row.Set("text", 12))
}

func TestCloneIsDeep(t *testing.T) {
	tbl := createTestTable(t)
	clone := tbl.Clone()
	require.NotEqual(t, tbl.ID(), clone.ID())
	require.Nil(t, clone.GetRow(0).Set("text", "changed"))
	s, err := tbl.GetRow(0).GetString("text")
	require.Nil(t, err)
	require.Equal(t, "some text", s)
}

func TestSelectPreservesOrder(t *testing.T) {
	tbl := createTestTable(t)
	res, err := Select(tbl, func(row tidy.Row) (bool, error) {
		i, err := row.GetInt64("int")
		return i != 2, err
	})
	require.Nil(t, err)
	vals, err := res.Column("int")
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(3)}, vals)
}

func TestConcatUnionsColumns(t *testing.T) {
	left := createTestTable(t)
	s := schema.CreateSchema()
	s.CreateColumn("int", &tidy.Int64ColumnType{})
	s.CreateColumn("flag", &tidy.BoolColumnType{})
	right, err := FromRows(s, [][]interface{}{{int64(9), true}})
	require.Nil(t, err)

	res, err := Concat(left, right)
	require.Nil(t, err)
	require.Equal(t, []string{"text", "int", "float", "flag"}, res.Schema().ColumnNames())
	require.Equal(t, 4, res.NumRows())
	require.True(t, res.GetRow(0).IsNil("flag"))
	require.True(t, res.GetRow(3).IsNil("text"))
	i, err := res.GetRow(3).GetInt64("int")
	require.Nil(t, err)
	require.EqualValues(t, 9, i)
}

func TestConcatRejectsConflictingTypes(t *testing.T) {
	left := createTestTable(t)
	s := schema.CreateSchema()
	s.CreateColumn("int", &tidy.VarStringColumnType{})
	right := CreateTable(s)
	_, err := Concat(left, right)
	require.IsType(t, errors.IncompatibleColumnTypeError{}, err)
}

func TestConcatPromotesTypes(t *testing.T) {
	ls := schema.CreateSchema()
	ls.CreateColumn("amount", &tidy.Int64ColumnType{})
	ls.CreateColumn("small", &tidy.Uint8ColumnType{})
	ls.CreateColumn("signed", &tidy.Int8ColumnType{})
	ls.CreateColumn("label", tidy.CreateCategoryColumnType("a"))
	left, err := FromRows(ls, [][]interface{}{{int64(3), uint8(200), int8(-1), "a"}})
	require.Nil(t, err)
	rs := schema.CreateSchema()
	rs.CreateColumn("amount", &tidy.Float64ColumnType{})
	rs.CreateColumn("small", &tidy.Uint16ColumnType{})
	rs.CreateColumn("signed", &tidy.Uint8ColumnType{})
	rs.CreateColumn("label", &tidy.VarStringColumnType{})
	right, err := FromRows(rs, [][]interface{}{{2.5, uint16(300), uint8(255), "b"}, {nil, nil, nil, nil}})
	require.Nil(t, err)

	res, err := Concat(left, right)
	require.Nil(t, err)
	require.Equal(t, 3, res.NumRows())
	types := res.Schema().ColumnTypes()
	require.IsType(t, &tidy.Float64ColumnType{}, types[0])
	require.IsType(t, &tidy.Uint16ColumnType{}, types[1])
	require.IsType(t, &tidy.Int16ColumnType{}, types[2])
	require.IsType(t, &tidy.VarStringColumnType{}, types[3])
	require.Equal(t, []interface{}{3.0, uint16(200), int16(-1), "a"}, res.GetRow(0).Values())
	require.Equal(t, []interface{}{2.5, uint16(300), int16(255), "b"}, res.GetRow(1).Values())
	require.Equal(t, []interface{}{nil, nil, nil, nil}, res.GetRow(2).Values())
}

func TestConcatMergesCategoryLevels(t *testing.T) {
	ls := schema.CreateSchema()
	ls.CreateColumn("label", tidy.CreateCategoryColumnType("b"))
	left, err := FromRows(ls, [][]interface{}{{"b"}})
	require.Nil(t, err)
	rs := schema.CreateSchema()
	rs.CreateColumn("label", tidy.CreateCategoryColumnType("a"))
	right, err := FromRows(rs, [][]interface{}{{"a"}})
	require.Nil(t, err)

	res, err := Concat(left, right)
	require.Nil(t, err)
	col, err := res.Schema().GetColumn("label")
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b"}, col.Type().(*tidy.CategoryColumnType).Levels)
}

func TestConcatRejectsTimeWithString(t *testing.T) {
	ls := schema.CreateSchema()
	ls.CreateColumn("when", &tidy.TimeColumnType{})
	rs := schema.CreateSchema()
	rs.CreateColumn("when", &tidy.VarStringColumnType{})
	_, err := Concat(CreateTable(ls), CreateTable(rs))
	require.IsType(t, errors.IncompatibleColumnTypeError{}, err)
}

func TestReplaceProjectRemoveRename(t *testing.T) {
	tbl := createTestTable(t)
	res, err := ReplaceColumn(tbl, "int", &tidy.Uint8ColumnType{}, []interface{}{uint8(1), uint8(2), uint8(3)})
	require.Nil(t, err)
	col, err := res.Schema().GetColumn("int")
	require.Nil(t, err)
	require.IsType(t, &tidy.Uint8ColumnType{}, col.Type())

	res, err = Project(tbl, []string{"float", "text"})
	require.Nil(t, err)
	require.Equal(t, []string{"float", "text"}, res.Schema().ColumnNames())
	s, err := res.GetRow(0).GetString("text")
	require.Nil(t, err)
	require.Equal(t, "some text", s)

	res, err = RemoveColumns(tbl, "text")
	require.Nil(t, err)
	require.Equal(t, []string{"int", "float"}, res.Schema().ColumnNames())
	_, err = RemoveColumns(tbl, "nope")
	require.IsType(t, errors.ColumnNotFoundError{}, err)

	res, err = RenameColumn(tbl, "text", "body")
	require.Nil(t, err)
	require.Equal(t, []string{"body", "int", "float"}, res.Schema().ColumnNames())
	require.Equal(t, []string{"text", "int", "float"}, tbl.Schema().ColumnNames())
}
