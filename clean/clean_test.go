package clean

import (
	"strings"
	"testing"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/batch"
	"github.com/go-sif/tidy/schema"
	"github.com/go-sif/tidy/table"
	"github.com/stretchr/testify/require"
)

func createTestTable(t *testing.T) tidy.Table {
	s := schema.CreateSchema()
	s.CreateColumn("text", &tidy.VarStringColumnType{})
	s.CreateColumn("int", &tidy.Int64ColumnType{})
	s.CreateColumn("float", &tidy.Float64ColumnType{})
	rows := make([][]interface{}, 0, 12)
	for i := 0; i < 3; i++ {
		rows = append(rows,
			[]interface{}{"some text", int64(1), 1.2},
			[]interface{}{"some other text", int64(1), 1.4},
			[]interface{}{"i like bananas", int64(2), 6.5},
			[]interface{}{"i like apples", int64(2), 7.5},
		)
	}
	tbl, err := table.FromRows(s, rows)
	require.Nil(t, err)
	return tbl
}

func createStringTable(t *testing.T, colName string, values ...interface{}) tidy.Table {
	s := schema.CreateSchema()
	s.CreateColumn(colName, &tidy.VarStringColumnType{})
	tbl := table.CreateTable(s)
	for _, v := range values {
		require.Nil(t, tbl.AppendRow(v))
	}
	return tbl
}

func TestCompressTable(t *testing.T) {
	compressed, err := CompressTable(createTestTable(t))
	require.Nil(t, err)
	require.Equal(t, 12, compressed.NumRows())
	types := compressed.Schema().ColumnTypes()
	require.IsType(t, &tidy.CategoryColumnType{}, types[0])
	require.Equal(t, []string{"i like apples", "i like bananas", "some other text", "some text"}, types[0].(*tidy.CategoryColumnType).Levels)
	require.IsType(t, &tidy.Uint8ColumnType{}, types[1])
	require.IsType(t, &tidy.Float32ColumnType{}, types[2])
	row := compressed.GetRow(0)
	text, err := row.GetString("text")
	require.Nil(t, err)
	require.Equal(t, "some text", text)
	v, err := row.Get("int")
	require.Nil(t, err)
	require.Equal(t, uint8(1), v)
	v, err = row.Get("float")
	require.Nil(t, err)
	require.Equal(t, float32(1.2), v)
}

func TestCompressTableLeavesWideColumns(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("text", &tidy.VarStringColumnType{})
	s.CreateColumn("signed", &tidy.Int64ColumnType{})
	s.CreateColumn("wide", &tidy.Int32ColumnType{})
	s.CreateColumn("tiny", &tidy.Float64ColumnType{})
	tbl, err := table.FromRows(s, [][]interface{}{
		{"a", int64(-1), int32(300), 1e-300},
		{"b", int64(5), int32(2), nil},
	})
	require.Nil(t, err)
	compressed, err := CompressTable(tbl)
	require.Nil(t, err)
	types := compressed.Schema().ColumnTypes()
	require.IsType(t, &tidy.VarStringColumnType{}, types[0])
	require.IsType(t, &tidy.Int64ColumnType{}, types[1])
	require.IsType(t, &tidy.Uint16ColumnType{}, types[2])
	require.IsType(t, &tidy.Float64ColumnType{}, types[3])
	require.True(t, compressed.GetRow(1).IsNil("tiny"))
}

func TestMakeUUID(t *testing.T) {
	id, err := MakeUUID("609390d88cff44269c2e293bd6b89a0b")
	require.Nil(t, err)
	require.Equal(t, "609390d8-8cff-4426-9c2e-293bd6b89a0b", id)
	id, err = MakeUUID("609390D8-8CFF-4426-9C2E-293BD6B89A0B")
	require.Nil(t, err)
	require.Equal(t, "609390d8-8cff-4426-9c2e-293bd6b89a0b", id)
	id, err = MakeUUID("user-0001-xyz-ABCDEFGHIJKLMNOPQR")
	require.Nil(t, err)
	require.Equal(t, "user-000-1-xy-z-AB-CDEF-GHIJKLMNOPQR", id)
	_, err = MakeUUID("not an id")
	require.NotNil(t, err)
}

func TestMostCommonOnly(t *testing.T) {
	tbl := createTestTable(t)
	res, err := MostCommonOnly(tbl, "text", 1)
	require.Nil(t, err)
	require.Less(t, res.NumRows(), tbl.NumRows())
	require.Equal(t, 3, res.NumRows())
	res.ForEachRow(func(row tidy.Row) error {
		text, err := row.GetString("text")
		require.Nil(t, err)
		require.Equal(t, "some text", text)
		return nil
	})

	// ties are ranked by first appearance
	res, err = MostCommonOnly(tbl, "int", 1)
	require.Nil(t, err)
	require.Equal(t, 6, res.NumRows())
	v, err := res.GetRow(5).GetInt64("int")
	require.Nil(t, err)
	require.EqualValues(t, 1, v)

	res, err = MostCommonOnly(tbl, "text", 10)
	require.Nil(t, err)
	require.Equal(t, tbl.NumRows(), res.NumRows())
	res, err = MostCommonOnly(tbl, "text", 0)
	require.Nil(t, err)
	require.Equal(t, 0, res.NumRows())
	_, err = MostCommonOnly(tbl, "text", -1)
	require.NotNil(t, err)
	_, err = MostCommonOnly(tbl, "missing", 1)
	require.NotNil(t, err)
}

func TestCleanColumnNames(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn(" First Name ", &tidy.VarStringColumnType{})
	s.CreateColumn("AGE", &tidy.Int64ColumnType{})
	s.CreateColumn("first name", &tidy.VarStringColumnType{})
	s.CreateColumn("ÉCOLE", &tidy.VarStringColumnType{})
	tbl, err := table.FromRows(s, [][]interface{}{{"Ann", int64(30), "dropped", "x"}})
	require.Nil(t, err)
	cleaned, err := CleanColumnNames(tbl)
	require.Nil(t, err)
	require.Equal(t, []string{"first_name", "age", "école"}, cleaned.Schema().ColumnNames())
	name, err := cleaned.GetRow(0).GetString("first_name")
	require.Nil(t, err)
	require.Equal(t, "Ann", name)
	age, err := cleaned.GetRow(0).GetInt64("age")
	require.Nil(t, err)
	require.EqualValues(t, 30, age)
}

func TestRemoveDuplicateColumns(t *testing.T) {
	require.Equal(t, []int{0, 1, 3}, RemoveDuplicateColumns([]string{"a", "b", "a", "c", "b"}))
	require.Equal(t, []int{}, RemoveDuplicateColumns(nil))
}

func TestFixColDataTypeNumeric(t *testing.T) {
	tbl := createStringTable(t, "n", "1", " 2 ", "x", nil)
	fixed, err := FixColDataType(tbl, "n", IntKind)
	require.Nil(t, err)
	require.IsType(t, &tidy.Int64ColumnType{}, fixed.Schema().ColumnTypes()[0])
	values, err := fixed.Column("n")
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2), nil, nil}, values)

	tbl = createStringTable(t, "n", "1.5", "2")
	fixed, err = FixColDataType(tbl, "n", FloatKind)
	require.Nil(t, err)
	require.IsType(t, &tidy.Float64ColumnType{}, fixed.Schema().ColumnTypes()[0])
	values, err = fixed.Column("n")
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.5, 2.0}, values)
}

func TestFixColDataTypeDatetimeAndString(t *testing.T) {
	tbl := createStringTable(t, "d", "2021-01-02", "2021-01-02T03:04:05Z", "bad")
	fixed, err := FixColDataType(tbl, "d", DatetimeKind)
	require.Nil(t, err)
	require.IsType(t, &tidy.TimeColumnType{}, fixed.Schema().ColumnTypes()[0])
	d, err := fixed.GetRow(0).GetTime("d")
	require.Nil(t, err)
	require.Equal(t, 2021, d.Year())
	require.Equal(t, 2, d.Day())
	d, err = fixed.GetRow(1).GetTime("d")
	require.Nil(t, err)
	require.Equal(t, 3, d.Hour())
	require.True(t, fixed.GetRow(2).IsNil("d"))

	fixed, err = FixColDataType(createTestTable(t), "int", StringKind)
	require.Nil(t, err)
	require.IsType(t, &tidy.VarStringColumnType{}, fixed.Schema().ColumnTypes()[1])
	s, err := fixed.GetRow(2).GetString("int")
	require.Nil(t, err)
	require.Equal(t, "2", s)
}

func TestFixColDataTypeFailures(t *testing.T) {
	tbl := createTestTable(t)
	_, err := FixColDataType(tbl, "int", "complex")
	require.NotNil(t, err)
	require.True(t, strings.Contains(err.Error(), "complex"))
	_, err = FixColDataType(tbl, "missing", IntKind)
	require.NotNil(t, err)
}

func TestFixColDataTypeInBatches(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("id", &tidy.Int64ColumnType{})
	s.CreateColumn("amount", &tidy.VarStringColumnType{})
	tbl, err := table.FromRows(s, [][]interface{}{{int64(1), "3"}, {int64(2), "2.5"}})
	require.Nil(t, err)

	res, err := batch.Apply(tbl, 2, "id", func(part tidy.Table) (tidy.Table, error) {
		return FixColDataType(part, "amount", FloatKind)
	})
	require.Nil(t, err)
	col, err := res.Schema().GetColumn("amount")
	require.Nil(t, err)
	require.IsType(t, &tidy.Float64ColumnType{}, col.Type())
	vals, err := res.Column("amount")
	require.Nil(t, err)
	require.Equal(t, []interface{}{3.0, 2.5}, vals)
}

func TestCompressTableInBatches(t *testing.T) {
	s := schema.CreateSchema()
	s.CreateColumn("id", &tidy.Int64ColumnType{})
	s.CreateColumn("count", &tidy.Int64ColumnType{})
	tbl, err := table.FromRows(s, [][]interface{}{{int64(1), int64(7)}, {int64(2), int64(700)}})
	require.Nil(t, err)

	res, err := batch.Apply(tbl, 2, "id", CompressTable)
	require.Nil(t, err)
	col, err := res.Schema().GetColumn("count")
	require.Nil(t, err)
	require.IsType(t, &tidy.Uint16ColumnType{}, col.Type())
	vals, err := res.Column("count")
	require.Nil(t, err)
	require.Equal(t, []interface{}{uint16(7), uint16(700)}, vals)
}
