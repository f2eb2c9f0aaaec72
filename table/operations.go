package table

import (
	"sort"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/schema"
)

// rowsOf returns the underlying row data of a Table, copying only if the Table is not a tableImpl
func rowsOf(t tidy.Table) [][]interface{} {
	if impl, ok := t.(*tableImpl); ok {
		return impl.rows
	}
	rows := make([][]interface{}, t.NumRows())
	for i := range rows {
		rows[i] = t.GetRow(i).Values()
	}
	return rows
}

// Take produces a new Table containing copies of the rows at the given indices, in the given order
func Take(t tidy.Table, indices []int) tidy.Table {
	rows := rowsOf(t)
	result := createTableImpl(t.Schema().Clone(), len(indices))
	for _, i := range indices {
		result.appendOwned(copyValues(rows[i]))
	}
	return result
}

// Select produces a new Table containing copies of the rows for which fn returns true, preserving order
func Select(t tidy.Table, fn tidy.FilterOperation) (tidy.Table, error) {
	indices := make([]int, 0, t.NumRows())
	i := 0
	err := t.ForEachRow(func(row tidy.Row) error {
		keep, err := fn(row)
		if err != nil {
			return err
		}
		if keep {
			indices = append(indices, i)
		}
		i++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Take(t, indices), nil
}

// MapRows produces a copy of a Table, and then runs a MapOperation on each of its rows
func MapRows(t tidy.Table, fn tidy.MapOperation) (tidy.Table, error) {
	result := t.Clone()
	if err := result.ForEachRow(fn); err != nil {
		return nil, err
	}
	return result, nil
}

// Concat appends Tables to one another. The resulting Schema is the union of the input Schemas,
// with columns in order of first appearance; values for columns a Table lacks are missing.
// Columns which share a name but not a ColumnType are promoted to a common type: numbers widen,
// Categories merge their levels or become VarStrings when mixed with them. Other combinations fail.
func Concat(tables ...tidy.Table) (tidy.Table, error) {
	var names []string
	var types []tidy.ColumnType
	positions := make(map[string]int)
	numRows := 0
	for _, t := range tables {
		numRows += t.NumRows()
		err := t.Schema().ForEachColumn(func(name string, col tidy.Column) error {
			pos, exists := positions[name]
			if !exists {
				positions[name] = len(names)
				names = append(names, name)
				types = append(types, col.Type())
				return nil
			}
			common, ok := commonType(types[pos], col.Type())
			if !ok {
				return errors.IncompatibleColumnTypeError{Name: name, Left: tidy.TypeName(types[pos]), Right: tidy.TypeName(col.Type())}
			}
			types[pos] = common
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	resultSchema, err := buildSchema(names, types)
	if err != nil {
		return nil, err
	}
	result := createTableImpl(resultSchema, numRows)
	for _, t := range tables {
		srcNames := t.Schema().ColumnNames()
		srcTypes := t.Schema().ColumnTypes()
		dest := make([]int, len(srcNames))
		convert := make([]bool, len(srcNames))
		for i, name := range srcNames {
			dest[i] = positions[name]
			convert[i] = !tidy.SameType(srcTypes[i], types[dest[i]])
		}
		for _, src := range rowsOf(t) {
			row := make([]interface{}, len(names))
			for i, v := range src {
				if convert[i] {
					v = convertValue(v, types[dest[i]])
				}
				row[dest[i]] = v
			}
			result.appendOwned(row)
		}
	}
	return result, nil
}

// ReplaceColumn produces a new Table in which a column has a new ColumnType and new values
func ReplaceColumn(t tidy.Table, colName string, colType tidy.ColumnType, values []interface{}) (tidy.Table, error) {
	col, err := t.Schema().GetColumn(colName)
	if err != nil {
		return nil, err
	}
	if len(values) != t.NumRows() {
		return nil, errors.InvalidArgumentError{Name: "values", Reason: "must contain one value per row"}
	}
	types := t.Schema().ColumnTypes()
	types[col.Index()] = colType
	newSchema, err := buildSchema(t.Schema().ColumnNames(), types)
	if err != nil {
		return nil, err
	}
	result := createTableImpl(newSchema, t.NumRows())
	for i, src := range rowsOf(t) {
		row := copyValues(src)
		v, err := checkValue(colName, colType, values[i])
		if err != nil {
			return nil, err
		}
		row[col.Index()] = v
		result.appendOwned(row)
	}
	return result, nil
}

// Project produces a new Table containing only the given columns, in the given order
func Project(t tidy.Table, colNames []string) (tidy.Table, error) {
	return ProjectAs(t, colNames, colNames)
}

// ProjectAs produces a new Table containing only the given columns, in the given order, renamed to newNames
func ProjectAs(t tidy.Table, colNames []string, newNames []string) (tidy.Table, error) {
	if len(colNames) != len(newNames) {
		return nil, errors.InvalidArgumentError{Name: "newNames", Reason: "must name every projected column"}
	}
	src := make([]int, len(colNames))
	types := make([]tidy.ColumnType, len(colNames))
	for i, name := range colNames {
		col, err := t.Schema().GetColumn(name)
		if err != nil {
			return nil, err
		}
		src[i] = col.Index()
		types[i] = col.Type()
	}
	newSchema, err := buildSchema(newNames, types)
	if err != nil {
		return nil, err
	}
	result := createTableImpl(newSchema, t.NumRows())
	for _, values := range rowsOf(t) {
		row := make([]interface{}, len(src))
		for i, idx := range src {
			row[i] = values[idx]
		}
		result.appendOwned(row)
	}
	return result, nil
}

// RemoveColumns produces a new Table without the given columns
func RemoveColumns(t tidy.Table, colNames ...string) (tidy.Table, error) {
	remove := make(map[string]bool, len(colNames))
	for _, name := range colNames {
		if !t.Schema().HasColumn(name) {
			return nil, errors.ColumnNotFoundError{Name: name}
		}
		remove[name] = true
	}
	keep := make([]string, 0, t.Schema().NumColumns())
	for _, name := range t.Schema().ColumnNames() {
		if !remove[name] {
			keep = append(keep, name)
		}
	}
	return Project(t, keep)
}

// RenameColumn produces a new Table in which a column has been renamed
func RenameColumn(t tidy.Table, oldName string, newName string) (tidy.Table, error) {
	result := t.Clone()
	if _, err := result.Schema().RenameColumn(oldName, newName); err != nil {
		return nil, err
	}
	return result, nil
}

func buildSchema(names []string, types []tidy.ColumnType) (tidy.Schema, error) {
	s := schema.CreateSchema()
	for i, name := range names {
		if _, err := s.CreateColumn(name, types[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func mergeLevels(a *tidy.CategoryColumnType, b *tidy.CategoryColumnType) *tidy.CategoryColumnType {
	seen := make(map[string]bool, len(a.Levels)+len(b.Levels))
	levels := make([]string, 0, len(a.Levels)+len(b.Levels))
	for _, lvls := range [][]string{a.Levels, b.Levels} {
		for _, l := range lvls {
			if !seen[l] {
				seen[l] = true
				levels = append(levels, l)
			}
		}
	}
	sort.Strings(levels)
	return &tidy.CategoryColumnType{Levels: levels}
}

// FirstOccurrences returns the indices of the first occurrence of each distinct name, in order.
// Later columns repeating an earlier name are dropped.
func FirstOccurrences(names []string) []int {
	seen := make(map[string]bool, len(names))
	keep := make([]int, 0, len(names))
	for i, name := range names {
		if !seen[name] {
			seen[name] = true
			keep = append(keep, i)
		}
	}
	return keep
}
