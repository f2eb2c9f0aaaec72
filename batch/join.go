package batch

import (
	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/schema"
	"github.com/go-sif/tidy/table"
)

// joiner left outer joins chunks of a left Table against an entire right Table. The join column
// appears once, in its left-hand position; other columns present on both sides are suffixed.
type joiner struct {
	schema       tidy.Schema
	leftJoinIdx  int
	rightJoinIdx int
	rightRows    [][]interface{}
	rightKeys    *valueIndex
	rightMatches [][]int // right row numbers for each distinct key in rightKeys
}

func createJoiner(left tidy.Schema, right tidy.Table, joinColumn string, leftSuffix string, rightSuffix string) (*joiner, error) {
	leftCol, err := left.GetColumn(joinColumn)
	if err != nil {
		return nil, err
	}
	rightCol, err := right.Schema().GetColumn(joinColumn)
	if err != nil {
		return nil, err
	}
	if !tidy.SameType(leftCol.Type(), rightCol.Type()) {
		return nil, errors.IncompatibleColumnTypeError{
			Name:  joinColumn,
			Left:  tidy.TypeName(leftCol.Type()),
			Right: tidy.TypeName(rightCol.Type()),
		}
	}
	out := schema.CreateSchema()
	err = left.ForEachColumn(func(name string, col tidy.Column) error {
		outName := name
		if name != joinColumn && right.Schema().HasColumn(name) {
			outName = name + leftSuffix
		}
		_, err := out.CreateColumn(outName, col.Type())
		return err
	})
	if err != nil {
		return nil, err
	}
	err = right.Schema().ForEachColumn(func(name string, col tidy.Column) error {
		if name == joinColumn {
			return nil
		}
		outName := name
		if left.HasColumn(name) {
			outName = name + rightSuffix
		}
		_, err := out.CreateColumn(outName, col.Type())
		return err
	})
	if err != nil {
		return nil, err
	}

	j := &joiner{
		schema:       out,
		leftJoinIdx:  leftCol.Index(),
		rightJoinIdx: rightCol.Index(),
		rightRows:    make([][]interface{}, right.NumRows()),
		rightKeys:    createValueIndex(),
	}
	for i := 0; i < right.NumRows(); i++ {
		values := right.GetRow(i).Values()
		j.rightRows[i] = values
		key := values[j.rightJoinIdx]
		if key == nil {
			continue // missing keys never match
		}
		pos, isNew := j.rightKeys.Insert(key)
		if isNew {
			j.rightMatches = append(j.rightMatches, nil)
		}
		j.rightMatches[pos] = append(j.rightMatches[pos], i)
	}
	return j, nil
}

// join produces the left outer join of part against the right Table. Left row order is preserved,
// and each left row is followed by its matches in right row order.
func (j *joiner) join(part tidy.Table) (tidy.Table, error) {
	width := j.schema.NumColumns()
	result := table.CreateTable(j.schema.Clone())
	rows := make([][]interface{}, 0, part.NumRows())
	err := part.ForEachRow(func(row tidy.Row) error {
		left := row.Values()
		var matches []int
		if key := left[j.leftJoinIdx]; key != nil {
			if pos, ok := j.rightKeys.Find(key); ok {
				matches = j.rightMatches[pos]
			}
		}
		if len(matches) == 0 {
			out := make([]interface{}, width)
			copy(out, left)
			rows = append(rows, out)
			return nil
		}
		for _, m := range matches {
			out := make([]interface{}, len(left), width)
			copy(out, left)
			for c, v := range j.rightRows[m] {
				if c != j.rightJoinIdx {
					out = append(out, v)
				}
			}
			rows = append(rows, out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := result.AppendRows(rows); err != nil {
		return nil, err
	}
	return result, nil
}
