package clean

import (
	"sort"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/table"
)

// MostCommonOnly produces a new Table containing only those rows whose value in a column is one of
// the num most common values of that column. Values which are equally common are ranked by first
// appearance. nil is counted like any other value.
func MostCommonOnly(t tidy.Table, colName string, num int) (tidy.Table, error) {
	if num < 0 {
		return nil, errors.InvalidArgumentError{Name: "num", Reason: "must be non-negative"}
	}
	values, err := t.Column(colName)
	if err != nil {
		return nil, err
	}
	counts := make(map[interface{}]int)
	var order []interface{}
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if num < len(order) {
		order = order[:num]
	}
	keep := make(map[interface{}]bool, len(order))
	for _, v := range order {
		keep[v] = true
	}
	indices := make([]int, 0, len(values))
	for i, v := range values {
		if keep[v] {
			indices = append(indices, i)
		}
	}
	return table.Take(t, indices), nil
}
