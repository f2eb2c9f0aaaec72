package clean

import (
	"strings"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// CleanColumnName trims a column name, replaces its spaces with underscores and lower-cases it
func CleanColumnName(name string) string {
	name = norm.NFC.String(strings.TrimSpace(name))
	return lower.String(strings.ReplaceAll(name, " ", "_"))
}

// CleanColumnNames produces a new Table whose column names have been cleaned with CleanColumnName.
// When two names collide after cleaning, only the first such column is kept.
func CleanColumnNames(t tidy.Table) (tidy.Table, error) {
	names := t.Schema().ColumnNames()
	cleaned := make([]string, len(names))
	for i, name := range names {
		cleaned[i] = CleanColumnName(name)
	}
	keep := RemoveDuplicateColumns(cleaned)
	colNames := make([]string, len(keep))
	newNames := make([]string, len(keep))
	for i, idx := range keep {
		colNames[i] = names[idx]
		newNames[i] = cleaned[idx]
	}
	return table.ProjectAs(t, colNames, newNames)
}

// RemoveDuplicateColumns returns the positions of the columns to keep from a list of column names,
// dropping any column which repeats an earlier name
func RemoveDuplicateColumns(names []string) []int {
	return table.FirstOccurrences(names)
}
