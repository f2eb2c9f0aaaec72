package tidy

import (
	"fmt"
	"sort"
)

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Size in bytes of a VarStringColumn, which is variable
func (b *VarStringColumnType) Size() int {
	return 0
}

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// Accepts returns true iff v is a string
func (b *VarStringColumnType) Accepts(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// CategoryColumnType is a column type which stores strings drawn from a small set of Levels.
// Values are still exposed as strings, but share storage with their level.
type CategoryColumnType struct {
	Levels []string // sorted
}

// CreateCategoryColumnType returns a CategoryColumnType with the given levels, sorted and de-duplicated
func CreateCategoryColumnType(levels ...string) *CategoryColumnType {
	sorted := append([]string(nil), levels...)
	sort.Strings(sorted)
	unique := make([]string, 0, len(sorted))
	for _, l := range sorted {
		if len(unique) == 0 || l != unique[len(unique)-1] {
			unique = append(unique, l)
		}
	}
	return &CategoryColumnType{Levels: unique}
}

// Size in bytes of a CategoryColumn, which is variable
func (b *CategoryColumnType) Size() int {
	return 0
}

// ToString produces a string representation of a value of a CategoryColumnType value
func (b *CategoryColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// Accepts returns true iff v is a string belonging to one of this type's Levels
func (b *CategoryColumnType) Accepts(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, found := b.Level(s)
	return found
}

// Level returns the canonical (shared) copy of s, and whether or not s is a level of this type
func (b *CategoryColumnType) Level(s string) (string, bool) {
	i := sort.SearchStrings(b.Levels, s)
	if i < len(b.Levels) && b.Levels[i] == s {
		return b.Levels[i], true
	}
	return "", false
}
