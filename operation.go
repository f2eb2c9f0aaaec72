package tidy

// TableOperation - A generic function for transforming one Table into another. This is the
// caller-supplied transform accepted by the batch package; no invariant is assumed about row
// count or column preservation.
type TableOperation func(t Table) (Table, error)

// MapOperation - A generic function for manipulating Rows in-place
type MapOperation func(row Row) error

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)
