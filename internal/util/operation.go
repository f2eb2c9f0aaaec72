package util

import (
	"fmt"

	"github.com/go-sif/tidy"
)

// SafeTableOperation wraps a TableOperation such that panics are recovered and nice error messages are constructed
func SafeTableOperation(name string, tableOp tidy.TableOperation) (safeTableOp tidy.TableOperation) {
	return func(t tidy.Table) (result tidy.Table, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Step %s Panic: %w\nTable: %s\n%s", name, anErr, t.ID(), GetTrace())
				} else {
					err = fmt.Errorf("Step %s Panic: %v\nTable: %s\n%s", name, r, t.ID(), GetTrace())
				}
				result = nil
			} else if err != nil {
				err = fmt.Errorf("Step %s Error: %w", name, err)
			}
		}()
		result, err = tableOp(t)
		return
	}
}
