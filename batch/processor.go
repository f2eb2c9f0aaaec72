package batch

import (
	"context"
	"time"

	"github.com/go-sif/tidy"
	"github.com/go-sif/tidy/errors"
	"github.com/go-sif/tidy/logging"
	"github.com/go-sif/tidy/table"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ProcessorConf configures a batch Processor
type ProcessorConf struct {
	Parallelism int               // The maximum number of partitions processed concurrently. Defaults to 1 (sequential).
	LeftSuffix  string            // Suffix for left-hand columns which share a name with a right-hand column in a Merge. Defaults to "_x".
	RightSuffix string            // Suffix for right-hand columns which share a name with a left-hand column in a Merge. Defaults to "_y".
	Observer    PartitionObserver // Notified as each partition completes successfully. Defaults to none.
}

// PartitionObserver is notified as partitions are processed. With a Parallelism above 1, it is
// called from multiple goroutines at once.
type PartitionObserver interface {
	ObservePartition(index int, numRows int, elapsed time.Duration)
}

// Processor applies operations to Tables in chunks, partitioned by the distinct values of an identifier column
type Processor struct {
	conf *ProcessorConf
}

// CreateProcessor returns a new Processor
func CreateProcessor(conf *ProcessorConf) *Processor {
	if conf.Parallelism < 1 {
		conf.Parallelism = 1
	}
	if conf.LeftSuffix == "" {
		conf.LeftSuffix = "_x"
	}
	if conf.RightSuffix == "" {
		conf.RightSuffix = "_y"
	}
	return &Processor{conf: conf}
}

// Apply runs fn on the rows of t in numSplits chunks, where chunks are formed from the distinct values of identifierColumn,
// using a sequential Processor. See Processor.Apply.
func Apply(t tidy.Table, numSplits int, identifierColumn string, fn tidy.TableOperation) (tidy.Table, error) {
	return CreateProcessor(&ProcessorConf{}).Apply(t, numSplits, identifierColumn, fn)
}

// Merge left outer joins left against right on joinColumn, in numSplits chunks of left formed from the distinct values
// of identifierColumn, using a sequential Processor. See Processor.Merge.
func Merge(left tidy.Table, right tidy.Table, numSplits int, identifierColumn string, joinColumn string) (tidy.Table, error) {
	return CreateProcessor(&ProcessorConf{}).Merge(left, right, numSplits, identifierColumn, joinColumn)
}

// Apply runs fn on the rows of t in numSplits chunks. The distinct values of identifierColumn, in order of first
// appearance, are divided by Split; each chunk holds a copy of the rows whose identifier is in one partition, in input
// order. fn is invoked once per partition (including empty ones) and the results are concatenated in partition order
// by table.Concat. Errors returned by fn are returned unchanged.
func (p *Processor) Apply(t tidy.Table, numSplits int, identifierColumn string, fn tidy.TableOperation) (tidy.Table, error) {
	subsets, err := partitionRows(t, numSplits, identifierColumn)
	if err != nil {
		return nil, err
	}
	logger := logging.Logger("batch")
	results, err := p.run(subsets, func(i int, part tidy.Table) (tidy.Table, error) {
		logger.Debug().Int("partition", i).Int("rows", part.NumRows()).Str("table", part.ID()).Msg("applying transform")
		return fn(part)
	})
	if err != nil {
		return nil, err
	}
	return table.Concat(results...)
}

// Merge left outer joins left against right on joinColumn, in numSplits chunks of left. Chunks of left are formed
// exactly as in Apply; right is never partitioned, and every chunk is joined against all of it. Results are
// concatenated in partition order.
func (p *Processor) Merge(left tidy.Table, right tidy.Table, numSplits int, identifierColumn string, joinColumn string) (tidy.Table, error) {
	subsets, err := partitionRows(left, numSplits, identifierColumn)
	if err != nil {
		return nil, err
	}
	j, err := createJoiner(left.Schema(), right, joinColumn, p.conf.LeftSuffix, p.conf.RightSuffix)
	if err != nil {
		return nil, err
	}
	logger := logging.Logger("batch")
	results, err := p.run(subsets, func(i int, part tidy.Table) (tidy.Table, error) {
		logger.Debug().Int("partition", i).Int("rows", part.NumRows()).Str("table", part.ID()).Msg("joining partition")
		return j.join(part)
	})
	if err != nil {
		return nil, err
	}
	return table.Concat(results...)
}

// run invokes fn on each partition, storing results by partition index. Nil results are dropped.
func (p *Processor) run(subsets []tidy.Table, op func(i int, part tidy.Table) (tidy.Table, error)) ([]tidy.Table, error) {
	fn := op
	if p.conf.Observer != nil {
		fn = func(i int, part tidy.Table) (tidy.Table, error) {
			start := time.Now()
			res, err := op(i, part)
			if err == nil {
				p.conf.Observer.ObservePartition(i, part.NumRows(), time.Since(start))
			}
			return res, err
		}
	}
	results := make([]tidy.Table, len(subsets))
	if p.conf.Parallelism <= 1 {
		for i, part := range subsets {
			res, err := fn(i, part)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return compact(results), nil
	}
	g, ctx := errgroup.WithContext(context.Background())
	sem := semaphore.NewWeighted(int64(p.conf.Parallelism))
	for i := range subsets {
		i := i
		// stop launching partitions once any partition has failed
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		if ctx.Err() != nil {
			sem.Release(1)
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			res, err := fn(i, subsets[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compact(results), nil
}

func compact(results []tidy.Table) []tidy.Table {
	res := results[:0]
	for _, r := range results {
		if r != nil {
			res = append(res, r)
		}
	}
	return res
}

// DistinctValues returns the distinct values of a column, in order of first appearance. A missing value is distinct
// from every other value.
func DistinctValues(t tidy.Table, colName string) ([]interface{}, error) {
	vals, err := t.Column(colName)
	if err != nil {
		return nil, err
	}
	idx := createValueIndex()
	for _, v := range vals {
		idx.Insert(v)
	}
	return idx.Values(), nil
}

// partitionRows divides the rows of t into numSplits Tables, according to which partition of the distinct values of
// colName each row's value falls into
func partitionRows(t tidy.Table, numSplits int, colName string) ([]tidy.Table, error) {
	if numSplits <= 0 {
		return nil, errors.InvalidArgumentError{Name: "numSplits", Reason: "must be at least 1"}
	}
	vals, err := t.Column(colName)
	if err != nil {
		return nil, err
	}
	idx := createValueIndex()
	rowPos := make([]int, len(vals))
	for i, v := range vals {
		rowPos[i], _ = idx.Insert(v)
	}
	positions := make([]int, idx.Len())
	for i := range positions {
		positions[i] = i
	}
	parts, err := Split(positions, numSplits)
	if err != nil {
		return nil, err
	}
	partOf := make([]int, len(positions))
	for p, part := range parts {
		for _, pos := range part {
			partOf[pos] = p
		}
	}
	rowsByPart := make([][]int, numSplits)
	for i, pos := range rowPos {
		rowsByPart[partOf[pos]] = append(rowsByPart[partOf[pos]], i)
	}
	subsets := make([]tidy.Table, numSplits)
	for p := range subsets {
		subsets[p] = table.Take(t, rowsByPart[p])
	}
	return subsets, nil
}
