// Package stats tracks runtime statistics for a cleaning pipeline: how long each step took, and how
// many partitions and rows each step processed.
package stats

import (
	"sync"
	"time"
)

const statisticRollingWindows = 5

// RunStatistics contains statistics about a running pipeline. It is safe for concurrent use.
type RunStatistics struct {
	mu                          sync.Mutex
	started                     bool
	finished                    bool
	startTime                   time.Time
	totalRuntime                time.Duration
	rowsProcessed               []int64
	partitionsProcessed         []int64
	recentPartitionRuntimes     []time.Duration // for rolling average of recent partition processing times
	recentPartitionRuntimesHead int
	stepRuntimes                []time.Duration
	currentStepStartTime        time.Time
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start(numSteps int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.rowsProcessed = make([]int64, numSteps)
		rs.partitionsProcessed = make([]int64, numSteps)
		rs.recentPartitionRuntimes = make([]time.Duration, statisticRollingWindows)
		rs.stepRuntimes = make([]time.Duration, numSteps)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.totalRuntime = time.Since(rs.startTime)
	rs.finished = true
}

// StartStep tracks the beginning of a step
func (rs *RunStatistics) StartStep() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.currentStepStartTime = time.Now()
}

// EndStep tracks the end of a step
func (rs *RunStatistics) EndStep(sidx int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.stepRuntimes[sidx] = time.Since(rs.currentStepStartTime)
	rs.recentPartitionRuntimes = make([]time.Duration, statisticRollingWindows)
	rs.recentPartitionRuntimesHead = 0
}

// EndPartition records the processing of a partition during a step
func (rs *RunStatistics) EndPartition(sidx int, numRows int, elapsed time.Duration) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.recentPartitionRuntimes[rs.recentPartitionRuntimesHead] = elapsed
	rs.recentPartitionRuntimesHead = (rs.recentPartitionRuntimesHead + 1) % len(rs.recentPartitionRuntimes)
	rs.rowsProcessed[sidx] += int64(numRows)
	rs.partitionsProcessed[sidx]++
}

// StepObserver returns a batch.PartitionObserver which records partitions against a step
func (rs *RunStatistics) StepObserver(sidx int) *StepObserver {
	return &StepObserver{stats: rs, step: sidx}
}

// GetStartTime returns the start time of the pipeline
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.startTime
}

// GetRuntime returns the running time of the pipeline
func (rs *RunStatistics) GetRuntime() time.Duration {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// GetNumRowsProcessed returns the number of rows which have been processed in partitions so far, counted by step
func (rs *RunStatistics) GetNumRowsProcessed() []int64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]int64(nil), rs.rowsProcessed...)
}

// GetNumPartitionsProcessed returns the number of partitions which have been processed so far, counted by step
func (rs *RunStatistics) GetNumPartitionsProcessed() []int64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]int64(nil), rs.partitionsProcessed...)
}

// GetCurrentPartitionProcessingTime returns a rolling average of partition processing time
func (rs *RunStatistics) GetCurrentPartitionProcessingTime() time.Duration {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	var total time.Duration
	for _, d := range rs.recentPartitionRuntimes {
		total += d
	}
	return total / statisticRollingWindows
}

// GetStepRuntimes returns the recorded runtime of each step
func (rs *RunStatistics) GetStepRuntimes() []time.Duration {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]time.Duration(nil), rs.stepRuntimes...)
}

// StepObserver records the partitions processed by a single step
type StepObserver struct {
	stats *RunStatistics
	step  int
}

// ObservePartition records a completed partition
func (o *StepObserver) ObservePartition(index int, numRows int, elapsed time.Duration) {
	o.stats.EndPartition(o.step, numRows, elapsed)
}
