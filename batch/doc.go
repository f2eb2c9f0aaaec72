// Package batch processes Tables in chunks. The distinct values of an identifier column are divided into
// near-equal, contiguous partitions (in order of first appearance), and a TableOperation, or a left outer
// join against a second Table, is applied to each partition's rows. Partial results are concatenated in
// partition order, so the result is deterministic whether partitions run sequentially or concurrently.
package batch
