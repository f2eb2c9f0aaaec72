package batch

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
)

// valueIndex assigns a position to each distinct scalar value, in order of first insertion.
// Values are bucketed by an xxhash of their canonical encoding, and compared for equality within a bucket.
type valueIndex struct {
	buckets map[uint64][]int
	values  []interface{}
	buf     []byte
}

func createValueIndex() *valueIndex {
	return &valueIndex{
		buckets: make(map[uint64][]int),
		values:  make([]interface{}, 0),
		buf:     make([]byte, 0, 16),
	}
}

// Len returns the number of distinct values in the index
func (idx *valueIndex) Len() int {
	return len(idx.values)
}

// Values returns the distinct values in the index, in order of first insertion
func (idx *valueIndex) Values() []interface{} {
	return idx.values
}

// Insert returns the position of v, adding it to the index if it is new
func (idx *valueIndex) Insert(v interface{}) (pos int, isNew bool) {
	key := idx.hash(v)
	for _, pos := range idx.buckets[key] {
		if valuesEqual(idx.values[pos], v) {
			return pos, false
		}
	}
	pos = len(idx.values)
	idx.values = append(idx.values, v)
	idx.buckets[key] = append(idx.buckets[key], pos)
	return pos, true
}

// Find returns the position of v, if it is in the index. Find is safe for concurrent use, as long as
// Insert is not called concurrently.
func (idx *valueIndex) Find(v interface{}) (int, bool) {
	var buf [24]byte
	key := xxhash.Sum64(appendCanonical(buf[:0], v))
	for _, pos := range idx.buckets[key] {
		if valuesEqual(idx.values[pos], v) {
			return pos, true
		}
	}
	return -1, false
}

func (idx *valueIndex) hash(v interface{}) uint64 {
	idx.buf = appendCanonical(idx.buf[:0], v)
	return xxhash.Sum64(idx.buf)
}

// appendCanonical appends a type-tagged binary encoding of a scalar value to buf
func appendCanonical(buf []byte, v interface{}) []byte {
	var num [8]byte
	switch val := v.(type) {
	case nil:
		return append(buf, 0)
	case string:
		buf = append(buf, 1)
		return append(buf, val...)
	case bool:
		if val {
			return append(buf, 2, 1)
		}
		return append(buf, 2, 0)
	case int8:
		binary.LittleEndian.PutUint64(num[:], uint64(val))
		buf = append(buf, 3)
	case int16:
		binary.LittleEndian.PutUint64(num[:], uint64(val))
		buf = append(buf, 4)
	case int32:
		binary.LittleEndian.PutUint64(num[:], uint64(val))
		buf = append(buf, 5)
	case int64:
		binary.LittleEndian.PutUint64(num[:], uint64(val))
		buf = append(buf, 6)
	case uint8:
		binary.LittleEndian.PutUint64(num[:], uint64(val))
		buf = append(buf, 7)
	case uint16:
		binary.LittleEndian.PutUint64(num[:], uint64(val))
		buf = append(buf, 8)
	case uint32:
		binary.LittleEndian.PutUint64(num[:], uint64(val))
		buf = append(buf, 9)
	case uint64:
		binary.LittleEndian.PutUint64(num[:], val)
		buf = append(buf, 10)
	case float32:
		binary.LittleEndian.PutUint64(num[:], canonicalFloatBits(float64(val)))
		buf = append(buf, 11)
	case float64:
		binary.LittleEndian.PutUint64(num[:], canonicalFloatBits(val))
		buf = append(buf, 12)
	case time.Time:
		binary.LittleEndian.PutUint64(num[:], uint64(val.UnixNano()))
		buf = append(buf, 13)
	default:
		buf = append(buf, 14)
		return append(buf, fmt.Sprintf("%#v", val)...)
	}
	return append(buf, num[:]...)
}

// canonicalFloatBits maps every NaN to one encoding, and -0 to +0, so that values which compare
// equal under valuesEqual share a hash
func canonicalFloatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	case f == 0:
		return 0
	}
	return math.Float64bits(f)
}

// valuesEqual compares scalar values. Times are equal if they are the same instant, and
// NaN is equal to NaN.
func valuesEqual(a interface{}, b interface{}) bool {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case float64:
		bv, ok := b.(float64)
		return ok && (av == bv || (math.IsNaN(av) && math.IsNaN(bv)))
	case float32:
		bv, ok := b.(float32)
		return ok && (av == bv || (math.IsNaN(float64(av)) && math.IsNaN(float64(bv))))
	}
	return a == b
}
