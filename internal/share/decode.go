package share

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/gosecret/internal/radix"
)

// RecordError ties a decoding failure to the record that caused it.
type RecordError struct {
	Index int
	Base  string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (base %q): %v", e.Index, e.Base, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// DecodeResult is the outcome of decoding a single record. Exactly one of
// Value and Err is set.
type DecodeResult struct {
	Index int
	Base  int // zero when the base itself was invalid
	Value *big.Int
	Err   error
}

// OK reports whether the record decoded successfully.
func (r DecodeResult) OK() bool {
	return r.Err == nil
}

// Decode converts one record into a point.
func Decode(rec Record) (Point, int, error) {
	base, err := radix.ParseBase(rec.Base)
	if err != nil {
		return Point{}, 0, &RecordError{Index: rec.Index, Base: rec.Base, Err: err}
	}
	y, err := radix.Decode(rec.Digits, base)
	if err != nil {
		return Point{}, base, &RecordError{Index: rec.Index, Base: rec.Base, Err: err}
	}
	return Point{X: rec.Index, Y: y}, base, nil
}

// Batch is the result-per-record collection of one case, keyed by record
// index in ascending order.
type Batch struct {
	N       int
	K       int
	results *orderedmap.OrderedMap[int, DecodeResult]
}

// DecodeAll decodes every record. A record that fails to decode is kept as
// a failed result and does not affect the others. Two records with the same
// index are rejected since the batch could not tell them apart.
func DecodeAll(n, k int, records []Record) (*Batch, error) {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	b := &Batch{N: n, K: k, results: orderedmap.NewOrderedMap[int, DecodeResult]()}
	for _, rec := range sorted {
		if _, exists := b.results.Get(rec.Index); exists {
			return nil, fmt.Errorf("duplicate record for index %d", rec.Index)
		}

		p, base, err := Decode(rec)
		res := DecodeResult{Index: rec.Index, Base: base, Err: err}
		if err == nil {
			res.Value = p.Y
		}
		b.results.Set(rec.Index, res)
	}
	return b, nil
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	return b.results.Len()
}

// Get returns the result for an index.
func (b *Batch) Get(index int) (DecodeResult, bool) {
	return b.results.Get(index)
}

// Results returns every result in ascending index order.
func (b *Batch) Results() []DecodeResult {
	out := make([]DecodeResult, 0, b.results.Len())
	for el := b.results.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Failures returns the results that did not decode.
func (b *Batch) Failures() []DecodeResult {
	var out []DecodeResult
	for el := b.results.Front(); el != nil; el = el.Next() {
		if !el.Value.OK() {
			out = append(out, el.Value)
		}
	}
	return out
}

// PointSet returns the successfully decoded records as points.
func (b *Batch) PointSet() *PointSet {
	points := make([]Point, 0, b.results.Len())
	for el := b.results.Front(); el != nil; el = el.Next() {
		if el.Value.OK() {
			points = append(points, Point{X: el.Key, Y: el.Value.Value})
		}
	}
	return NewPointSet(b.N, b.K, points...)
}
