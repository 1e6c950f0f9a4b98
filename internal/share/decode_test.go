package share

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gosecret/internal/radix"
)

func sampleRecords() []Record {
	return []Record{
		{Index: 6, Base: "4", Digits: "213"},
		{Index: 1, Base: "10", Digits: "4"},
		{Index: 3, Base: "10", Digits: "12"},
		{Index: 2, Base: "2", Digits: "111"},
	}
}

func TestDecode_Record(t *testing.T) {
	p, base, err := Decode(Record{Index: 2, Base: "2", Digits: "111"})
	require.NoError(t, err)
	assert.Equal(t, 2, base)
	assert.Equal(t, 2, p.X)
	assert.Equal(t, "7", p.Y.String())
}

func TestDecode_RecordErrors(t *testing.T) {
	_, _, err := Decode(Record{Index: 4, Base: "10", Digits: "a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, radix.ErrInvalidDigit)

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, 4, recErr.Index)
	assert.Contains(t, err.Error(), "record 4")
	assert.Contains(t, err.Error(), `'a'`)

	_, base, err := Decode(Record{Index: 5, Base: "40", Digits: "1"})
	assert.ErrorIs(t, err, radix.ErrInvalidBase)
	assert.Equal(t, 0, base)
}

func TestDecodeAll(t *testing.T) {
	b, err := DecodeAll(4, 3, sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, 4, b.Len())
	assert.Empty(t, b.Failures())

	results := b.Results()
	indices := make([]int, len(results))
	for i, r := range results {
		indices[i] = r.Index
	}
	assert.Equal(t, []int{1, 2, 3, 6}, indices)

	r, ok := b.Get(6)
	require.True(t, ok)
	assert.Equal(t, 4, r.Base)
	assert.Equal(t, "39", r.Value.String())

	ps := b.PointSet()
	assert.Equal(t, 4, ps.Len())
	assert.Equal(t, 4, ps.N)
	assert.Equal(t, 3, ps.K)
}

func TestDecodeAll_IsolatesFailures(t *testing.T) {
	records := append(sampleRecords(),
		Record{Index: 4, Base: "10", Digits: "1x"},
		Record{Index: 5, Base: "one", Digits: "1"},
	)

	b, err := DecodeAll(6, 3, records)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Len())

	failures := b.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, 4, failures[0].Index)
	assert.ErrorIs(t, failures[0].Err, radix.ErrInvalidDigit)
	assert.Equal(t, 5, failures[1].Index)
	assert.ErrorIs(t, failures[1].Err, radix.ErrInvalidBase)
	assert.Nil(t, failures[0].Value)

	ps := b.PointSet()
	assert.Equal(t, 4, ps.Len())
	for _, p := range ps.Points() {
		assert.NotEqual(t, 4, p.X)
		assert.NotEqual(t, 5, p.X)
	}
}

func TestDecodeAll_DuplicateRecord(t *testing.T) {
	_, err := DecodeAll(3, 2, []Record{
		{Index: 1, Base: "10", Digits: "1"},
		{Index: 1, Base: "10", Digits: "2"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate record for index 1")
}
