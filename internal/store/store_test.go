package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutAndHistory(t *testing.T) {
	s := openTemp(t)

	first, err := s.Put(Entry{Case: "testcase1.json", Secret: "3", N: 4, K: 3, Selector: "first-k", Selected: []int{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.Seq)
	assert.False(t, first.SolvedAt.IsZero())

	second, err := s.Put(Entry{Case: "testcase1.json", Secret: "3", N: 4, K: 3, Selector: "last-k", Selected: []int{2, 3, 6}})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.Seq)

	history, err := s.History("testcase1.json")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first-k", history[0].Selector)
	assert.Equal(t, []int{2, 3, 6}, history[1].Selected)

	latest, err := s.Latest("testcase1.json")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), latest.Seq)
}

func TestPut_KeepsGivenTime(t *testing.T) {
	s := openTemp(t)
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	_, err := s.Put(Entry{Case: "c", Secret: "1", SolvedAt: at})
	require.NoError(t, err)

	e, err := s.Latest("c")
	require.NoError(t, err)
	assert.True(t, at.Equal(e.SolvedAt))
}

func TestPut_RequiresCase(t *testing.T) {
	s := openTemp(t)
	_, err := s.Put(Entry{Secret: "1"})
	assert.Error(t, err)
}

func TestHistory_UnknownCase(t *testing.T) {
	s := openTemp(t)

	_, err := s.History("missing")
	assert.ErrorIs(t, err, ErrCaseNotFound)

	_, err = s.Latest("missing")
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestCases(t *testing.T) {
	s := openTemp(t)

	for _, name := range []string{"b.json", "a.json", "b.json"} {
		_, err := s.Put(Entry{Case: name, Secret: "0"})
		require.NoError(t, err)
	}

	names, err := s.Cases()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, names)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Put(Entry{Case: "persisted", Secret: "79836264059301"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	e, err := s.Latest("persisted")
	require.NoError(t, err)
	assert.Equal(t, "79836264059301", e.Secret)
}
