// Package store keeps a history of reconstructed secrets in a bbolt file.
// Each case has its own nested bucket; entries are keyed by a per-case
// sequence number so they iterate in insertion order.
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var bucketSecrets = []byte("secrets")

// ErrCaseNotFound is returned when no history exists for a case.
var ErrCaseNotFound = errors.New("case not found")

// Entry is one recorded reconstruction.
type Entry struct {
	Case     string    `json:"case"`
	Seq      uint64    `json:"seq"`
	Secret   string    `json:"secret"`
	N        int       `json:"n"`
	K        int       `json:"k"`
	Selector string    `json:"selector"`
	Selected []int     `json:"selected"`
	SolvedAt time.Time `json:"solved_at"`
}

// Store is an open history file.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the history file at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("store: create dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open bbolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSecrets)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketSecrets, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: initialize buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the file.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("store: close bbolt db: %w", err)
	}
	return nil
}

// Put appends e to its case's history and returns it with Seq assigned.
func (s *Store) Put(e Entry) (Entry, error) {
	if e.Case == "" {
		return Entry{}, fmt.Errorf("store: entry has no case name")
	}
	if e.SolvedAt.IsZero() {
		e.SolvedAt = time.Now().UTC()
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSecrets)
		if root == nil {
			return fmt.Errorf("secrets bucket not found")
		}
		b, err := root.CreateBucketIfNotExists([]byte(e.Case))
		if err != nil {
			return fmt.Errorf("create case bucket %q: %w", e.Case, err)
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		e.Seq = seq

		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal entry: %w", err)
		}
		return b.Put(seqKey(seq), data)
	})
	if err != nil {
		return Entry{}, fmt.Errorf("store: put %q: %w", e.Case, err)
	}
	return e, nil
}

// History returns the entries of one case, oldest first.
func (s *Store) History(caseName string) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSecrets)
		if root == nil {
			return fmt.Errorf("secrets bucket not found")
		}
		b := root.Bucket([]byte(caseName))
		if b == nil {
			return ErrCaseNotFound
		}
		return b.ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal entry: %w", err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store: history %q: %w", caseName, err)
	}
	return entries, nil
}

// Latest returns the most recent entry of a case.
func (s *Store) Latest(caseName string) (Entry, error) {
	var e Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSecrets)
		if root == nil {
			return fmt.Errorf("secrets bucket not found")
		}
		b := root.Bucket([]byte(caseName))
		if b == nil {
			return ErrCaseNotFound
		}
		_, v := b.Cursor().Last()
		if v == nil {
			return ErrCaseNotFound
		}
		return json.Unmarshal(v, &e)
	})
	if err != nil {
		return Entry{}, fmt.Errorf("store: latest %q: %w", caseName, err)
	}
	return e, nil
}

// Cases returns every case name with history, in byte order.
func (s *Store) Cases() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketSecrets)
		if root == nil {
			return fmt.Errorf("secrets bucket not found")
		}
		return root.ForEach(func(k, v []byte) error {
			// nested buckets have a nil value
			if v == nil {
				names = append(names, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store: list cases: %w", err)
	}
	return names, nil
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
