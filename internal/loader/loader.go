// Package loader reads share files: a "keys" entry declaring n and k, plus
// one entry per share keyed by its index.
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}
//
// JSON and YAML inputs are both accepted.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/dbsmedya/gosecret/internal/share"
)

const keysEntry = "keys"

// Case is one parsed input file.
type Case struct {
	Name    string
	N       int
	K       int
	Records []share.Record
}

// Indices returns the record indices in ascending order.
func (c *Case) Indices() []int {
	out := make([]int, len(c.Records))
	for i, r := range c.Records {
		out[i] = r.Index
	}
	return out
}

// entry is the union of the "keys" entry and a share entry.
type entry struct {
	N     *int   `yaml:"n"`
	K     *int   `yaml:"k"`
	Base  scalar `yaml:"base"`
	Value scalar `yaml:"value"`
}

// scalar accepts a string or an integer and keeps its text form, so a base
// may be written as "16" or 16.
type scalar string

func (s *scalar) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = scalar(t)
	case int:
		*s = scalar(strconv.Itoa(t))
	case int64:
		*s = scalar(strconv.FormatInt(t, 10))
	case uint64:
		*s = scalar(strconv.FormatUint(t, 10))
	case float64:
		return fmt.Errorf("numeric value %v is not an exact integer; quote it", t)
	default:
		return fmt.Errorf("unsupported value of type %T", v)
	}
	return nil
}

// LoadFile reads and parses a share file. The case is named after the file.
func LoadFile(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	c, err := Parse(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadFiles loads every path, stopping at the first failure.
func LoadFiles(paths []string) ([]*Case, error) {
	cases := make([]*Case, 0, len(paths))
	for _, p := range paths {
		c, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Parse decodes a share document. Records are returned in ascending index
// order; their bases and values are not validated here. Indices are x
// coordinates and may exceed n.
func Parse(name string, data []byte) (*Case, error) {
	var raw map[string]entry
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	keys, ok := raw[keysEntry]
	if !ok {
		return nil, fmt.Errorf("missing %q entry", keysEntry)
	}
	if keys.N == nil || keys.K == nil {
		return nil, fmt.Errorf("%q entry must define n and k", keysEntry)
	}
	n, k := *keys.N, *keys.K
	if k < 1 || n < 1 || k > n {
		return nil, fmt.Errorf("invalid keys: need 1 <= k <= n, got n=%d k=%d", n, k)
	}

	c := &Case{Name: name, N: n, K: k}
	for key, e := range raw {
		if key == keysEntry {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || index < 1 {
			return nil, fmt.Errorf("invalid share index %q: must be a positive integer", key)
		}
		c.Records = append(c.Records, share.Record{
			Index:  index,
			Base:   string(e.Base),
			Digits: strings.TrimSpace(string(e.Value)),
		})
	}

	sort.Slice(c.Records, func(i, j int) bool {
		return c.Records[i].Index < c.Records[j].Index
	})
	for i := 1; i < len(c.Records); i++ {
		if c.Records[i].Index == c.Records[i-1].Index {
			return nil, fmt.Errorf("duplicate share index %d", c.Records[i].Index)
		}
	}
	return c, nil
}
