package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gosecret/internal/loader"
	"github.com/dbsmedya/gosecret/internal/share"
	"github.com/dbsmedya/gosecret/internal/solver"
)

func solveFiles(t *testing.T, crossValidate bool, names ...string) []*solver.Result {
	t.Helper()
	s := solver.New(solver.Options{CrossValidate: crossValidate}, nil)
	var results []*solver.Result
	for _, name := range names {
		c, err := loader.LoadFile(filepath.Join("..", "..", "testdata", name))
		require.NoError(t, err)
		results = append(results, s.Solve(c))
	}
	return results
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer

	r, err := New(&buf, "", false)
	require.NoError(t, err)
	assert.Equal(t, FormatText, r.format)

	_, err = New(&buf, FormatJSON, false)
	require.NoError(t, err)

	_, err = New(&buf, "xml", false)
	assert.Error(t, err)
}

func TestSecrets_Text(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, FormatText, false)
	require.NoError(t, err)

	results := solveFiles(t, true, "testcase1.json", "testcase3.yaml")
	results = append(results, solver.New(solver.Options{}, nil).Solve(&loader.Case{
		Name: "broken", N: 3, K: 3,
		Records: []share.Record{{Index: 1, Base: "10", Digits: "1"}},
	}))

	require.NoError(t, r.Secrets(results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "testcase1.json: secret = 3 (k=3, shares 1,2,3)", lines[0])
	assert.Equal(t, "testcase3.yaml: secret = 3 (k=3, shares 1,2,3)", lines[1])
	assert.Equal(t, "  inconsistent: x=6 has y=40, polynomial gives 39", lines[2])
	assert.Equal(t, "broken: FAILED insufficient points: need 3, have 1", lines[3])
}

func TestSecrets_JSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, FormatJSON, false)
	require.NoError(t, err)

	require.NoError(t, r.Secrets(solveFiles(t, true, "testcase2.json")))

	var out []caseJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "testcase2.json", out[0].Case)
	assert.Equal(t, "-6290016743746469796", out[0].Secret)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, out[0].Selected)
	assert.Equal(t, 10, out[0].Available)
	assert.True(t, out[0].Sufficient)
	assert.Len(t, out[0].Mismatches, 3)
	assert.Empty(t, out[0].Shares, "shares are only listed by the diagnostic view")
}

func TestShares_Text(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, FormatText, false)
	require.NoError(t, err)

	require.NoError(t, r.Shares(solveFiles(t, false, "testcase3.yaml")))

	want := strings.Join([]string{
		"testcase3.yaml  n=6 k=3",
		"  INDEX  BASE  VALUE",
		"  1      10    4",
		"  2      2     7",
		"  3      10    12",
		`  4      10    error: record 4 (base "10"): invalid digit 'a' at position 1 for base 10`,
		"  6      4     40",
		"  available 4 of 5, need k=3: sufficient",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestShares_JSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, FormatJSON, false)
	require.NoError(t, err)

	require.NoError(t, r.Shares(solveFiles(t, false, "testcase1.json")))

	var out []caseJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	require.Len(t, out[0].Shares, 4)
	assert.Equal(t, shareJSON{Index: 6, Base: 4, Value: "39"}, out[0].Shares[3])
}

func TestShares_InsufficientVerdict(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(&buf, FormatText, false)
	require.NoError(t, err)

	res := solver.New(solver.Options{}, nil).Inspect(&loader.Case{
		Name: "thin", N: 5, K: 3,
		Records: []share.Record{{Index: 2, Base: "99", Digits: "1"}, {Index: 5, Base: "16", Digits: "beef"}},
	})
	require.NoError(t, r.Shares([]*solver.Result{res}))

	out := buf.String()
	assert.Contains(t, out, "  2      -     error:")
	assert.Contains(t, out, "  5      16    48879")
	assert.Contains(t, out, "available 1 of 2, need k=3: insufficient")
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, "", nil)
	assert.Empty(t, buf.String())
}
