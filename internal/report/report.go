// Package report renders solver results for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/gosecret/internal/solver"
)

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes results in one format.
type Renderer struct {
	w      io.Writer
	format string
	color  bool
}

// New returns a Renderer. An empty format means text.
func New(w io.Writer, format string, useColor bool) (*Renderer, error) {
	switch format {
	case "", FormatText:
		format = FormatText
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
	return &Renderer{w: w, format: format, color: useColor}, nil
}

func (r *Renderer) paint(c color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

// Secrets renders the outcome of solve: one line per case.
func (r *Renderer) Secrets(results []*solver.Result) error {
	if r.format == FormatJSON {
		return r.writeJSON(results, false)
	}

	for _, res := range results {
		name := r.paint(color.Bold, res.Case)
		if res.Err != nil {
			fmt.Fprintf(r.w, "%s: %s %v\n", name, r.paint(color.Red, "FAILED"), res.Err)
		} else {
			fmt.Fprintf(r.w, "%s: secret = %s (k=%d, shares %s)\n",
				name, r.paint(color.Green, res.Secret().String()), res.K,
				joinInts(res.Reconstruction.SelectedIndices()))
		}
		for _, m := range res.Mismatches {
			fmt.Fprintf(r.w, "  %s %s\n", r.paint(color.Yellow, "inconsistent:"), m)
		}
	}
	return nil
}

// Shares renders the diagnostic view: every decoded value, every decoding
// failure and whether enough shares remain.
func (r *Renderer) Shares(results []*solver.Result) error {
	if r.format == FormatJSON {
		return r.writeJSON(results, true)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintf(r.w, "%s  n=%d k=%d\n", r.paint(color.Bold, res.Case), res.N, res.K)
		if res.Batch == nil {
			fmt.Fprintf(r.w, "  %s %v\n", r.paint(color.Red, "error:"), res.Err)
			continue
		}

		rows := [][]string{{"INDEX", "BASE", "VALUE"}}
		for _, d := range res.Batch.Results() {
			base := "-"
			if d.Base != 0 {
				base = strconv.Itoa(d.Base)
			}
			var value string
			if d.OK() {
				value = d.Value.String()
			} else {
				value = r.paint(color.Red, "error: "+d.Err.Error())
			}
			rows = append(rows, []string{strconv.Itoa(d.Index), base, value})
		}
		writeTable(r.w, "  ", rows)

		verdict := r.paint(color.Green, "sufficient")
		if !res.Sufficient() {
			verdict = r.paint(color.Red, "insufficient")
		}
		fmt.Fprintf(r.w, "  available %d of %d, need k=%d: %s\n",
			res.Available(), res.Batch.Len(), res.K, verdict)
	}
	return nil
}

// writeTable pads every column but the last to its widest cell.
func writeTable(w io.Writer, indent string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row[:len(row)-1] {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for _, row := range rows {
		var sb strings.Builder
		sb.WriteString(indent)
		for i, cell := range row {
			if i == len(row)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		fmt.Fprintln(w, sb.String())
	}
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ",")
}

type caseJSON struct {
	Case       string         `json:"case"`
	N          int            `json:"n"`
	K          int            `json:"k"`
	Secret     string         `json:"secret,omitempty"`
	Selected   []int          `json:"selected,omitempty"`
	Available  int            `json:"available"`
	Sufficient bool           `json:"sufficient"`
	Shares     []shareJSON    `json:"shares,omitempty"`
	Mismatches []mismatchJSON `json:"mismatches,omitempty"`
	Error      string         `json:"error,omitempty"`
}

type shareJSON struct {
	Index int    `json:"index"`
	Base  int    `json:"base,omitempty"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

type mismatchJSON struct {
	Index    int    `json:"index"`
	Value    string `json:"value"`
	Expected string `json:"expected"`
}

func toJSON(res *solver.Result, withShares bool) caseJSON {
	out := caseJSON{
		Case:       res.Case,
		N:          res.N,
		K:          res.K,
		Available:  res.Available(),
		Sufficient: res.Sufficient(),
	}
	if s := res.Secret(); s != nil {
		out.Secret = s.String()
		out.Selected = res.Reconstruction.SelectedIndices()
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	for _, m := range res.Mismatches {
		out.Mismatches = append(out.Mismatches, mismatchJSON{
			Index:    m.X,
			Value:    m.Got.String(),
			Expected: m.Expected.RatString(),
		})
	}
	if withShares && res.Batch != nil {
		for _, d := range res.Batch.Results() {
			sj := shareJSON{Index: d.Index, Base: d.Base}
			if d.OK() {
				sj.Value = d.Value.String()
			} else {
				sj.Error = d.Err.Error()
			}
			out.Shares = append(out.Shares, sj)
		}
	}
	return out
}

func (r *Renderer) writeJSON(results []*solver.Result, withShares bool) error {
	out := make([]caseJSON, len(results))
	for i, res := range results {
		out[i] = toJSON(res, withShares)
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
