// Package libdiff computes line diffs between rendered documents.
package libdiff

import (
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op byte

const (
	Equal  Op = ' '
	Delete Op = '-'
	Insert Op = '+'
)

type Line struct {
	Op   Op
	Text string
}

type Diff []Line

// Lines diffs from and to line by line.
func Lines(from, to string) Diff {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res Diff
	for i := range diffs {
		d := &diffs[i]
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	for i := range res {
		res[i] = strings.TrimSuffix(res[i], "\n")
	}
	return res
}

func (d Diff) Changed() bool {
	for i := range d {
		if d[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write writes the diff, one line per entry prefixed by its op. color may
// be nil.
func (d Diff) Write(w io.Writer, color func(Op, string) string) error {
	for i := range d {
		ln := string(d[i].Op) + " " + d[i].Text
		if color != nil {
			ln = color(d[i].Op, ln)
		}
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (d Diff) String() string {
	buf := &strings.Builder{}
	_ = d.Write(buf, nil)
	return buf.String()
}
