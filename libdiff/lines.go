package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-hepmc2/encode"
	"github.com/signadot/go-hepmc2/event"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff. FromNr and ToNr are 1-based positions in
// the respective inputs, 0 when the line is absent there.
type Line struct {
	Op     Op
	Text   string
	FromNr int
	ToNr   int
}

// Lines diffs two lists of lines.
//
// The common prefix and suffix are matched directly. The rest is diffed
// in chunks of at most chunkLines lines per side, so that every distinct
// line of a chunk maps to a valid rune.
func Lines(from, to []string) []Line {
	res := make([]Line, 0, max(len(from), len(to)))
	pre := 0
	for pre < len(from) && pre < len(to) && from[pre] == to[pre] {
		pre++
	}
	suf := 0
	for suf < len(from)-pre && suf < len(to)-pre && from[len(from)-1-suf] == to[len(to)-1-suf] {
		suf++
	}
	for i := range pre {
		res = append(res, Line{Op: Equal, Text: from[i], FromNr: i + 1, ToNr: i + 1})
	}
	fi, ti := pre, pre
	fEnd, tEnd := len(from)-suf, len(to)-suf
	for fi < fEnd || ti < tEnd {
		fc := from[fi:min(fi+chunkLines, fEnd)]
		tc := to[ti:min(ti+chunkLines, tEnd)]
		res = diffChunk(res, fc, tc, fi, ti)
		fi += len(fc)
		ti += len(tc)
	}
	for i := range suf {
		res = append(res, Line{Op: Equal, Text: from[fEnd+i], FromNr: fEnd + i + 1, ToNr: tEnd + i + 1})
	}
	return res
}

// chunkLines bounds the distinct lines of one chunk pair to 2*chunkLines,
// below the number of runes outside the surrogate range.
var chunkLines = 1 << 19

// diffChunk appends the diff of from and to, which start after fi and ti
// lines of their inputs.
func diffChunk(res []Line, from, to []string, fi, ti int) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				fi++
				res = append(res, Line{Op: Delete, Text: runeMap[r], FromNr: fi})
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fi++
				ti++
				res = append(res, Line{Op: Equal, Text: runeMap[r], FromNr: fi, ToNr: ti})
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				ti++
				res = append(res, Line{Op: Insert, Text: runeMap[r], ToNr: ti})
			}
		}
	}
	return res
}

// mapLinesTo assigns each distinct line a rune. Runes skip the surrogate
// range, which does not survive conversion to a string.
func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}

// Events diffs the serialisations of two event lists.
func Events(from, to []*event.Event) []Line {
	return Lines(eventLines(from), eventLines(to))
}

func eventLines(evs []*event.Event) []string {
	var buf []byte
	for _, ev := range evs {
		buf = encode.AppendEvent(buf, ev)
	}
	buf = bytes.TrimSuffix(buf, []byte("\n"))
	if len(buf) == 0 {
		return nil
	}
	return strings.Split(string(buf), "\n")
}

// Differs reports whether lines contains any change.
func Differs(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write writes the changed lines of a diff, each preceded by the nearest
// preceding line number of the old input. color, if not nil, styles a
// whole output line by operation.
func Write(w io.Writer, lines []Line, color func(Op, string) string) error {
	lastFrom := 0
	for i := range lines {
		ln := &lines[i]
		if ln.FromNr != 0 {
			lastFrom = ln.FromNr
		}
		if ln.Op == Equal {
			continue
		}
		out := fmt.Sprintf("%d%s %s", lastFrom, ln.Op, ln.Text)
		if color != nil {
			out = color(ln.Op, out)
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}
