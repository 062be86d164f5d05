package libdiff

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-hepmc2/event"
)

func TestLines(t *testing.T) {
	got := Lines([]string{"a", "b", "c"}, []string{"a", "x", "c", "d"})
	want := []Line{
		{Op: Equal, Text: "a", FromNr: 1, ToNr: 1},
		{Op: Delete, Text: "b", FromNr: 2},
		{Op: Insert, Text: "x", ToNr: 2},
		{Op: Equal, Text: "c", FromNr: 3, ToNr: 3},
		{Op: Insert, Text: "d", ToNr: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Differs(got) {
		t.Error("expected differences")
	}
}

// sides rebuilds both inputs from a diff.
func sides(lines []Line) (from, to []string) {
	for _, ln := range lines {
		if ln.Op != Insert {
			from = append(from, ln.Text)
		}
		if ln.Op != Delete {
			to = append(to, ln.Text)
		}
	}
	return from, to
}

func TestLinesChunked(t *testing.T) {
	old := chunkLines
	chunkLines = 3
	t.Cleanup(func() { chunkLines = old })

	from := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	to := []string{"x", "b", "c", "y", "e", "f", "g", "z", "z", "i", "w"}
	lines := Lines(from, to)
	gotFrom, gotTo := sides(lines)
	if diff := cmp.Diff(from, gotFrom); diff != "" {
		t.Errorf("from (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(to, gotTo); diff != "" {
		t.Errorf("to (-want +got):\n%s", diff)
	}
	fi, ti := 0, 0
	for _, ln := range lines {
		if ln.FromNr != 0 {
			fi++
			if ln.FromNr != fi {
				t.Errorf("%q: from line %d, want %d", ln.Text, ln.FromNr, fi)
			}
		}
		if ln.ToNr != 0 {
			ti++
			if ln.ToNr != ti {
				t.Errorf("%q: to line %d, want %d", ln.Text, ln.ToNr, ti)
			}
		}
	}
}

func TestLinesManyDistinct(t *testing.T) {
	if testing.Short() {
		t.Skip("large input")
	}
	// more distinct lines than there are runes outside the surrogate range
	const n = 0x10F800 + 16
	from := make([]string, n)
	for i := range from {
		from[i] = "P " + strconv.Itoa(i)
	}
	to := append([]string{}, from...)
	to[0] = "V first"
	to[n-1] = "V last"
	var changed []Line
	for _, ln := range Lines(from, to) {
		if ln.Op != Equal {
			changed = append(changed, ln)
		}
	}
	want := []Line{
		{Op: Delete, Text: "P 0", FromNr: 1},
		{Op: Insert, Text: "V first", ToNr: 1},
		{Op: Delete, Text: from[n-1], FromNr: n},
		{Op: Insert, Text: "V last", ToNr: n},
	}
	if diff := cmp.Diff(want, changed); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEventsEqual(t *testing.T) {
	evs := []*event.Event{{Number: 1}, {Number: 2}}
	lines := Events(evs, []*event.Event{evs[0].Clone(), evs[1].Clone()})
	if Differs(lines) {
		t.Errorf("unexpected differences %v", lines)
	}
	if len(lines) != 8 {
		t.Errorf("expected 8 lines, got %d", len(lines))
	}
}

func TestWrite(t *testing.T) {
	from := []*event.Event{{Number: 1, CrossSection: event.CrossSection{Value: 1}}}
	to := []*event.Event{{Number: 1, CrossSection: event.CrossSection{Value: 2}}}
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, Events(from, to), nil); err != nil {
		t.Fatal(err)
	}
	want := "3- C 1 0\n3+ C 2 0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
	buf.Reset()
	color := func(op Op, s string) string { return "[" + s + "]" }
	if err := Write(buf, Events(from, to), color); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("[3- C 1 0]\n[3+ C 2 0]\n", buf.String()); diff != "" {
		t.Error(diff)
	}
}
