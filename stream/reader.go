package stream

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/signadot/go-hepmc2/debug"
	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/parse"
	"github.com/signadot/go-hepmc2/token"
)

// Reader reads events from a listing.
//
// Header and footer lines, and blank lines between events, are skipped.
// A Reader is not safe for concurrent use.
type Reader struct {
	src  Source
	opts *streamOpts
	log  *slog.Logger

	b parse.Builder

	// the E line of the next event, read while finishing the previous one
	pending   []byte
	hasPend   bool
	pendingNr int

	lineNr int
	skip   bool
	err    error
}

// NewReader creates a Reader which blocks on r.
func NewReader(r io.Reader, opts ...StreamOption) *Reader {
	return NewSourceReader(NewReaderSource(r), opts...)
}

// NewSourceReader creates a Reader pulling lines from src.
func NewSourceReader(src Source, opts ...StreamOption) *Reader {
	o := newStreamOpts(opts)
	return &Reader{
		src:  src,
		opts: o,
		log:  o.logger,
	}
}

// Line returns the number of lines read so far.
func (r *Reader) Line() int {
	return r.lineNr
}

// Next returns the next event. At the end of the listing it returns
// io.EOF. Other errors are *LineError values; those of the Source also
// match ErrSource.
//
// Without WithResync any error is returned again by all later calls.
func (r *Reader) Next(ctx context.Context) (*event.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	if !r.hasPend {
		if err := r.seek(ctx); err != nil {
			return nil, err
		}
	}
	r.hasPend = false
	if err := r.b.Begin(r.pending); err != nil {
		return nil, r.fail(err, r.pending, r.pendingNr)
	}
	for {
		line, err := r.readLine(ctx)
		if err == io.EOF {
			return r.b.Event(), nil
		}
		if err != nil {
			return nil, err
		}
		if len(line) > 0 && line[0] == 'E' {
			r.hold(line)
			return r.b.Event(), nil
		}
		if parse.IsFraming(line) {
			continue
		}
		if err := r.b.Add(line); err != nil {
			return nil, r.fail(err, line, r.lineNr)
		}
	}
}

// ReadEvent implements EventReader.
func (r *Reader) ReadEvent() (*event.Event, error) {
	return r.Next(context.Background())
}

// All returns the remaining events as a sequence. The sequence stops at
// the end of the listing and after yielding an error which the Reader
// cannot recover from.
func (r *Reader) All(ctx context.Context) iter.Seq2[*event.Event, error] {
	return func(yield func(*event.Event, error) bool) {
		for {
			ev, err := r.Next(ctx)
			if err == io.EOF {
				return
			}
			if !yield(ev, err) {
				return
			}
			if r.err != nil {
				return
			}
		}
	}
}

// seek reads up to the next event line.
func (r *Reader) seek(ctx context.Context) error {
	for {
		line, err := r.readLine(ctx)
		if err != nil {
			return err
		}
		if parse.IsBlank(line) || parse.IsFraming(line) {
			continue
		}
		if r.skip && line[0] != 'E' {
			continue
		}
		r.skip = false
		r.hold(line)
		return nil
	}
}

func (r *Reader) hold(line []byte) {
	r.pending = append(r.pending[:0], line...)
	r.hasPend = true
	r.pendingNr = r.lineNr
}

// readLine reads from the source. Source errors are sticky and carry
// ErrSource.
func (r *Reader) readLine(ctx context.Context) ([]byte, error) {
	line, err := r.src.ReadLine(ctx)
	if err == io.EOF {
		r.err = io.EOF
		return nil, err
	}
	if err != nil {
		r.err = &LineError{
			Err:    fmt.Errorf("%w: %w", ErrSource, err),
			Line:   string(token.TrimEOL(line)),
			LineNr: r.lineNr + 1,
		}
		return nil, r.err
	}
	r.lineNr++
	if debug.Read() {
		debug.Logf("hepmc2: read %d: %s\n", r.lineNr, token.TrimEOL(line))
	}
	return line, nil
}

func (r *Reader) fail(err error, line []byte, lineNr int) error {
	le := &LineError{
		Err:    err,
		Line:   string(token.TrimEOL(line)),
		LineNr: lineNr,
	}
	r.b.Event()
	if !r.opts.resync {
		r.err = le
		return le
	}
	r.log.Debug("skipping malformed event", "line", lineNr, "error", err)
	r.skip = true
	return le
}
