package stream

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
)

// Source provides the lines of a listing.
//
// ReadLine returns the next line including its terminator, if any. The
// returned slice is only valid until the next call. At the end of input
// ReadLine returns io.EOF. With any other error it returns the part of
// the line read before the failure, possibly empty.
type Source interface {
	ReadLine(ctx context.Context) ([]byte, error)
}

// Sink receives the bytes of a listing. Implementations must not retain p.
type Sink interface {
	Write(ctx context.Context, p []byte) error
}

// ReaderSource reads lines from an io.Reader. The context is only checked
// between lines.
type ReaderSource struct {
	r   *bufio.Reader
	buf []byte
}

// NewReaderSource creates a Source reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReaderSize(r, defaultBufferSize)}
}

const defaultBufferSize = 64 << 10

func (s *ReaderSource) ReadLine(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	frag, err := s.r.ReadSlice('\n')
	if err == nil {
		return frag, nil
	}
	// long line or unterminated last line: collect into our own buffer
	s.buf = append(s.buf[:0], frag...)
	for errors.Is(err, bufio.ErrBufferFull) {
		frag, err = s.r.ReadSlice('\n')
		s.buf = append(s.buf, frag...)
	}
	switch {
	case err == nil:
		return s.buf, nil
	case err == io.EOF && len(s.buf) > 0:
		return s.buf, nil
	case err == io.EOF:
		return nil, err
	default:
		return s.buf, err
	}
}

// ChanSource reads lines from chunks received on a channel. Chunks need
// not be aligned to lines. A closed channel ends the input.
type ChanSource struct {
	ch   <-chan []byte
	buf  []byte
	off  int
	done bool
}

// NewChanSource creates a Source receiving from ch.
func NewChanSource(ch <-chan []byte) *ChanSource {
	return &ChanSource{ch: ch}
}

func (s *ChanSource) ReadLine(ctx context.Context) ([]byte, error) {
	for {
		if i := bytes.IndexByte(s.buf[s.off:], '\n'); i >= 0 {
			line := s.buf[s.off : s.off+i+1]
			s.off += i + 1
			return line, nil
		}
		if s.done {
			if s.off < len(s.buf) {
				line := s.buf[s.off:]
				s.off = len(s.buf)
				return line, nil
			}
			return nil, io.EOF
		}
		select {
		case <-ctx.Done():
			return s.buf[s.off:], ctx.Err()
		case chunk, ok := <-s.ch:
			if !ok {
				s.done = true
				continue
			}
			n := copy(s.buf, s.buf[s.off:])
			s.buf = append(s.buf[:n], chunk...)
			s.off = 0
		}
	}
}

// WriterSink writes to an io.Writer. The context is only checked before
// each write.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(ctx context.Context, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.w.Write(p)
	return err
}

// ChanSink sends a copy of each write on a channel. Closing the channel
// is left to the caller.
type ChanSink struct {
	ch chan<- []byte
}

// NewChanSink creates a Sink sending on ch.
func NewChanSink(ch chan<- []byte) *ChanSink {
	return &ChanSink{ch: ch}
}

func (s *ChanSink) Write(ctx context.Context, p []byte) error {
	chunk := bytes.Clone(p)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.ch <- chunk:
		return nil
	}
}
