package stream

import (
	"log/slog"

	"github.com/signadot/go-hepmc2/encode"
)

// StreamOption configures Reader/Writer behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	resync  bool
	header  string
	logger  *slog.Logger
	encOpts []encode.EncodeOption
}

func newStreamOpts(opts []StreamOption) *streamOpts {
	res := &streamOpts{header: DefaultHeader}
	for _, opt := range opts {
		opt(res)
	}
	if res.logger == nil {
		res.logger = slog.Default()
	}
	return res
}

// WithResync makes a Reader recover from malformed events: after an error
// the next read skips ahead to the next event line instead of failing
// again. Errors from the Source stay sticky.
func WithResync() StreamOption {
	return func(opts *streamOpts) {
		opts.resync = true
	}
}

// WithHeader replaces DefaultHeader as the text a Writer emits on
// construction. The header is written verbatim.
func WithHeader(h string) StreamOption {
	return func(opts *streamOpts) {
		opts.header = h
	}
}

// WithLogger sets the logger for diagnostics which cannot be returned,
// such as a failed footer in Writer.Close. Defaults to slog.Default().
func WithLogger(l *slog.Logger) StreamOption {
	return func(opts *streamOpts) {
		opts.logger = l
	}
}

// WithEncodeOptions passes record encoding options to a Writer.
func WithEncodeOptions(eos ...encode.EncodeOption) StreamOption {
	return func(opts *streamOpts) {
		opts.encOpts = append(opts.encOpts, eos...)
	}
}
