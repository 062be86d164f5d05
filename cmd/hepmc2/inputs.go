package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/stream"
)

// eachInput calls f with a Reader over each named file in turn, "-" or no
// names meaning stdin.
func eachInput(cfg *MainConfig, stdin io.Reader, args []string, f func(name string, r *stream.Reader) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := withInput(cfg, stdin, arg, f); err != nil {
			return err
		}
	}
	return nil
}

func withInput(cfg *MainConfig, stdin io.Reader, arg string, f func(name string, r *stream.Reader) error) error {
	rd := stdin
	if arg != "-" {
		file, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer file.Close()
		rd = file
	}
	return f(arg, stream.NewReader(rd, cfg.readOpts()...))
}

// readInput reads all events of one input.
func readInput(cfg *MainConfig, stdin io.Reader, arg string) ([]*event.Event, error) {
	var res []*event.Event
	err := withInput(cfg, stdin, arg, func(name string, r *stream.Reader) error {
		return eachEvent(cfg, r, name, func(ev *event.Event) error {
			res = append(res, ev)
			return nil
		})
	})
	return res, err
}

// eachEvent calls f with each event read by r. With -resync, malformed
// events are logged and skipped.
func eachEvent(cfg *MainConfig, r *stream.Reader, name string, f func(*event.Event) error) error {
	for ev, err := range r.All(cfg.context()) {
		if err != nil {
			var le *stream.LineError
			if cfg.Resync && !isSourceErr(err) && errors.As(err, &le) {
				theLog.Warn("skipping event", "input", name, "line", le.LineNr, "error", le.Err)
				continue
			}
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := f(ev); err != nil {
			return err
		}
	}
	return nil
}

// isSourceErr reports whether err came from reading input rather than
// from a malformed event. The Reader does not recover from those.
func isSourceErr(err error) bool {
	return errors.Is(err, stream.ErrSource) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// transform returns the event to write in place of ev, or nil to drop it.
type transform func(ev *event.Event) (*event.Event, error)

var errLimit = errors.New("event limit reached")

// pipe reads events from the inputs and writes the transformed ones to
// out as a single listing, stopping after limit events if limit >= 0.
func pipe(cfg *MainConfig, out io.Writer, stdin io.Reader, args []string, limit int, tf transform) error {
	w, err := stream.NewWriter(out, cfg.writeOpts(out)...)
	if err != nil {
		return err
	}
	defer w.Close()
	err = eachInput(cfg, stdin, args, func(name string, r *stream.Reader) error {
		return eachEvent(cfg, r, name, func(ev *event.Event) error {
			if limit >= 0 && w.Events() >= limit {
				return errLimit
			}
			if tf != nil {
				var err error
				ev, err = tf(ev)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if ev == nil {
					return nil
				}
			}
			return w.WriteContext(cfg.context(), ev)
		})
	})
	if err != nil && !errors.Is(err, errLimit) {
		return err
	}
	return w.FinishContext(cfg.context())
}
