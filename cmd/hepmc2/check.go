package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/stream"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		evs, err := readInput(cfg.MainConfig, cc.In, arg)
		if err != nil {
			return err
		}
		if err := checkEvents(evs); err != nil {
			failed = true
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok (%d events)\n", arg, len(evs))
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

var errRoundTrip = errors.New("round trip mismatch")

// checkEvents writes evs, reads them back and writes them again. The
// events read must equal evs and the two listings must be identical.
func checkEvents(evs []*event.Event) error {
	first, err := writeListing(evs)
	if err != nil {
		return err
	}
	back, err := readListing(first)
	if err != nil {
		return fmt.Errorf("%w: rereading: %w", errRoundTrip, err)
	}
	if diff := cmp.Diff(evs, back, cmpopts.EquateNaNs(), cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("%w (-read +reread):\n%s", errRoundTrip, diff)
	}
	second, err := writeListing(back)
	if err != nil {
		return err
	}
	if !bytes.Equal(first, second) {
		return fmt.Errorf("%w: listing not stable", errRoundTrip)
	}
	return nil
}

func writeListing(evs []*event.Event) ([]byte, error) {
	buf := &bytes.Buffer{}
	w, err := stream.NewWriter(buf)
	if err != nil {
		return nil, err
	}
	for _, ev := range evs {
		if err := w.Write(ev); err != nil {
			return nil, err
		}
	}
	if err := w.Finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readListing(d []byte) ([]*event.Event, error) {
	sink := &stream.SliceEventSink{}
	if _, err := stream.Copy(sink, stream.NewReader(bytes.NewReader(d))); err != nil {
		return nil, err
	}
	return sink.Events, nil
}
