package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-hepmc2/event"
	"github.com/signadot/go-hepmc2/stream"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

func stat(cfg *StatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stat.Parse(cc, args)
	if err != nil {
		cfg.Stat.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	stats, err := statInputs(cfg.MainConfig, cc.In, args, cfg.J)
	if err != nil {
		return err
	}
	for _, st := range stats {
		if _, err := fmt.Fprintln(cc.Out, st); err != nil {
			return err
		}
	}
	return nil
}

// fileStats summarises one input.
type fileStats struct {
	Name      string
	Events    int
	Vertices  int
	Particles int
	XSecSum   float64
}

// MeanXSec is the mean cross section over the events, 0 if there are none.
func (s *fileStats) MeanXSec() float64 {
	if s.Events == 0 {
		return 0
	}
	return s.XSecSum / float64(s.Events)
}

func (s *fileStats) String() string {
	return fmt.Sprintf("%s: %d events, %d vertices, %d particles, mean xsec %g",
		s.Name, s.Events, s.Vertices, s.Particles, s.MeanXSec())
}

func (s *fileStats) add(ev *event.Event) {
	s.Events++
	s.Vertices += len(ev.Vertices)
	s.Particles += ev.NumParticles()
	s.XSecSum += ev.CrossSection.Value
}

// statInputs reads up to j inputs concurrently. The result is in
// argument order.
func statInputs(cfg *MainConfig, stdin io.Reader, args []string, j int) ([]*fileStats, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	nStdin := 0
	for _, arg := range args {
		if arg == "-" {
			nStdin++
		}
	}
	if nStdin > 1 {
		return nil, fmt.Errorf("%w: stdin (-) given more than once", cli.ErrUsage)
	}
	res := make([]*fileStats, len(args))
	g, ctx := errgroup.WithContext(cfg.context())
	if j > 0 {
		g.SetLimit(j)
	}
	sub := *cfg
	sub.Ctx = ctx
	for i, arg := range args {
		g.Go(func() error {
			st := &fileStats{Name: arg}
			err := withInput(&sub, stdin, arg, func(name string, r *stream.Reader) error {
				return eachEvent(&sub, r, name, func(ev *event.Event) error {
					st.add(ev)
					return nil
				})
			})
			if err != nil {
				return err
			}
			res[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
