package hepmc2

import (
	"fmt"

	"github.com/signadot/go-hepmc2/debug"
	"github.com/signadot/go-hepmc2/event"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Where is a compiled boolean expression over an event.
//
// The expression sees the event as `event` and these helpers:
//
//	nvertices()         number of vertices
//	nparticles()        number of particle records
//	count(id)           number of particles with PDG id
//	final()             particles with no end vertex
//	weight(name)        the event weight called name, or 0
type Where struct {
	src  string
	prog *vm.Program
}

// CompileWhere compiles src.
func CompileWhere(src string) (*Where, error) {
	prog, err := expr.Compile(src, expr.Env(whereEnv(&event.Event{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return &Where{src: src, prog: prog}, nil
}

// MustCompileWhere is CompileWhere which panics on error.
func MustCompileWhere(src string) *Where {
	w, err := CompileWhere(src)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Where) String() string {
	return w.src
}

// Match reports whether ev satisfies w.
func (w *Where) Match(ev *event.Event) (bool, error) {
	res, err := vm.Run(w.prog, whereEnv(ev))
	if err != nil {
		return false, fmt.Errorf("event %d: %w", ev.Number, err)
	}
	ok, _ := res.(bool)
	if debug.Read() {
		debug.Logf("where %q on event %d: %t\n", w.src, ev.Number, ok)
	}
	return ok, nil
}

func whereEnv(ev *event.Event) map[string]any {
	return map[string]any{
		"event": ev,
		"nvertices": func() int {
			return len(ev.Vertices)
		},
		"nparticles": func() int {
			return ev.NumParticles()
		},
		"count": func(id int) int {
			n := 0
			for i := range ev.Vertices {
				v := &ev.Vertices[i]
				for _, ps := range [][]event.Particle{v.ParticlesIn, v.ParticlesOut} {
					for j := range ps {
						if int(ps[j].ID) == id {
							n++
						}
					}
				}
			}
			return n
		},
		"final": func() []event.Particle {
			var res []event.Particle
			for i := range ev.Vertices {
				for _, p := range ev.Vertices[i].ParticlesOut {
					if p.EndVertex == event.FinalState {
						res = append(res, p)
					}
				}
			}
			return res
		},
		"weight": func(name string) float64 {
			for i, n := range ev.WeightNames {
				if n == name && i < len(ev.Weights) {
					return ev.Weights[i]
				}
			}
			return 0
		},
	}
}
