// Package scenario holds small named computations used to demonstrate and
// check the reverse pass end to end.
package scenario

import (
	"sort"
	"strings"

	"github.com/born-ml/tapegrad/internal/autodiff"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Input is a named leaf of a scenario.
type Input struct {
	Name string
	Var  autodiff.Var[float64]
}

// Graph is a recorded computation: its tape, the root the reverse pass is
// seeded at and the leaves worth reporting.
type Graph struct {
	Tape   *autodiff.Tape[float64]
	Root   autodiff.Var[float64]
	Inputs []Input
}

// Scenario builds a fresh Graph each time Build is called.
type Scenario struct {
	Name        string
	Description string
	Build       func() Graph
}

var registry = map[string]Scenario{
	"add": {
		Name:        "add",
		Description: "z = x + y with x=5, y=2",
		Build: func() Graph {
			tape := autodiff.NewTape[float64]()
			x, y := tape.Var(5), tape.Var(2)
			return Graph{Tape: tape, Root: x.Add(y), Inputs: []Input{{"x", x}, {"y", y}}}
		},
	},
	"mul": {
		Name:        "mul",
		Description: "z = x * y with x=5, y=2",
		Build: func() Graph {
			tape := autodiff.NewTape[float64]()
			x, y := tape.Var(5), tape.Var(2)
			return Graph{Tape: tape, Root: x.Mul(y), Inputs: []Input{{"x", x}, {"y", y}}}
		},
	},
	"pow": {
		Name:        "pow",
		Description: "z = x ^ y with x=5, y=2",
		Build: func() Graph {
			tape := autodiff.NewTape[float64]()
			x, y := tape.Var(5), tape.Var(2)
			return Graph{Tape: tape, Root: autodiff.Powf(x, y), Inputs: []Input{{"x", x}, {"y", y}}}
		},
	},
	"relu": {
		Name:        "relu",
		Description: "z = relu(x) + y with x=-5, y=2",
		Build: func() Graph {
			tape := autodiff.NewTape[float64]()
			x, y := tape.Var(-5), tape.Var(2)
			return Graph{Tape: tape, Root: autodiff.ReLU(x).Add(y), Inputs: []Input{{"x", x}, {"y", y}}}
		},
	},
	"chain": {
		Name:        "chain",
		Description: "z = tanh(w·x) with w=[0.4 0.8 0.1], x=[2 4 6]",
		Build: func() Graph {
			tape := autodiff.NewTape[float64]()
			ws := tape.Vars(0.4, 0.8, 0.1)
			xs := tape.Vars(2.0, 4.0, 6.0)
			inputs := []Input{{"w0", ws[0]}, {"w1", ws[1]}, {"w2", ws[2]}, {"x0", xs[0]}, {"x1", xs[1]}, {"x2", xs[2]}}
			return Graph{Tape: tape, Root: autodiff.Dot(ws, xs).Tanh(), Inputs: inputs}
		},
	},
}

// Names returns the registered scenario names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the scenarios named by a comma-separated list. "all" selects
// every scenario.
func Select(list string) ([]Scenario, error) {
	if list == "all" {
		list = strings.Join(Names(), ",")
	}
	var selected []Scenario
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, found := registry[name]
		if !found {
			return nil, errors.Errorf("unknown scenario %q, valid scenarios are %s", name, strings.Join(Names(), ", "))
		}
		selected = append(selected, s)
	}
	if len(selected) == 0 {
		return nil, errors.New("no scenario selected")
	}
	return selected, nil
}

// Run builds the scenario and runs the reverse pass repeat times. With
// zeroGrad set, gradients are reset before every pass so each pass sees a
// clean tape; otherwise they accumulate.
func (s Scenario) Run(repeat int, zeroGrad bool) (Graph, error) {
	if repeat < 1 {
		return Graph{}, errors.Errorf("scenario %s: repeat must be at least 1, got %d", s.Name, repeat)
	}
	g := s.Build()
	for i := 0; i < repeat; i++ {
		if zeroGrad {
			g.Tape.ZeroGrad()
		}
		g.Root.Reverse()
	}
	klog.V(1).Infof("scenario %s: %d nodes, %d reverse pass(es)", s.Name, g.Tape.Len(), repeat)
	return g, nil
}
