package scenario_test

import (
	"math"
	"testing"

	"github.com/born-ml/tapegrad/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grads(g scenario.Graph) map[string]float64 {
	m := make(map[string]float64, len(g.Inputs))
	for _, in := range g.Inputs {
		m[in.Name] = in.Var.Grad()
	}
	return m
}

func TestScenarios(t *testing.T) {
	chainRes := 0.4*2 + 0.8*4 + 0.1*6
	chainLocal := 1 - math.Pow(math.Tanh(chainRes), 2)

	cases := []struct {
		name  string
		value float64
		grads map[string]float64
	}{
		{"add", 7, map[string]float64{"x": 1, "y": 1}},
		{"mul", 10, map[string]float64{"x": 2, "y": 5}},
		{"pow", 25, map[string]float64{"x": 10, "y": math.Log(5) * 25}},
		{"relu", 2, map[string]float64{"x": 0, "y": 1}},
		{"chain", math.Tanh(chainRes), map[string]float64{
			"w0": 2 * chainLocal, "w1": 4 * chainLocal, "w2": 6 * chainLocal,
			"x0": 0.4 * chainLocal, "x1": 0.8 * chainLocal, "x2": 0.1 * chainLocal,
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			selected, err := scenario.Select(c.name)
			require.NoError(t, err)
			require.Len(t, selected, 1)

			g, err := selected[0].Run(1, false)
			require.NoError(t, err)
			assert.InDelta(t, c.value, g.Root.Value(), 1e-12)
			assert.Equal(t, 1.0, g.Root.Grad())

			got := grads(g)
			require.Len(t, got, len(c.grads))
			for name, want := range c.grads {
				assert.InDelta(t, want, got[name], 1e-9, name)
			}
		})
	}
}

func TestRun_RepeatAccumulates(t *testing.T) {
	selected, err := scenario.Select("mul")
	require.NoError(t, err)

	g, err := selected[0].Run(2, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 4, "y": 10}, grads(g))

	g, err = selected[0].Run(3, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 2, "y": 5}, grads(g))

	_, err = selected[0].Run(0, false)
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	all, err := scenario.Select("all")
	require.NoError(t, err)
	assert.Len(t, all, len(scenario.Names()))
	assert.Equal(t, []string{"add", "chain", "mul", "pow", "relu"}, scenario.Names())

	two, err := scenario.Select("pow, relu")
	require.NoError(t, err)
	assert.Equal(t, "pow", two[0].Name)
	assert.Equal(t, "relu", two[1].Name)

	_, err = scenario.Select("div")
	assert.ErrorContains(t, err, `unknown scenario "div"`)

	_, err = scenario.Select(" , ")
	assert.Error(t, err)
}
