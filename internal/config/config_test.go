package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
log:
  level: debug
concurrency: 2
scenarios:
  - name: blinker
    width: 5
    height: 5
    steps: 4
    patterns:
      - x: 1
        y: 2
        cells: [[0, 0], [1, 0], [2, 0]]
  - name: seeds
    width: 10
    height: 6
    steps: 3
    rule:
      birth: [2]
      survive: []
    fills:
      - {x: 8, y: 4, width: 5, height: 5}
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Encoding, "default kept")
	assert.Equal(t, 2, c.Concurrency)
	require.Len(t, c.Scenarios, 2)

	blinker := c.Scenarios[0]
	assert.Equal(t, ConwayRule(), blinker.Rule)
	require.Len(t, blinker.Patterns, 1)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}}, blinker.Patterns[0].Cells)

	seeds := c.Scenarios[1]
	assert.Equal(t, []int{2}, seeds.Rule.Birth)
	assert.Equal(t, []Fill{{X: 8, Y: 4, Width: 5, Height: 5}}, seeds.Fills)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{name: "empty", yaml: "concurrency: 1\n", err: ErrNoScenarios},
		{name: "zero width", yaml: "scenarios: [{name: a, width: 0, height: 3}]\n", err: ErrInvalidDimension},
		{name: "negative steps", yaml: "scenarios: [{name: a, width: 3, height: 3, steps: -1}]\n", err: ErrInvalidSteps},
		{name: "bad rule", yaml: "scenarios: [{name: a, width: 3, height: 3, rule: {birth: [9]}}]\n", err: ErrInvalidRule},
		{name: "negative fill", yaml: "scenarios: [{name: a, width: 8, height: 8, fills: [{x: 5, y: 5, width: -2, height: -2}]}]\n", err: ErrInvalidFill},
		{name: "duplicate", yaml: "scenarios: [{name: a, width: 3, height: 3}, {name: a, width: 3, height: 3}]\n", err: ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("scenarios: [{name: a, width: 3, height: 3, colour: red}]\n"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "glider", c.Scenarios[0].Name)
}
