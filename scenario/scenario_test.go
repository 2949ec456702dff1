package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"fwdlist_code/algo"
	"fwdlist_code/list"
)

func outputs(results []Result) []string {
	var out []string
	for _, r := range results {
		out = append(out, r.Output)
	}
	return out
}

func TestDefaultScenario(t *testing.T) {
	assert := assert.New(t)

	results, err := NewRunner(zaptest.NewLogger(t)).Run(Default(nil))
	require.NoError(t, err)
	assert.Equal([]string{
		"", "", "", "",
		"1 -> 3 -> 4 -> 2 -> nil",
		"",
		"1 -> 2 -> 3 -> 4 -> nil",
		"4",
		"1",
		"4",
		"1",
		"2 -> 3 -> 4 -> nil",
		"4",
		"2 -> 3 -> nil",
		"",
		"nil",
	}, outputs(results))
	for _, r := range results {
		assert.NoError(r.Err, "step %s", r.Step.Op)
	}
}

func TestDefaultScenarioValues(t *testing.T) {
	results, err := NewRunner(nil).Run(Default([]int{9, 7, 8}))
	require.NoError(t, err)
	assert.Equal(t, "9 -> 7 -> 8 -> nil", results[0].Output)
	assert.Equal(t, "7 -> 8 -> 9 -> nil", results[2].Output)
}

const chainOps = `
values: [1, 1, 2, 3, 3, 3]
steps:
  - op: dedup
  - op: print
  - op: reverse
  - op: print
  - op: middle
  - op: remove_nth
    n: 3
  - op: print
  - op: palindrome
  - op: push_back
    value: 1
  - op: push_front
    value: 1
  - op: print
  - op: palindrome
  - op: print
  - op: at
    index: 2
`

func TestChainOps(t *testing.T) {
	assert := assert.New(t)

	s, err := Load(strings.NewReader(chainOps))
	require.NoError(t, err)
	results, err := NewRunner(zaptest.NewLogger(t)).Run(s)
	require.NoError(t, err)
	assert.Equal([]string{
		"",
		"1 -> 2 -> 3 -> nil",
		"",
		"3 -> 2 -> 1 -> nil",
		"2",
		"",
		"2 -> 1 -> nil",
		"false",
		"",
		"",
		"1 -> 2 -> 1 -> 1 -> nil",
		"false",
		// palindrome leaves the list as it was
		"1 -> 2 -> 1 -> 1 -> nil",
		"1",
	}, outputs(results))
}

func TestDecimal(t *testing.T) {
	s, err := Load(strings.NewReader("values: [1, 0, 1]\nsteps:\n  - op: decimal\n  - op: size\n"))
	require.NoError(t, err)
	results, err := NewRunner(nil).Run(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "3"}, outputs(results))
}

func TestStepErrors(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zapcore.WarnLevel)
	s := &Scenario{
		Steps: []Step{
			{Op: OpPopFront},
			{Op: OpBack},
			{Op: OpAt, Index: 0},
			{Op: OpRemoveNth, N: 1},
			{Op: OpPushBack, Value: 4},
			{Op: OpRemoveNth, N: 2},
			{Op: OpSize},
		},
	}
	results, err := NewRunner(zap.New(core)).Run(s)
	require.NoError(t, err)
	require.Len(t, results, 7)

	assert.ErrorIs(results[0].Err, list.ErrEmpty)
	assert.ErrorIs(results[1].Err, list.ErrEmpty)
	assert.ErrorIs(results[2].Err, list.ErrIndexOutOfRange)
	assert.ErrorIs(results[3].Err, algo.ErrInvalidArgument)
	assert.ErrorIs(results[5].Err, algo.ErrInvalidArgument)
	// a failed remove_nth keeps the list
	assert.Equal("1", results[6].Output)
	assert.Equal(5, logs.FilterMessage("step failed").Len())
}

func TestStopOnError(t *testing.T) {
	s := &Scenario{
		Steps: []Step{
			{Op: OpPushBack, Value: 1},
			{Op: OpAt, Index: 5},
			{Op: OpPrint},
		},
		StopOnError: true,
	}
	results, err := NewRunner(nil).Run(s)
	assert.True(t, errors.Is(err, list.ErrIndexOutOfRange), "%v", err)
	assert.Len(t, results, 2)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("steps:\n  - op: shuffle\n"))
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, err = Load(strings.NewReader("steps:\n  - op: print\n    bogus: 1\n"))
	assert.Error(t, err)

	_, err = NewRunner(nil).Run(&Scenario{Steps: []Step{{Op: "nope"}}})
	assert.ErrorIs(t, err, ErrUnknownOp)
}
