package scenario

import (
	"errors"
	"io"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Op names one step of a scenario.
type Op string

const (
	OpPushFront  Op = "push_front"
	OpPushBack   Op = "push_back"
	OpPopFront   Op = "pop_front"
	OpPopBack    Op = "pop_back"
	OpFront      Op = "front"
	OpBack       Op = "back"
	OpAt         Op = "at"
	OpSize       Op = "size"
	OpSort       Op = "sort"
	OpClear      Op = "clear"
	OpPrint      Op = "print"
	OpReverse    Op = "reverse"
	OpMiddle     Op = "middle"
	OpDedup      Op = "dedup"
	OpRemoveNth  Op = "remove_nth"
	OpPalindrome Op = "palindrome"
	OpDecimal    Op = "decimal"
)

var knownOps = map[Op]bool{
	OpPushFront: true, OpPushBack: true, OpPopFront: true, OpPopBack: true,
	OpFront: true, OpBack: true, OpAt: true, OpSize: true, OpSort: true,
	OpClear: true, OpPrint: true, OpReverse: true, OpMiddle: true,
	OpDedup: true, OpRemoveNth: true, OpPalindrome: true, OpDecimal: true,
}

// ErrUnknownOp is returned when a scenario names an op that does not exist.
var ErrUnknownOp = errors.New("unknown op")

// Step is one operation. Value is used by the push ops, Index by at and N by
// remove_nth.
type Step struct {
	Op    Op  `yaml:"op"`
	Value int `yaml:"value,omitempty"`
	Index int `yaml:"index,omitempty"`
	N     int `yaml:"n,omitempty"`
}

// Scenario is a list built from Values followed by Steps applied to it.
type Scenario struct {
	Values      []int  `yaml:"values,omitempty"`
	Steps       []Step `yaml:"steps"`
	StopOnError bool   `yaml:"stop_on_error,omitempty"`
}

// Load decodes a YAML scenario from r and checks every op name.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, xerrors.Errorf("cannot decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) Validate() error {
	for i, step := range s.Steps {
		if !knownOps[step.Op] {
			return xerrors.Errorf("step %d: %q: %w", i, step.Op, ErrUnknownOp)
		}
	}
	return nil
}

// Default is the demonstration run by the command when no scenario file is
// given: build 1 -> 3 -> 4 -> 2, sort it, inspect it and take it apart again.
// Non-empty values replace the initial pushes.
func Default(values []int) *Scenario {
	inspect := []Step{
		{Op: OpPrint},
		{Op: OpSort},
		{Op: OpPrint},
		{Op: OpSize},
		{Op: OpFront},
		{Op: OpBack},
		{Op: OpPopFront},
		{Op: OpPrint},
		{Op: OpPopBack},
		{Op: OpPrint},
		{Op: OpClear},
		{Op: OpPrint},
	}
	if len(values) > 0 {
		return &Scenario{Values: values, Steps: inspect}
	}
	build := []Step{
		{Op: OpPushBack, Value: 3},
		{Op: OpPushFront, Value: 1},
		{Op: OpPushBack, Value: 4},
		{Op: OpPushBack, Value: 2},
	}
	return &Scenario{Steps: append(build, inspect...)}
}
