package scenario

import (
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"fwdlist_code/algo"
	"fwdlist_code/chain"
	"fwdlist_code/list"
)

// Result is the outcome of one step. Output is empty for steps that only
// mutate the list.
type Result struct {
	Step   Step
	Output string
	Err    error
}

// Runner applies scenarios to a ForwardList[int].
type Runner struct {
	logger *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run builds a list from s.Values and applies every step to it. A failing
// step is logged and recorded in its Result; the run stops there only if
// s.StopOnError is set, in which case the step error is also returned.
func (r *Runner) Run(s *Scenario) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	st := &state{l: list.New(s.Values...)}
	r.logger.Debug("scenario start", zap.Int("values", len(s.Values)), zap.Int("steps", len(s.Steps)))

	var results []Result
	for i, step := range s.Steps {
		out, err := st.apply(step)
		results = append(results, Result{Step: step, Output: out, Err: err})
		if err != nil {
			r.logger.Warn("step failed", zap.Int("step", i), zap.String("op", string(step.Op)), zap.Error(err))
			if s.StopOnError {
				return results, xerrors.Errorf("step %d (%s): %w", i, step.Op, err)
			}
			continue
		}
		r.logger.Debug("step done", zap.Int("step", i), zap.String("op", string(step.Op)),
			zap.String("output", out), zap.Uint64("size", st.l.Size()))
	}
	return results, nil
}

type state struct {
	l *list.ForwardList[int]
}

// withChain hands the list's chain to f and adopts the chain f returns.
func (st *state) withChain(f func(head *chain.Node[int]) *chain.Node[int]) {
	st.l = list.FromChain(f(st.l.TakeChain()))
}

func (st *state) apply(step Step) (string, error) {
	l := st.l
	switch step.Op {
	case OpPushFront:
		l.PushFront(step.Value)
	case OpPushBack:
		l.PushBack(step.Value)
	case OpPopFront:
		return valueOutput(l.PopFront())
	case OpPopBack:
		return valueOutput(l.PopBack())
	case OpFront:
		return valueOutput(l.Front())
	case OpBack:
		return valueOutput(l.Back())
	case OpAt:
		return valueOutput(l.At(step.Index))
	case OpSize:
		return strconv.FormatUint(l.Size(), 10), nil
	case OpSort:
		l.Sort()
	case OpClear:
		l.Clear()
	case OpPrint:
		return l.String(), nil
	case OpReverse:
		st.withChain(algo.Reverse[int])
	case OpDedup:
		st.withChain(algo.DeleteDuplicates[int])
	case OpRemoveNth:
		var err error
		st.withChain(func(head *chain.Node[int]) *chain.Node[int] {
			head, err = algo.RemoveNthFromEnd(head, step.N)
			return head
		})
		return "", err
	case OpMiddle:
		var out = "nil"
		st.withChain(func(head *chain.Node[int]) *chain.Node[int] {
			if mid := algo.MiddleNode(head); mid != nil {
				out = strconv.Itoa(mid.Value)
			}
			return head
		})
		return out, nil
	case OpPalindrome:
		var same bool
		st.withChain(func(head *chain.Node[int]) *chain.Node[int] {
			same = algo.IsPalindrome(head)
			return head
		})
		return strconv.FormatBool(same), nil
	case OpDecimal:
		var v uint64
		st.withChain(func(head *chain.Node[int]) *chain.Node[int] {
			v = algo.DecimalValue(head)
			return head
		})
		return strconv.FormatUint(v, 10), nil
	default:
		return "", xerrors.Errorf("%q: %w", step.Op, ErrUnknownOp)
	}
	return "", nil
}

func valueOutput(v int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}
