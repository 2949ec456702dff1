package list

import (
	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"

	"fwdlist_code/algo"
	"fwdlist_code/chain"
)

// ForwardList is a singly-linked list that caches its length. The zero value
// is an empty list ready to use. It is not safe for concurrent use.
//
// size always equals the number of nodes reachable from head.
type ForwardList[T constraints.Ordered] struct {
	head *chain.Node[T]
	size uint64
}

// New returns a list holding values in order.
func New[T constraints.Ordered](values ...T) *ForwardList[T] {
	return FromChain(chain.New(values...))
}

// FromChain returns a list that takes ownership of the chain at head.
func FromChain[T constraints.Ordered](head *chain.Node[T]) *ForwardList[T] {
	return &ForwardList[T]{head: head, size: chain.Len(head)}
}

// TakeChain detaches the list's chain and hands it to the caller, leaving the
// list empty.
func (l *ForwardList[T]) TakeChain() *chain.Node[T] {
	head := l.head
	l.head = nil
	l.size = 0
	return head
}

func (l *ForwardList[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.Value, nil
}

// Back returns the last value. It walks the whole list.
func (l *ForwardList[T]) Back() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return chain.Last(l.head).Value, nil
}

func (l *ForwardList[T]) PushFront(v T) {
	l.head = l.head.Insert(v)
	l.size++
}

// PushBack appends v. It walks the whole list.
func (l *ForwardList[T]) PushBack(v T) {
	n := &chain.Node[T]{Value: v}
	if l.head == nil {
		l.head = n
	} else {
		chain.Last(l.head).Next = n
	}
	l.size++
}

func (l *ForwardList[T]) PopFront() (T, error) {
	v, next, ok := l.head.Pop()
	if !ok {
		return v, ErrEmpty
	}
	l.head = next
	l.size--
	return v, nil
}

// PopBack removes and returns the last value. It walks the whole list to
// find the second-to-last node.
func (l *ForwardList[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	if l.head.Next == nil {
		v := l.head.Value
		l.head = nil
		l.size--
		return v, nil
	}
	var n = l.head
	for n.Next.Next != nil {
		n = n.Next
	}
	v := n.Next.Value
	n.Next = nil
	l.size--
	return v, nil
}

// At returns the value at zero-based position index without removing it.
func (l *ForwardList[T]) At(index int) (T, error) {
	if index < 0 || uint64(index) >= l.size {
		var zero T
		return zero, xerrors.Errorf("index %d in list of size %d: %w", index, l.size, ErrIndexOutOfRange)
	}
	var n = l.head
	for i := 0; i < index; i++ {
		n = n.Next
	}
	return n.Value, nil
}

func (l *ForwardList[T]) Empty() bool {
	return l.head == nil
}

func (l *ForwardList[T]) Size() uint64 {
	return l.size
}

// Clear unlinks every node one at a time, so no node keeps the rest of the
// chain reachable.
func (l *ForwardList[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.Next
		n.Next = nil
	}
	l.size = 0
}

// Sort stably sorts the list in non-descending order by relinking its nodes.
func (l *ForwardList[T]) Sort() {
	if l.head == nil || l.head.Next == nil {
		return
	}
	l.head = algo.MergeSort(l.head)
	primitive.Assert(chain.Len(l.head) == l.size)
}

// Values copies the list's values from front to back.
func (l *ForwardList[T]) Values() []T {
	return l.head.Values()
}

// String renders the list as "1 -> 2 -> nil".
func (l *ForwardList[T]) String() string {
	return chain.Format(l.head)
}
