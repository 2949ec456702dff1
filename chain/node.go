package chain

import (
	"fmt"
	"strings"

	"github.com/goose-lang/std"
)

// Node is one element of a singly-linked chain. The nil *Node is the empty
// chain.
//
// A node is owned by exactly one of: its predecessor, a container, or the
// local variable of an algorithm in the middle of relinking it. Chains must
// stay acyclic.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// New builds a chain holding values in order and returns its head.
func New[T any](values ...T) *Node[T] {
	var head *Node[T]
	for i := len(values) - 1; i >= 0; i-- {
		head = head.Insert(values[i])
	}
	return head
}

// Insert returns a new head holding v whose successor is l.
func (l *Node[T]) Insert(v T) *Node[T] {
	return &Node[T]{Value: v, Next: l}
}

// Pop detaches the head of l. The boolean is false if l is empty, in which
// case the returned chain is still empty.
func (l *Node[T]) Pop() (T, *Node[T], bool) {
	if l == nil {
		var zero T
		return zero, l, false
	}
	next := l.Next
	l.Next = nil
	return l.Value, next, true
}

// Values copies the values of l from head to tail.
func (l *Node[T]) Values() []T {
	var out []T
	for n := l; n != nil; n = n.Next {
		out = append(out, n.Value)
	}
	return out
}

// Len counts the nodes reachable from head.
func Len[T any](head *Node[T]) uint64 {
	var n = uint64(0)
	for cur := head; cur != nil; cur = cur.Next {
		n = std.SumAssumeNoOverflow(n, 1)
	}
	return n
}

// Last returns the tail node of head, or nil for the empty chain.
func Last[T any](head *Node[T]) *Node[T] {
	if head == nil {
		return nil
	}
	var n = head
	for n.Next != nil {
		n = n.Next
	}
	return n
}

// Format renders head as "1 -> 2 -> nil".
func Format[T any](head *Node[T]) string {
	var b strings.Builder
	for n := head; n != nil; n = n.Next {
		fmt.Fprintf(&b, "%v -> ", n.Value)
	}
	b.WriteString("nil")
	return b.String()
}
