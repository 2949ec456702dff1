package algo

import (
	"errors"

	"golang.org/x/xerrors"

	"fwdlist_code/chain"
)

// ErrInvalidArgument is returned when an argument does not fit the chain it
// is applied to.
var ErrInvalidArgument = errors.New("invalid argument")

// DeleteDuplicates collapses every run of equal adjacent values in head to a
// single node and returns head.
//
// head must already be sorted; only adjacent duplicates are removed, so an
// unsorted chain may keep repeated values.
func DeleteDuplicates[T comparable](head *chain.Node[T]) *chain.Node[T] {
	var cur = head
	for cur != nil && cur.Next != nil {
		if cur.Value == cur.Next.Value {
			dup := cur.Next
			cur.Next = dup.Next
			dup.Next = nil
		} else {
			cur = cur.Next
		}
	}
	return head
}

// RemoveNthFromEnd unlinks the n-th node counting from the tail (n = 1 is the
// tail) and returns the new head.
//
// If n < 1 or n is larger than the chain, the chain is returned untouched
// together with an error wrapping ErrInvalidArgument.
func RemoveNthFromEnd[T any](head *chain.Node[T], n int) (*chain.Node[T], error) {
	if n < 1 {
		return head, xerrors.Errorf("remove %d-th node from end: %w", n, ErrInvalidArgument)
	}

	// the sentinel stands in for the predecessor of head, so removing head
	// needs no special case
	sentinel := &chain.Node[T]{Next: head}
	var slow = sentinel
	var fast = sentinel
	for i := 0; i <= n; i++ {
		if fast == nil {
			return head, xerrors.Errorf("remove %d-th node from end of %d-node chain: %w",
				n, chain.Len(head), ErrInvalidArgument)
		}
		fast = fast.Next
	}
	for fast != nil {
		slow = slow.Next
		fast = fast.Next
	}

	victim := slow.Next
	slow.Next = victim.Next
	victim.Next = nil
	return sentinel.Next, nil
}
