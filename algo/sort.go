package algo

import (
	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"

	"fwdlist_code/chain"
)

// MergeSort sorts the chain at head in non-descending order and returns the
// new head. Nodes are relinked, never copied; equal values keep their
// relative order.
func MergeSort[T constraints.Ordered](head *chain.Node[T]) *chain.Node[T] {
	return MergeSortFunc(head, func(a, b T) bool { return a < b })
}

// MergeSortFunc is MergeSort ordered by less, which must be a strict weak
// ordering.
//
// Recursion only happens on the halves produced by split, so the call depth
// is O(log n). Merging is iterative.
func MergeSortFunc[T any](head *chain.Node[T], less func(a, b T) bool) *chain.Node[T] {
	if head == nil || head.Next == nil {
		return head
	}
	mid := split(head)
	left := MergeSortFunc(head, less)
	right := MergeSortFunc(mid, less)
	return merge(left, right, less)
}

// split truncates the chain at head after its first ceil(n/2) nodes and
// returns the head of the remaining floor(n/2). head must have at least two
// nodes.
func split[T any](head *chain.Node[T]) *chain.Node[T] {
	var slow = head
	var fast = head.Next
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	mid := slow.Next
	primitive.Assert(mid != nil)
	slow.Next = nil
	return mid
}

func merge[T any](left, right *chain.Node[T], less func(a, b T) bool) *chain.Node[T] {
	var sentinel chain.Node[T]
	var tail = &sentinel
	for left != nil && right != nil {
		// ties go to left
		if !less(right.Value, left.Value) {
			tail.Next = left
			left = left.Next
		} else {
			tail.Next = right
			right = right.Next
		}
		tail = tail.Next
	}
	if left != nil {
		tail.Next = left
	} else {
		tail.Next = right
	}
	return sentinel.Next
}
