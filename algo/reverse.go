package algo

import "fwdlist_code/chain"

// Reverse relinks every node of head to point at its predecessor and returns
// the new head (the old tail).
func Reverse[T any](head *chain.Node[T]) *chain.Node[T] {
	var prev *chain.Node[T]
	var cur = head
	for cur != nil {
		next := cur.Next
		cur.Next = prev
		prev = cur
		cur = next
	}
	return prev
}

// MiddleNode returns the middle node of head without taking ownership of it.
// For an even number of nodes it is the second of the two middle nodes. The
// empty chain has no middle and returns nil.
func MiddleNode[T any](head *chain.Node[T]) *chain.Node[T] {
	var slow = head
	var fast = head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	return slow
}

// IsPalindrome reports whether the values of head read the same in both
// directions.
//
// The back half is reversed in place for the comparison and reversed again
// before returning, so callers see the chain unchanged.
func IsPalindrome[T comparable](head *chain.Node[T]) bool {
	if head == nil || head.Next == nil {
		return true
	}

	// prev ends on the node before the back half
	var prev *chain.Node[T]
	var slow = head
	var fast = head
	for fast != nil && fast.Next != nil {
		prev = slow
		slow = slow.Next
		fast = fast.Next.Next
	}

	back := Reverse(slow)
	var same = true
	for l, r := head, back; r != nil; l, r = l.Next, r.Next {
		if l.Value != r.Value {
			same = false
			break
		}
	}
	prev.Next = Reverse(back)
	return same
}
