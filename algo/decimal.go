package algo

import (
	"golang.org/x/exp/constraints"

	"fwdlist_code/chain"
)

// DecimalValue reads head as a binary number, most significant bit first.
// The empty chain is 0.
//
// Each value is OR-ed into the result as-is, so values other than 0 and 1
// give a number that is not the binary reading of the chain. Bits shifted
// past the 64th are lost.
func DecimalValue[T constraints.Integer](head *chain.Node[T]) uint64 {
	var result = uint64(0)
	for n := head; n != nil; n = n.Next {
		result = result<<1 | uint64(n.Value)
	}
	return result
}
