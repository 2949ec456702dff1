package algo_test

import (
	"fwdlist_code/chain"

	"github.com/stretchr/testify/assert"
)

// assertValues compares the values of l with expected, treating nil and empty
// slices as equal since rapid may draw either.
func assertValues[T any](t assert.TestingT, expected []T, l *chain.Node[T], msgAndArgs ...interface{}) bool {
	if len(expected) == 0 {
		return assert.Nil(t, l, msgAndArgs...)
	}
	return assert.Equal(t, expected, l.Values(), msgAndArgs...)
}
