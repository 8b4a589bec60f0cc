// Package nodes builds standalone nodes, pairs, chains and cycles of nodes.
package nodes

import (
	"linked_containers/src/collerrors"
	"linked_containers/src/logging"
)

// Create wraps element in a new node with no successor.
func Create[T any](element T) *Node[T] {
	return &Node[T]{element: element}
}

// Link makes second the successor of first, replacing whatever first pointed
// to before. Cycles are not checked for.
func Link[T any](first, second *Node[T]) {
	first.next = second
}

// PairOf returns the first node of a two node chain a -> b.
func PairOf[T any](a, b T) *Node[T] {
	first := Create(a)
	Link(first, Create(b))
	return first
}

// ClosedPairOf returns the first node of the two node cycle a -> b -> a.
func ClosedPairOf[T any](a, b T) *Node[T] {
	first := PairOf(a, b)
	Link(first.next, first)
	return first
}

// ChainOf links one node per element in the given order and returns the
// first one, or nil when no elements are given.
func ChainOf[T any](elements ...T) *Node[T] {
	first, _ := chain(elements)
	return first
}

// CircleOf is ChainOf with the last node linked back to the first. At least
// one element is required.
func CircleOf[T any](elements ...T) (*Node[T], error) {
	first, last := chain(elements)
	if first == nil {
		logging.Warn().Msg("CircleOf called without elements")
		return nil, collerrors.InvalidArgumentf("a circle needs at least one element")
	}
	Link(last, first)
	return first, nil
}

// MustCircleOf is a helper function that calls CircleOf and panics on error.
func MustCircleOf[T any](elements ...T) *Node[T] {
	first, err := CircleOf(elements...)
	if err != nil {
		panic(err)
	}
	return first
}

func chain[T any](elements []T) (first, last *Node[T]) {
	for _, e := range elements {
		n := Create(e)
		if first == nil {
			first = n
		} else {
			Link(last, n)
		}
		last = n
	}
	return first, last
}
