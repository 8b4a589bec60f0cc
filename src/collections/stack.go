package collections

import (
	"github.com/samber/lo"

	"linked_containers/src/collerrors"
	"linked_containers/src/logging"
)

// LinkedStack keeps its elements on a chain whose head is the top of the
// stack, so Push and Pop are O(1).
type LinkedStack[T any] struct {
	list linkedList[T]
}

func NewStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// StackOf pushes elements in the given order, leaving the last one on top.
// It panics if any element is nil.
func StackOf[T any](elements ...T) *LinkedStack[T] {
	s := NewStack[T]()
	for _, e := range elements {
		if err := s.Push(e); err != nil {
			panic(err)
		}
	}
	return s
}

// Push places e on top of the stack. Nil elements are rejected and leave the
// stack untouched.
func (s *LinkedStack[T]) Push(e T) error {
	if lo.IsNil(e) {
		logging.Debug().Int("size", s.list.size).Msg("rejected nil element on push")
		return collerrors.InvalidArgumentf("cannot push a nil element")
	}
	s.list.pushFront(e)
	return nil
}

// Pop removes and returns the top element.
func (s *LinkedStack[T]) Pop() (T, error) {
	e, ok := s.list.popFront()
	if !ok {
		return e, collerrors.EmptyContainerf("cannot pop from an empty stack")
	}
	return e, nil
}

func (s *LinkedStack[T]) Size() int {
	return s.list.size
}

func (s *LinkedStack[T]) IsEmpty() bool {
	return s.list.size == 0
}
