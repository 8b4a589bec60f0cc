// Package collections provides a LIFO stack and a FIFO queue backed by singly
// linked nodes. Neither container is safe for concurrent use.
package collections

// Collection is what both containers report about themselves.
type Collection interface {
	Size() int
	IsEmpty() bool
}

// Stack is a last-in-first-out container.
type Stack[T any] interface {
	Collection
	Push(e T) error
	Pop() (T, error)
}

// Queue is a first-in-first-out container. Poll reports false instead of
// failing when there is nothing to take.
type Queue[T any] interface {
	Collection
	Add(e T)
	Poll() (T, bool)
}

var (
	_ Stack[int] = (*LinkedStack[int])(nil)
	_ Queue[int] = (*LinkedQueue[int])(nil)
)
