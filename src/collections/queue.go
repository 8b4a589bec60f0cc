package collections

// LinkedQueue appends at its tail and takes from its head, both in O(1).
type LinkedQueue[T any] struct {
	list linkedList[T]
}

func NewQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// QueueOf adds elements in the given order.
func QueueOf[T any](elements ...T) *LinkedQueue[T] {
	q := NewQueue[T]()
	for _, e := range elements {
		q.Add(e)
	}
	return q
}

// Add appends e to the end of the queue. Unlike LinkedStack.Push, nil
// elements are stored as is.
func (q *LinkedQueue[T]) Add(e T) {
	q.list.pushBack(e)
}

// Poll removes and returns the head of the queue. The second result is false
// when the queue is empty, which tells an empty queue apart from a stored nil.
func (q *LinkedQueue[T]) Poll() (T, bool) {
	return q.list.popFront()
}

func (q *LinkedQueue[T]) Size() int {
	return q.list.size
}

func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.list.size == 0
}
