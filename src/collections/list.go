package collections

type linkedListNode[T any] struct {
	value T
	next  *linkedListNode[T]
}

// linkedList is the chain behind both containers. tail is only maintained by
// pushBack users; it is nil whenever head is nil.
type linkedList[T any] struct {
	head *linkedListNode[T]
	tail *linkedListNode[T]
	size int
}

func (l *linkedList[T]) pushFront(e T) {
	newNode := &linkedListNode[T]{value: e, next: l.head}
	if l.size == 0 {
		l.tail = newNode
	}
	l.head = newNode
	l.size++
}

func (l *linkedList[T]) pushBack(e T) {
	newNode := &linkedListNode[T]{value: e}
	if l.size == 0 {
		l.head = newNode
	} else {
		l.tail.next = newNode
	}
	l.tail = newNode
	l.size++
}

func (l *linkedList[T]) popFront() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = node.next
	node.next = nil
	l.size--
	if l.size == 0 {
		l.tail = nil
	}
	return node.value, true
}
