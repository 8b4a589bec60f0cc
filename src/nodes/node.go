package nodes

// Node holds one element and a reference to the node that follows it. A nil
// successor means the node ends its chain.
type Node[T any] struct {
	element T
	next    *Node[T]
}

func (n *Node[T]) Element() T {
	return n.element
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}
