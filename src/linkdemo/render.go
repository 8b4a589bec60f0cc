package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"linked_containers/src/collections"
	"linked_containers/src/nodes"
)

const arrow = " -> "

func drainStack(w io.Writer, s collections.Stack[string]) {
	for {
		e, err := s.Pop()
		if err != nil {
			fmt.Fprintf(w, "pop: error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "pop: %s (size %d)\n", e, s.Size())
	}
}

func drainQueue(w io.Writer, q collections.Queue[string]) {
	for {
		e, ok := q.Poll()
		if !ok {
			fmt.Fprintln(w, "poll: empty")
			return
		}
		fmt.Fprintf(w, "poll: %s (size %d)\n", e, q.Size())
	}
}

// renderChain follows successors from first for at most limit nodes. The
// result ends in "nil" when the chain ran out, or in the element of the node
// it would visit next.
func renderChain(first *nodes.Node[string], limit int) string {
	var visited []*nodes.Node[string]
	n := first
	for ; n != nil && len(visited) < limit; n = n.Next() {
		visited = append(visited, n)
	}

	parts := lo.Map(visited, func(n *nodes.Node[string], _ int) string {
		return n.Element()
	})
	if n == nil {
		parts = append(parts, "nil")
	} else {
		parts = append(parts, n.Element())
	}
	return strings.Join(parts, arrow)
}
