package list

// Node is a single element of a SinglyLinkedList. The same *Node may be held
// by its predecessor, by the list's tail and by any caller at once.
type Node[T any] struct {
	data T        // Payload of the node
	next *Node[T] // Next node, nil until something is pushed after this one
}

// NewNode returns a node holding data with no next node
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

func (n *Node[T]) Data() T {
	return n.data
}

// Next returns the following node or nil if n is the last one
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
