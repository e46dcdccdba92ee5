package list

import (
	"fmt"
	"strings"
)

// SinglyLinkedList is an append-only singly linked list.
// It keeps a pointer to the last node so Push does not walk the chain.
type SinglyLinkedList[T any] struct {
	head   *Node[T] // First node, nil for an empty list
	tail   *Node[T] // Last node, nil for an empty list
	length int      // Number of nodes reachable from head
}

// New creates a new empty list
func New[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// Len returns the number of elements in the list
func (l *SinglyLinkedList[T]) Len() int {
	return l.length
}

// Head returns the first node or nil if the list is empty
func (l *SinglyLinkedList[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node or nil if the list is empty
func (l *SinglyLinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// Push appends data to the end of the list.
// The previous tail is changed in place, so anyone holding it sees the new link.
func (l *SinglyLinkedList[T]) Push(data T) {
	newNode := NewNode(data)

	oldTail := l.tail
	l.tail = nil
	if oldTail != nil {
		oldTail.next = newNode
	} else {
		// Empty list: the first node is also the head
		l.head = newNode
	}
	l.tail = newNode
	l.length++
}

// String renders the list as [v1, v2, ...]
func (l *SinglyLinkedList[T]) String() string {
	if l.length == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	currentNode := l.head
	for ; currentNode.next != nil; currentNode = currentNode.next {
		fmt.Fprintf(&sb, "%v, ", currentNode.data)
	}
	fmt.Fprintf(&sb, "%v]", currentNode.data)
	return sb.String()
}
