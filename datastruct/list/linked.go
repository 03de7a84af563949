package list

// Node is one link of a LinkedList chain. Its next reference is owned
// exclusively by the predecessor node, or by the list header for the head.
type Node[T any] struct {
	payload T
	next    *Node[T]
}

// Payload returns the element stored in the node.
func (n *Node[T]) Payload() T {
	if n == nil {
		panic("Node is nil")
	}
	return n.payload
}

// Next returns the successor node, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		panic("Node is nil")
	}
	return n.next
}

// LinkedList is a singly linked chain of exclusively owned nodes. The zero
// configuration is valid: with a nil CompareFunc the list still supports
// insertion and iteration, only Search and Remove are off limits.
type LinkedList[T any] struct {
	compare CompareFunc[T]
	destroy DestroyFunc[T]
	head    *Node[T]
}

// NewLinkedList creates an empty list. compare may be nil if Search and
// Remove are never used; destroy may be nil if payloads own no resources.
func NewLinkedList[T any](compare CompareFunc[T], destroy DestroyFunc[T]) *LinkedList[T] {
	return &LinkedList[T]{compare: compare, destroy: destroy}
}

// OfLinkedList creates a list holding values in the given order.
func OfLinkedList[T any](compare CompareFunc[T], destroy DestroyFunc[T], values ...T) *LinkedList[T] {
	l := NewLinkedList(compare, destroy)
	var last *Node[T]
	for _, v := range values {
		if last == nil {
			l.AddHead(v)
			last = l.head
		} else {
			l.AddAfter(last, v)
			last = last.next
		}
	}
	return l
}

func (l *LinkedList[T]) AddHead(v T) {
	if l == nil {
		panic("LinkedList is nil")
	}
	l.head = &Node[T]{payload: v, next: l.head}
}

// AddAfter links a new node holding v immediately after anchor. A nil anchor
// means head insertion. The anchor must be a node of l; a node of another
// LinkedList of the same element type is the caller's contract to avoid,
// as with container/list.
func (l *LinkedList[T]) AddAfter(anchor NodeRef[T], v T) {
	if l == nil {
		panic("LinkedList is nil")
	}
	if anchor == nil {
		l.AddHead(v)
		return
	}
	n, ok := anchor.(*Node[T])
	if !ok {
		panic("Anchor is not a LinkedList node")
	}
	if n == nil {
		l.AddHead(v)
		return
	}
	n.next = &Node[T]{payload: v, next: n.next}
}

func (l *LinkedList[T]) Size() int {
	if l == nil {
		panic("LinkedList is nil")
	}
	size := 0
	for n := l.head; n != nil; n = n.next {
		size++
	}
	return size
}

func (l *LinkedList[T]) Search(v T) NodeRef[T] {
	if l == nil {
		panic("LinkedList is nil")
	}
	if l.compare == nil {
		panic("LinkedList has no compare function")
	}
	for n := l.head; n != nil; n = n.next {
		if l.compare(n.payload, v) {
			return n
		}
	}
	return nil
}

func (l *LinkedList[T]) ForEach(f IterFunc[T]) {
	if l == nil {
		panic("LinkedList is nil")
	}
	if f == nil {
		panic("Iteration function is nil")
	}
	for n := l.head; n != nil; n = n.next {
		f(n.payload)
	}
}

func (l *LinkedList[T]) Slice() []T {
	if l == nil {
		panic("LinkedList is nil")
	}
	var res []T
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.payload)
	}
	return res
}

func (l *LinkedList[T]) Remove(v T) {
	if l == nil {
		panic("LinkedList is nil")
	}
	if l.compare == nil {
		panic("LinkedList has no compare function")
	}
	var prev *Node[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if !l.compare(n.payload, v) {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		l.destroyNode(n)
		return
	}
}

func (l *LinkedList[T]) Destroy() {
	if l == nil {
		panic("LinkedList is nil")
	}
	n := l.head
	l.head = nil
	for n != nil {
		next := n.next
		l.destroyNode(n)
		n = next
	}
	l.compare, l.destroy = nil, nil
}

// destroyNode severs the node's links, runs the destroyer on its payload and
// zeroes the payload. The payload must never be touched again afterwards.
func (l *LinkedList[T]) destroyNode(n *Node[T]) {
	n.next = nil
	if l.destroy != nil {
		l.destroy(n.payload)
	}
	var zero T
	n.payload = zero
}
