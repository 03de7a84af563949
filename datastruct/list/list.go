package list

// CompareFunc reports whether two payloads hold equal elements. Search and
// Remove require one to have been configured at construction.
type CompareFunc[T any] func(a, b T) bool

// DestroyFunc releases resources owned by a payload. A configured DestroyFunc
// runs exactly once per node, when the node is destroyed by Remove or Destroy.
type DestroyFunc[T any] func(v T)

// IterFunc is applied to every payload during iteration.
type IterFunc[T any] func(v T)

// NodeRef designates one existing node of a list. Search returns one, and
// AddAfter accepts one as its insertion anchor. A NodeRef is valid only for
// the list that produced it and only until the node it designates is
// destroyed.
type NodeRef[T any] interface {
	Payload() T
}

// List is the contract shared by the implementations in this package.
//
// All operations panic on misuse (nil list, nil iteration function, Search or
// Remove without a configured CompareFunc, foreign anchor); an absent search
// or removal target is not misuse and is reported by a nil NodeRef or by
// leaving the list unchanged. No operation is safe for concurrent use.
type List[T any] interface {
	// AddHead stores a copy of v in a new node at the head of the list.
	AddHead(v T)
	// AddAfter stores a copy of v in a new node linked immediately after
	// anchor. A nil anchor means insertion at the head.
	AddAfter(anchor NodeRef[T], v T)
	// Size counts the nodes by walking the full chain.
	Size() int
	// Search returns the head-closest node whose payload compares equal to
	// v, or nil if there is none.
	Search(v T) NodeRef[T]
	// ForEach applies f to every payload in head-to-tail order, exactly
	// once per node. Mutating the list from within f is undefined.
	ForEach(f IterFunc[T])
	// Slice returns the payloads in head-to-tail order.
	Slice() []T
	// Remove unlinks and destroys the head-closest node whose payload
	// compares equal to v. Removing an absent element is a no-op.
	Remove(v T)
	// Destroy releases every remaining node, running the configured
	// DestroyFunc on each payload. The list must not be used afterwards.
	Destroy()
}

var _ List[int] = (*LinkedList[int])(nil)
var _ List[int] = (*ArenaList[int])(nil)
