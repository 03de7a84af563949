package list

const noSlot = -1

type arenaSlot[T any] struct {
	payload T
	next    int
	gen     uint32
	inUse   bool
}

// arenaRef designates one slot of one ArenaList. The generation counter
// detects references to slots that have been destroyed and possibly reused
// since the reference was handed out.
type arenaRef[T any] struct {
	owner *ArenaList[T]
	slot  int
	gen   uint32
}

func (r arenaRef[T]) Payload() T {
	return r.owner.resolve(r).payload
}

// ArenaList keeps the same contract as LinkedList over an index-linked slab:
// nodes are slots of one backing slice chained by slot index, and destroyed
// slots feed a free list for reuse. No slot is ever shared between the live
// chain and the free list.
type ArenaList[T any] struct {
	compare CompareFunc[T]
	destroy DestroyFunc[T]
	slots   []arenaSlot[T]
	head    int
	free    int
}

// NewArenaList creates an empty list. compare may be nil if Search and
// Remove are never used; destroy may be nil if payloads own no resources.
func NewArenaList[T any](compare CompareFunc[T], destroy DestroyFunc[T]) *ArenaList[T] {
	return &ArenaList[T]{
		compare: compare,
		destroy: destroy,
		head:    noSlot,
		free:    noSlot,
	}
}

// OfArenaList creates a list holding values in the given order.
func OfArenaList[T any](compare CompareFunc[T], destroy DestroyFunc[T], values ...T) *ArenaList[T] {
	l := NewArenaList(compare, destroy)
	var last NodeRef[T]
	for _, v := range values {
		if last == nil {
			l.AddHead(v)
			last = arenaRef[T]{owner: l, slot: l.head, gen: l.slots[l.head].gen}
		} else {
			anchor := last.(arenaRef[T])
			l.AddAfter(anchor, v)
			i := l.slots[anchor.slot].next
			last = arenaRef[T]{owner: l, slot: i, gen: l.slots[i].gen}
		}
	}
	return l
}

func (l *ArenaList[T]) AddHead(v T) {
	if l == nil {
		panic("ArenaList is nil")
	}
	i := l.alloc(v)
	l.slots[i].next = l.head
	l.head = i
}

func (l *ArenaList[T]) AddAfter(anchor NodeRef[T], v T) {
	if l == nil {
		panic("ArenaList is nil")
	}
	if anchor == nil {
		l.AddHead(v)
		return
	}
	r, ok := anchor.(arenaRef[T])
	if !ok {
		panic("Anchor is not an ArenaList node")
	}
	l.resolve(r)
	i := l.alloc(v)
	// alloc may have grown the slab, re-take the anchor slot afterwards
	s := &l.slots[r.slot]
	l.slots[i].next = s.next
	s.next = i
}

func (l *ArenaList[T]) Size() int {
	if l == nil {
		panic("ArenaList is nil")
	}
	size := 0
	for i := l.head; i != noSlot; i = l.slots[i].next {
		size++
	}
	return size
}

func (l *ArenaList[T]) Search(v T) NodeRef[T] {
	if l == nil {
		panic("ArenaList is nil")
	}
	if l.compare == nil {
		panic("ArenaList has no compare function")
	}
	for i := l.head; i != noSlot; i = l.slots[i].next {
		if l.compare(l.slots[i].payload, v) {
			return arenaRef[T]{owner: l, slot: i, gen: l.slots[i].gen}
		}
	}
	return nil
}

func (l *ArenaList[T]) ForEach(f IterFunc[T]) {
	if l == nil {
		panic("ArenaList is nil")
	}
	if f == nil {
		panic("Iteration function is nil")
	}
	for i := l.head; i != noSlot; i = l.slots[i].next {
		f(l.slots[i].payload)
	}
}

func (l *ArenaList[T]) Slice() []T {
	if l == nil {
		panic("ArenaList is nil")
	}
	var res []T
	for i := l.head; i != noSlot; i = l.slots[i].next {
		res = append(res, l.slots[i].payload)
	}
	return res
}

func (l *ArenaList[T]) Remove(v T) {
	if l == nil {
		panic("ArenaList is nil")
	}
	if l.compare == nil {
		panic("ArenaList has no compare function")
	}
	prev := noSlot
	for i := l.head; i != noSlot; prev, i = i, l.slots[i].next {
		if !l.compare(l.slots[i].payload, v) {
			continue
		}
		if prev == noSlot {
			l.head = l.slots[i].next
		} else {
			l.slots[prev].next = l.slots[i].next
		}
		l.release(i)
		return
	}
}

func (l *ArenaList[T]) Destroy() {
	if l == nil {
		panic("ArenaList is nil")
	}
	for i := l.head; i != noSlot; {
		next := l.slots[i].next
		l.release(i)
		i = next
	}
	l.slots = nil
	l.head, l.free = noSlot, noSlot
	l.compare, l.destroy = nil, nil
}

// resolve validates an anchor and returns its slot. Any mismatch is a
// contract violation.
func (l *ArenaList[T]) resolve(r arenaRef[T]) *arenaSlot[T] {
	if r.owner != l {
		panic("Anchor belongs to another list")
	}
	if r.slot < 0 || r.slot >= len(l.slots) {
		panic("Anchor slot out of range")
	}
	s := &l.slots[r.slot]
	if !s.inUse || s.gen != r.gen {
		panic("Anchor refers to a destroyed node")
	}
	return s
}

// alloc takes a slot off the free list, or grows the slab, and stores v in
// it. The returned slot is not yet linked into the chain.
func (l *ArenaList[T]) alloc(v T) int {
	if l.free != noSlot {
		i := l.free
		s := &l.slots[i]
		l.free = s.next
		s.payload, s.next, s.inUse = v, noSlot, true
		return i
	}
	l.slots = append(l.slots, arenaSlot[T]{payload: v, next: noSlot, inUse: true})
	return len(l.slots) - 1
}

// release destroys the payload of an unlinked slot and pushes the slot onto
// the free list, bumping its generation so outstanding refs go stale.
func (l *ArenaList[T]) release(i int) {
	s := &l.slots[i]
	if l.destroy != nil {
		l.destroy(s.payload)
	}
	var zero T
	s.payload = zero
	s.inUse = false
	s.gen++
	s.next = l.free
	l.free = i
}
