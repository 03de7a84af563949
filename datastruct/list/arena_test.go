package list

import (
	"golist-instruction/lib/utils"
	"testing"
)

func TestOfArenaListPreservesOrder(t *testing.T) {
	l := OfArenaList(utils.Equal[int], nil, 1, 2, 3, 4)
	intsEqual(t, l.Slice(), []int{1, 2, 3, 4})
}

func TestArenaReusesReleasedSlots(t *testing.T) {
	l := OfArenaList(utils.Equal[int], nil, 1, 2, 3)
	if len(l.slots) != 3 {
		t.Fatalf("Slab holds %d slots, want 3", len(l.slots))
	}
	l.Remove(2)
	l.AddHead(9)
	if len(l.slots) != 3 {
		t.Errorf("Slab grew to %d slots instead of reusing the free one", len(l.slots))
	}
	intsEqual(t, l.Slice(), []int{9, 1, 3})
}

func TestStaleAnchorPanics(t *testing.T) {
	l := OfArenaList(utils.Equal[int], nil, 1, 2, 3)
	ref := l.Search(2)
	l.Remove(2)
	mustPanic(t, "AddAfter with stale anchor", func() { l.AddAfter(ref, 9) })
	mustPanic(t, "Payload of stale anchor", func() { ref.Payload() })
}

func TestStaleAnchorPanicsAfterSlotReuse(t *testing.T) {
	l := OfArenaList(utils.Equal[int], nil, 1, 2)
	ref := l.Search(2)
	l.Remove(2)
	// 9 reuses the slot vacated by 2; the generation check must reject the old ref
	l.AddHead(9)
	mustPanic(t, "AddAfter with reused-slot anchor", func() { l.AddAfter(ref, 7) })
}

func TestArenaDestroyReleasesSlab(t *testing.T) {
	destroyed := 0
	l := OfArenaList(utils.Equal[int], func(int) { destroyed++ }, 1, 2, 3)
	l.Destroy()
	if destroyed != 3 {
		t.Errorf("Destroyer ran %d times, want 3", destroyed)
	}
	if l.slots != nil {
		t.Error("Slab survived Destroy")
	}
}

func TestNilArenaListPanics(t *testing.T) {
	var l *ArenaList[int]
	mustPanic(t, "AddHead on nil list", func() { l.AddHead(1) })
	mustPanic(t, "AddAfter on nil list", func() { l.AddAfter(nil, 1) })
	mustPanic(t, "Size on nil list", func() { l.Size() })
	mustPanic(t, "Search on nil list", func() { l.Search(1) })
	mustPanic(t, "ForEach on nil list", func() { l.ForEach(func(int) {}) })
	mustPanic(t, "Slice on nil list", func() { l.Slice() })
	mustPanic(t, "Remove on nil list", func() { l.Remove(1) })
	mustPanic(t, "Destroy on nil list", func() { l.Destroy() })
}
