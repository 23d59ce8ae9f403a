package netgen

import "slices"

// indexList is an ascending set of node numbers [lo, hi] from which items are
// drawn by 1-based position. Besides the real size it tracks a pseudo size
// that drops by one on every choose or remove, whether or not anything was
// removed; random positions are drawn against the pseudo size, so callers
// may ask for a position past the end and get 0 back.
type indexList interface {
	// choose removes and returns the pos-th remaining item, 0 if pos is
	// outside [1, size].
	choose(pos int64) int
	// remove drops v if present.
	remove(v int)
	size() int
	pseudoSize() int
}

// sparseDrawThreshold selects the representation: lists from which only a
// few items are drawn keep a sorted slice of removed values, long-lived lists
// drained item by item use a Fenwick tree.
const sparseDrawThreshold = 64

// newIndexList returns a list over [lo, hi]. draws is the expected number of
// removals and only picks the representation.
func newIndexList(lo, hi, draws int) indexList {
	n := hi - lo + 1
	if n < 0 {
		n = 0
	}
	if draws > sparseDrawThreshold && n > sparseDrawThreshold {
		return newDenseList(lo, n)
	}

	return &sparseList{lo: lo, hi: hi, pseudo: n}
}

// sparseList stores the removed values only.
type sparseList struct {
	lo, hi  int
	removed []int // ascending, all within [lo, hi]
	pseudo  int
}

func (l *sparseList) size() int       { return max(l.hi-l.lo+1-len(l.removed), 0) }
func (l *sparseList) pseudoSize() int { return l.pseudo }

func (l *sparseList) shrink() {
	if l.pseudo > 0 {
		l.pseudo--
	}
}

func (l *sparseList) choose(pos int64) int {
	l.shrink()
	if pos < 1 || pos > int64(l.size()) {
		return 0
	}

	// Walk the removed values in order, skipping past each one at or
	// below the candidate.
	v := l.lo + int(pos) - 1
	for _, r := range l.removed {
		if r > v {
			break
		}
		v++
	}
	i, _ := slices.BinarySearch(l.removed, v)
	l.removed = slices.Insert(l.removed, i, v)

	return v
}

func (l *sparseList) remove(v int) {
	l.shrink()
	if v < l.lo || v > l.hi {
		return
	}
	i, found := slices.BinarySearch(l.removed, v)
	if !found {
		l.removed = slices.Insert(l.removed, i, v)
	}
}

// denseList is a Fenwick tree of 0/1 presence counts.
type denseList struct {
	lo     int
	tree   []int // 1-based
	count  int
	pseudo int
	step   int // highest power of two <= len(tree)-1
}

func newDenseList(lo, n int) *denseList {
	l := &denseList{lo: lo, tree: make([]int, n+1), count: n, pseudo: n, step: 1}
	for i := 1; i <= n; i++ {
		l.tree[i]++
		if j := i + (i & -i); j <= n {
			l.tree[j] += l.tree[i]
		}
	}
	for l.step*2 <= n {
		l.step *= 2
	}

	return l
}

func (l *denseList) size() int       { return l.count }
func (l *denseList) pseudoSize() int { return l.pseudo }

func (l *denseList) shrink() {
	if l.pseudo > 0 {
		l.pseudo--
	}
}

func (l *denseList) add(i, delta int) {
	for ; i < len(l.tree); i += i & -i {
		l.tree[i] += delta
	}
}

func (l *denseList) present(i int) bool {
	sum := func(i int) int {
		s := 0
		for ; i > 0; i -= i & -i {
			s += l.tree[i]
		}
		return s
	}

	return sum(i)-sum(i-1) == 1
}

func (l *denseList) choose(pos int64) int {
	l.shrink()
	if pos < 1 || pos > int64(l.count) {
		return 0
	}

	// Binary lifting: smallest index whose prefix count reaches pos.
	idx, rest := 0, int(pos)
	for step := l.step; step > 0; step >>= 1 {
		if next := idx + step; next < len(l.tree) && l.tree[next] < rest {
			idx = next
			rest -= l.tree[next]
		}
	}
	idx++
	l.add(idx, -1)
	l.count--

	return l.lo + idx - 1
}

func (l *denseList) remove(v int) {
	l.shrink()
	i := v - l.lo + 1
	if i < 1 || i >= len(l.tree) || !l.present(i) {
		return
	}
	l.add(i, -1)
	l.count--
}
