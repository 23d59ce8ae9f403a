// SPDX-License-Identifier: MIT
// Package: flowgen/netgen
//
// skeleton.go — supply distribution, transshipment chains and skeleton arcs.
//
// The skeleton of a source is its chain of transshipment nodes plus one arc
// into each of its chosen sinks. Every unit of the source's supply can leave
// along it, which is what makes the instance feasible.

package netgen

// distributeSupply splits the total supply over the sources: each source
// draws a partial of the per-source share and gives the rest of that share
// to a random source; the division remainder goes to a random source.
func (gen *generator) distributeSupply() {
	p := gen.p
	s := int64(p.Sources)
	share := p.Supply / s
	for i := 1; i <= p.Sources; i++ {
		partial := gen.draw(1, share)
		gen.supply[i] += partial
		gen.supply[gen.draw(0, s-1)+1] += share - partial
	}
	gen.supply[gen.draw(0, s-1)+1] += p.Supply % s
}

// chains threads every transshipment node into the chain of one source and
// returns the predecessor links. pred[s] is the newest node of source s's
// chain and the oldest node points back to s. The first 60% of the nodes
// are dealt round-robin, the rest to random sources.
func (gen *generator) chains() []int {
	p := gen.p
	pred := make([]int, p.Nodes+1)
	for i := 1; i <= p.Sources; i++ {
		pred[i] = i
	}

	transship := p.Nodes - p.Sources - p.Sinks
	list := newIndexList(p.Sources+1, p.Nodes-p.Sinks, transship)
	link := func(node, src int) {
		pred[node] = pred[src]
		pred[src] = node
	}

	src, i := 1, transship
	for ; i > (4*transship+9)/10; i-- {
		link(list.choose(gen.drawPos(list)), src)
		if src++; src > p.Sources {
			src = 1
		}
	}
	for ; i > 0; i-- {
		node := list.choose(gen.drawPos(list))
		link(node, int(gen.draw(1, int64(p.Sources))))
	}

	return pred
}

// sinksPerSource returns how many sinks a chain of chainLen nodes feeds:
// proportional to the chain's share of transshipment nodes, at least two
// and at most the sink count.
func (gen *generator) sinksPerSource(chainLen int) int {
	p := gen.p
	var n int
	if transship := p.Nodes - p.Sources - p.Sinks; transship == 0 {
		n = p.Sinks/p.Sources + 1
	} else {
		n = int(2.0 * float64(chainLen) * float64(p.Sinks) / float64(transship))
	}

	return min(max(2, n), p.Sinks)
}

// skeleton builds the skeleton of source src, assigns the demands of its
// sinks, emits its arcs grouped by tail and hands every tail to pickHead.
func (gen *generator) skeleton(src int, pred []int) error {
	p := gen.p

	// 1-based parallel slices, as consumed by the sort below.
	tails, heads := []int{0}, []int{0}
	for node := pred[src]; node != src; node = pred[node] {
		heads = append(heads, node)
		tails = append(tails, pred[node])
	}
	chainLen := len(heads) - 1

	// Sinks are drawn as values N-K..N-1; the node is value+1.
	want := gen.sinksPerSource(chainLen)
	list := newIndexList(p.Nodes-p.Sinks, p.Nodes-1, want)
	sinks := make([]int, 0, want)
	for i := 0; i < want; i++ {
		sinks = append(sinks, list.choose(gen.drawPos(list)))
	}
	if src == p.Sources {
		// The last source also feeds every sink nobody chose.
		for list.pseudoSize() > 0 {
			if v := list.choose(1); v != 0 && gen.supply[v+1] == 0 {
				sinks = append(sinks, v)
			}
		}
	}

	share := gen.supply[src]
	n := int64(len(sinks))
	part := share / n
	k := pred[src]
	for _, v := range sinks {
		partial := gen.draw(1, part)
		j := gen.draw(0, n-1)
		tails = append(tails, k)
		heads = append(heads, v+1)
		gen.supply[v+1] -= partial
		gen.supply[sinks[j]+1] -= part - partial

		k = src
		for steps := gen.draw(1, int64(chainLen)); steps > 0; steps-- {
			k = pred[k]
		}
	}
	gen.supply[sinks[0]+1] -= share % n

	shellSort(tails, heads)
	tails = append(tails, 0)

	for i, count := 1, len(heads)-1; i <= count; {
		tail := tails[i]
		handle := gen.headList()
		handle.remove(tail)
		for tails[i] == tail {
			handle.remove(heads[i])
			upper := p.Supply
			if gen.draw(1, 100) <= int64(p.Capacitated) {
				upper = max(share, p.MinCap)
			}
			cost := p.MaxCost
			if gen.draw(1, 100) > int64(p.HiCost) {
				cost = gen.draw(p.MinCost, p.MaxCost)
			}
			if err := gen.addArc(tail, heads[i], upper, cost, true); err != nil {
				return err
			}
			i++
		}
		if err := gen.pickHead(handle, tail); err != nil {
			return err
		}
	}

	return nil
}

// shellSort orders the 1-based pairs (tails[i], heads[i]) by tail. The exact
// gap sequence fixes the order of equal tails and therefore the draws that
// follow.
func shellSort(tails, heads []int) {
	count := len(tails) - 1
	for gap := count / 2; gap > 0; gap /= 2 {
		for j := 1; j <= count-gap; j++ {
			for i := j; i >= 1 && tails[i] > tails[i+gap]; i -= gap {
				tails[i], tails[i+gap] = tails[i+gap], tails[i]
				heads[i], heads[i+gap] = heads[i+gap], heads[i]
			}
		}
	}
}
