// pkg/graph/search.go
package graph

import (
	"container/heap"
)

// Graph describes an occupancy-aware graph. Blocked nodes never take part
// in a search, neither as intermediate nodes nor as destinations.
type Graph[N comparable] interface {
	Neighbors(n N) []N
	Blocked(n N) bool
	// Cost of the edge u->v. Must be non-negative.
	Cost(u, v N) int
}

// Result of a single-source search.
type Result[N comparable] struct {
	Dist        map[N]int
	Prev        map[N]N
	Unreachable []N
}

// Reachable reports whether n was reached from the source.
func (r Result[N]) Reachable(n N) bool {
	_, ok := r.Dist[n]
	return ok
}

// ShortestPaths runs a relaxation search from source over nodes. Among
// entries with equal tentative distance the heap decides the order, which is
// arbitrary but deterministic for a given input.
func ShortestPaths[N comparable](nodes []N, source N, g Graph[N]) Result[N] {
	res := Result[N]{
		Dist: make(map[N]int, len(nodes)),
		Prev: make(map[N]N, len(nodes)),
	}

	candidates := make(map[N]bool, len(nodes))
	for _, n := range nodes {
		if !g.Blocked(n) {
			candidates[n] = true
		}
	}

	if candidates[source] {
		pq := &PriorityQueue[N]{}
		heap.Init(pq)
		res.Dist[source] = 0
		heap.Push(pq, &Item[N]{Node: source, Cost: 0})
		done := make(map[N]bool, len(candidates))

		for pq.Len() > 0 {
			current := heap.Pop(pq).(*Item[N])
			if done[current.Node] {
				continue
			}
			done[current.Node] = true

			for _, v := range g.Neighbors(current.Node) {
				if !candidates[v] || done[v] {
					continue
				}
				alt := res.Dist[current.Node] + g.Cost(current.Node, v)
				if d, seen := res.Dist[v]; !seen || alt < d {
					res.Dist[v] = alt
					res.Prev[v] = current.Node
					heap.Push(pq, &Item[N]{Node: v, Cost: alt, seq: pq.next()})
				}
			}
		}
	}

	for _, n := range nodes {
		if _, ok := res.Dist[n]; !ok && candidates[n] {
			res.Unreachable = append(res.Unreachable, n)
		}
	}
	return res
}

// PathTo walks predecessors from to back to the source. The returned slice is
// ordered [to, ..., source]; nil means to was not reached.
func (r Result[N]) PathTo(source, to N) []N {
	return WalkBack(r.Prev, source, to)
}

// WalkBack reconstructs a path from a predecessor map, ordered [to, ..., source].
func WalkBack[N comparable](prev map[N]N, source, to N) []N {
	if to == source {
		return []N{to}
	}
	p, ok := prev[to]
	if !ok {
		return nil
	}
	path := []N{to}
	for {
		path = append(path, p)
		if p == source {
			return path
		}
		if p, ok = prev[p]; !ok {
			return nil
		}
	}
}

// PriorityQueue is a min-heap over tentative distances.
type PriorityQueue[N comparable] struct {
	items   []*Item[N]
	counter int
}

type Item[N comparable] struct {
	Node N
	Cost int
	seq  int
}

func (pq *PriorityQueue[N]) next() int {
	pq.counter++
	return pq.counter
}

func (pq PriorityQueue[N]) Len() int { return len(pq.items) }
func (pq PriorityQueue[N]) Less(i, j int) bool {
	if pq.items[i].Cost != pq.items[j].Cost {
		return pq.items[i].Cost < pq.items[j].Cost
	}
	return pq.items[i].seq < pq.items[j].seq
}
func (pq PriorityQueue[N]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *PriorityQueue[N]) Push(x interface{}) {
	pq.items = append(pq.items, x.(*Item[N]))
}
func (pq *PriorityQueue[N]) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[0 : n-1]
	return item
}
