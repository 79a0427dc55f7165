package frontier

import (
	"slices"

	"github.com/katalvlaran/mazepath/grid"
)

// pool is the ordered pending list shared by every policy.
// states counts pending nodes per position so ContainsState stays O(1)
// even though duplicates are allowed.
type pool struct {
	nodes  []Node
	states map[grid.Position]int
}

func newPool() pool {
	return pool{states: make(map[grid.Position]int)}
}

// Add appends n to the pending list.
func (p *pool) Add(n Node) {
	p.nodes = append(p.nodes, n)
	p.states[n.State]++
}

// Empty reports whether no nodes are pending.
func (p *pool) Empty() bool {
	return len(p.nodes) == 0
}

// Len returns the number of pending nodes.
func (p *pool) Len() int {
	return len(p.nodes)
}

// ContainsState reports whether a pending node sits at pos.
func (p *pool) ContainsState(pos grid.Position) bool {
	return p.states[pos] > 0
}

// States lists pending states in insertion order.
func (p *pool) States() []grid.Position {
	out := make([]grid.Position, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = n.State
	}
	return out
}

// take removes and returns the node at index i, keeping the order of the rest.
func (p *pool) take(i int) Node {
	n := p.nodes[i]
	switch i {
	case len(p.nodes) - 1:
		p.nodes = p.nodes[:i]
	case 0:
		p.nodes[0] = Node{}
		p.nodes = p.nodes[1:]
	default:
		p.nodes = slices.Delete(p.nodes, i, i+1)
	}
	if p.states[n.State] <= 1 {
		delete(p.states, n.State)
	} else {
		p.states[n.State]--
	}
	return n
}

// selectMin returns the index of the first node minimizing score.
// The pool must not be empty.
func (p *pool) selectMin(score func(grid.Position) int) int {
	best, bestScore := 0, score(p.nodes[0].State)
	for i := 1; i < len(p.nodes); i++ {
		if s := score(p.nodes[i].State); s < bestScore {
			best, bestScore = i, s
		}
	}
	return best
}
