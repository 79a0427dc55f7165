package frontier

import (
	"errors"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmptyFrontier is returned by Remove when nothing is pending.
	ErrEmptyFrontier = errors.New("frontier: empty frontier")

	// ErrMissingAnchor is returned by Remove when the caller did not supply
	// an anchor position the selection rule depends on.
	ErrMissingAnchor = errors.New("frontier: missing anchor")

	// ErrUnknownStrategy is returned by Lookup for unregistered names.
	ErrUnknownStrategy = errors.New("frontier: unknown strategy")
)

// NoParent is the Parent index of a root node.
const NoParent = -1

// Node is a single search-tree record. Parent indexes the node store kept
// by the search driver; every parent is strictly older than its children.
type Node struct {
	State  grid.Position
	Parent int
	Action grid.Direction
}

// Root returns the parentless node placed at p.
func Root(p grid.Position) Node {
	return Node{State: p, Parent: NoParent, Action: grid.NoDirection}
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Requirement is a bit set naming the anchors a removal rule consults.
type Requirement uint8

const (
	// NeedsNothing marks rules that depend only on insertion order.
	NeedsNothing Requirement = 0
	// NeedsGoal marks rules that score nodes against the goal.
	NeedsGoal Requirement = 1 << (iota - 1)
	// NeedsStart marks rules that score nodes against the start.
	NeedsStart
)

// Has reports whether r includes every bit of other.
func (r Requirement) Has(other Requirement) bool {
	return r&other == other
}

// String lists the required anchors.
func (r Requirement) String() string {
	switch {
	case r.Has(NeedsStart | NeedsGoal):
		return "start+goal"
	case r.Has(NeedsGoal):
		return "goal"
	case r.Has(NeedsStart):
		return "start"
	default:
		return "none"
	}
}

// Anchors carries the fixed positions a removal rule may consult.
// Set records which fields are meaningful.
type Anchors struct {
	Start, Goal grid.Position
	Set         Requirement
}

// AnchorsFor fills exactly the anchors named by req from start and goal.
func AnchorsFor(req Requirement, start, goal grid.Position) Anchors {
	var a Anchors
	if req.Has(NeedsStart) {
		a.Start = start
		a.Set |= NeedsStart
	}
	if req.Has(NeedsGoal) {
		a.Goal = goal
		a.Set |= NeedsGoal
	}
	return a
}

// Frontier is the pending set of a search.
//
// It does not reject duplicate states; callers check ContainsState before
// adding.
type Frontier interface {
	// Add inserts n.
	Add(n Node)
	// Empty reports whether no nodes are pending.
	Empty() bool
	// Len returns the number of pending nodes.
	Len() int
	// ContainsState reports whether any pending node is at p.
	ContainsState(p grid.Position) bool
	// Remove selects, deletes and returns one pending node.
	Remove(a Anchors) (Node, error)
	// Requires names the anchors Remove consults.
	Requires() Requirement
	// States lists pending states in insertion order.
	States() []grid.Position
}
