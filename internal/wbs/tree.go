package wbs

import "github.com/steveyegge/wbs/internal/types"

// Tree queries over the flat goal collection. All of these are pure reads;
// relationships are derived by scanning ParentID back-references, never
// from separate pointer structures.

// FindGoal returns the goal with the given ID, or nil if absent. Absence is
// a valid outcome here; callers decide whether it is fatal.
func (d *Document) FindGoal(id string) *types.Goal {
	for _, g := range d.Goals {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// FindGoalIndex returns the position of the goal in the collection, or -1.
func (d *Document) FindGoalIndex(id string) int {
	for i, g := range d.Goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// Children returns the direct children of parentID in collection order.
// An empty parentID selects the root goals.
func (d *Document) Children(parentID string) []*types.Goal {
	var children []*types.Goal
	for _, g := range d.Goals {
		if g.ParentID == parentID {
			children = append(children, g)
		}
	}
	return children
}

// Descendants returns every transitive descendant of id in depth-first
// order: each child is followed by its own descendants before the next
// sibling. A goal reached twice is emitted once, so the walk terminates
// even on malformed parent chains.
func (d *Document) Descendants(id string) []*types.Goal {
	seen := map[string]bool{id: true}
	var out []*types.Goal
	var walk func(parentID string)
	walk = func(parentID string) {
		for _, child := range d.Children(parentID) {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			out = append(out, child)
			walk(child.ID)
		}
	}
	walk(id)
	return out
}

// Ancestors walks ParentID upward from id and returns the chain
// nearest-first. The walk stops at a root, a dangling parent reference, or
// a repeated ID.
func (d *Document) Ancestors(id string) []*types.Goal {
	seen := map[string]bool{id: true}
	var out []*types.Goal
	g := d.FindGoal(id)
	for g != nil && g.ParentID != "" {
		parent := d.FindGoal(g.ParentID)
		if parent == nil || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		out = append(out, parent)
		g = parent
	}
	return out
}

// IsDescendant reports whether candidateID is a transitive descendant of
// ancestorID.
func (d *Document) IsDescendant(ancestorID, candidateID string) bool {
	for _, g := range d.Descendants(ancestorID) {
		if g.ID == candidateID {
			return true
		}
	}
	return false
}

// IsLeaf reports whether no goal names id as its parent. Only leaf goals
// may be delegated.
func (d *Document) IsLeaf(id string) bool {
	for _, g := range d.Goals {
		if g.ParentID == id {
			return false
		}
	}
	return true
}

// Siblings returns the goals sharing id's parent (or root-ness),
// excluding the goal itself.
func (d *Document) Siblings(id string) []*types.Goal {
	g := d.FindGoal(id)
	if g == nil {
		return nil
	}
	var out []*types.Goal
	for _, other := range d.Goals {
		if other.ID != id && other.ParentID == g.ParentID {
			out = append(out, other)
		}
	}
	return out
}

// InsertGoalAtPosition splices newGoal immediately before the goal with ID
// insertBefore. If insertBefore is empty or not present, the goal is
// appended. This is plain list-splice semantics; callers that need the
// canonical traversal order re-run SortGoalsDepthFirst afterwards.
func InsertGoalAtPosition(goals []*types.Goal, newGoal *types.Goal, insertBefore string) []*types.Goal {
	if insertBefore != "" {
		for i, g := range goals {
			if g.ID == insertBefore {
				goals = append(goals, nil)
				copy(goals[i+1:], goals[i:])
				goals[i] = newGoal
				return goals
			}
		}
	}
	return append(goals, newGoal)
}

// SortGoalsDepthFirst rebuilds the collection in canonical order: every
// parent before all of its descendants, siblings in their input relative
// order. Goals whose parent ID does not exist in the collection are swept
// up as additional roots, in input order. Any goals still unvisited after
// both passes (a parent cycle) are appended in input order so the pass
// always terminates.
func SortGoalsDepthFirst(goals []*types.Goal) []*types.Goal {
	if len(goals) == 0 {
		return goals
	}

	byID := make(map[string]*types.Goal, len(goals))
	children := make(map[string][]*types.Goal, len(goals))
	for _, g := range goals {
		byID[g.ID] = g
		children[g.ParentID] = append(children[g.ParentID], g)
	}

	sorted := make([]*types.Goal, 0, len(goals))
	visited := make(map[string]bool, len(goals))
	var visit func(g *types.Goal)
	visit = func(g *types.Goal) {
		if visited[g.ID] {
			return
		}
		visited[g.ID] = true
		sorted = append(sorted, g)
		for _, child := range children[g.ID] {
			visit(child)
		}
	}

	// True roots first.
	for _, g := range goals {
		if g.ParentID == "" {
			visit(g)
		}
	}
	// Orphans: the named parent is missing, so the goal acts as a root.
	for _, g := range goals {
		if !visited[g.ID] {
			if _, ok := byID[g.ParentID]; !ok {
				visit(g)
			}
		}
	}
	// Cycle remnants.
	for _, g := range goals {
		if !visited[g.ID] {
			visit(g)
		}
	}

	return sorted
}
