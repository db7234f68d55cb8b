package wbs

// Hierarchy operations: reparenting/reordering and dependency edge
// management.

// Reorder moves a goal to a new parent and/or a new position among its
// siblings, then rebuilds the canonical depth-first order. An empty
// parentID moves the goal to the root. Moving a goal under itself or one of
// its own descendants would create a cycle and is rejected. A parentID that
// names no existing goal is tolerated; canonicalization treats the goal as
// a root until the parent appears.
func (d *Document) Reorder(id, parentID, insertBefore string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	if parentID != "" && (parentID == id || d.IsDescendant(id, parentID)) {
		return &CycleError{ID: id, ParentID: parentID}
	}

	g.ParentID = parentID

	idx := d.FindGoalIndex(id)
	rest := append(d.Goals[:idx:idx], d.Goals[idx+1:]...)
	d.Goals = SortGoalsDepthFirst(InsertGoalAtPosition(rest, g, insertBefore))
	return nil
}

// AddDependencies appends each ID not already tracked in the goal's
// dependency set. Duplicates are ignored; the referenced IDs are not
// required to exist.
func (d *Document) AddDependencies(id string, dependsOn []string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	for _, dep := range dependsOn {
		if !g.HasDependency(dep) {
			g.Dependencies = append(g.Dependencies, dep)
		}
	}
	return nil
}

// RemoveDependencies drops the matching IDs from the goal's dependency
// set. IDs not present are ignored.
func (d *Document) RemoveDependencies(id string, ids []string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	remove := make(map[string]bool, len(ids))
	for _, dep := range ids {
		remove[dep] = true
	}
	kept := g.Dependencies[:0]
	for _, dep := range g.Dependencies {
		if !remove[dep] {
			kept = append(kept, dep)
		}
	}
	if len(kept) == 0 {
		g.Dependencies = nil
	} else {
		g.Dependencies = kept
	}
	return nil
}
