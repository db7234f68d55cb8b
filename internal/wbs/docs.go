package wbs

import "github.com/steveyegge/wbs/internal/types"

// Documentation operations: plain field setters keyed by goal ID. None of
// these cascade.

// UpdateDescription replaces the goal's description text.
func (d *Document) UpdateDescription(id, description string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Description = description
	return nil
}

// UpdateInstructions replaces the goal's instructions text.
func (d *Document) UpdateInstructions(id, instructions string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Instructions = instructions
	return nil
}

// ClearInstructions removes the goal's instructions.
func (d *Document) ClearInstructions(id string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Instructions = ""
	return nil
}

// AddNote appends a note to the goal.
func (d *Document) AddNote(id string, note *types.Note) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	if note != nil {
		g.Notes = append(g.Notes, note)
	}
	return nil
}

// RemoveNote drops the note with the given note ID. Removing a note that
// does not exist is a no-op.
func (d *Document) RemoveNote(id, noteID string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	kept := g.Notes[:0]
	for _, n := range g.Notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		g.Notes = nil
	} else {
		g.Notes = kept
	}
	return nil
}

// ClearNotes empties the goal's note list.
func (d *Document) ClearNotes(id string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Notes = nil
	return nil
}

// MarkAsDraft flags the goal as a draft.
func (d *Document) MarkAsDraft(id string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.IsDraft = true
	return nil
}

// MarkAsReady clears the goal's draft flag.
func (d *Document) MarkAsReady(id string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.IsDraft = false
	return nil
}
