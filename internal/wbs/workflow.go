package wbs

import "github.com/steveyegge/wbs/internal/types"

// CreateGoalInput carries the optional fields accepted at creation time.
// Zero values mean "not provided".
type CreateGoalInput struct {
	ID           string
	Description  string
	Assignee     string
	ParentID     string
	InsertBefore string
	// Draft defaults to true when nil.
	Draft        *bool
	DependsOn    []string
	InitialNote  *types.Note
	Instructions string
	MetaData     *types.MetaData
}

// CreateGoal adds a new goal to the document. The initial status is
// DELEGATED when an assignee is provided, TODO otherwise. The goal is
// spliced before InsertBefore when that ID is present, appended otherwise;
// the collection stays canonical because the parent, if any, must already
// exist and therefore already precedes the insertion point.
func (d *Document) CreateGoal(in CreateGoalInput) error {
	if d.FindGoal(in.ID) != nil {
		return &DuplicateGoalError{ID: in.ID}
	}

	status := types.StatusTodo
	if in.Assignee != "" {
		status = types.StatusDelegated
	}
	isDraft := true
	if in.Draft != nil {
		isDraft = *in.Draft
	}

	goal := &types.Goal{
		ID:           in.ID,
		Description:  in.Description,
		Instructions: in.Instructions,
		ParentID:     in.ParentID,
		Status:       status,
		Assignee:     in.Assignee,
		IsDraft:      isDraft,
		MetaData:     in.MetaData,
	}
	for _, dep := range in.DependsOn {
		if !goal.HasDependency(dep) {
			goal.Dependencies = append(goal.Dependencies, dep)
		}
	}
	if in.InitialNote != nil {
		goal.Notes = []*types.Note{in.InitialNote}
	}

	d.Goals = InsertGoalAtPosition(d.Goals, goal, in.InsertBefore)
	d.recomputeBlocked()
	return nil
}

// DelegateGoal hands a leaf goal to an assignee and marks it DELEGATED.
// Re-delegation overwrites the previous assignee. Goals with children
// cannot be delegated.
func (d *Document) DelegateGoal(id, assignee string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	if !d.IsLeaf(id) {
		return &HasChildrenError{ID: id}
	}
	g.Status = types.StatusDelegated
	g.Assignee = assignee
	d.recomputeBlocked()
	return nil
}

// ReportOnGoal appends a progress note to a DELEGATED goal. When
// moveInReview is set the goal advances to IN_REVIEW, the one status
// change that preserves the assignee.
func (d *Document) ReportOnGoal(id string, note *types.Note, moveInReview bool) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	if g.Status != types.StatusDelegated {
		return &NotDelegatedError{ID: id}
	}
	if note != nil {
		g.Notes = append(g.Notes, note)
	}
	if moveInReview {
		g.Status = types.StatusInReview
	}
	return nil
}

// MarkInProgress sets the goal IN_PROGRESS and reopens any finished
// ancestors: work resumed somewhere below reopens the whole chain above.
// Ancestors that are TODO or already active are left alone.
func (d *Document) MarkInProgress(id string, note *types.Note) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Status = types.StatusInProgress
	g.Assignee = ""
	if note != nil {
		g.Notes = append(g.Notes, note)
	}
	for _, anc := range d.Ancestors(id) {
		if anc.Status.IsFinished() {
			anc.Status = types.StatusInProgress
			anc.Assignee = ""
		}
	}
	d.recomputeBlocked()
	return nil
}

// MarkCompleted finishes the goal and cascades both ways. Downward, every
// descendant that is not already finished is forced to COMPLETED; a
// descendant already COMPLETED or WONT_DO keeps its state and notes.
// Upward, each ancestor whose direct children are now all finished is
// completed in turn, nearest first; the walk stops at the first ancestor
// that still has unfinished work below it.
func (d *Document) MarkCompleted(id string, note *types.Note) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Status = types.StatusCompleted
	g.Assignee = ""
	if note != nil {
		g.Notes = append(g.Notes, note)
	}

	for _, desc := range d.Descendants(id) {
		if !desc.Status.IsFinished() {
			desc.Status = types.StatusCompleted
			desc.Assignee = ""
		}
	}

	for _, anc := range d.Ancestors(id) {
		if !d.allChildrenFinished(anc.ID) {
			break
		}
		anc.Status = types.StatusCompleted
		anc.Assignee = ""
	}

	d.recomputeBlocked()
	return nil
}

// MarkTodo resets the goal to TODO and un-finishes everything above it:
// every COMPLETED or WONT_DO ancestor goes back to TODO. Active ancestors
// are left unchanged.
func (d *Document) MarkTodo(id string, note *types.Note) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Status = types.StatusTodo
	g.Assignee = ""
	if note != nil {
		g.Notes = append(g.Notes, note)
	}
	for _, anc := range d.Ancestors(id) {
		if anc.Status.IsFinished() {
			anc.Status = types.StatusTodo
			anc.Assignee = ""
		}
	}
	d.recomputeBlocked()
	return nil
}

// MarkWontDo abandons the goal and forces every descendant that is not
// already COMPLETED to WONT_DO. Completed descendants are preserved, the
// same way MarkCompleted respects prior finished work. No upward cascade:
// an ancestor never auto-finishes because one child was abandoned.
func (d *Document) MarkWontDo(id string) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Status = types.StatusWontDo
	g.Assignee = ""
	for _, desc := range d.Descendants(id) {
		if desc.Status != types.StatusCompleted {
			desc.Status = types.StatusWontDo
			desc.Assignee = ""
		}
	}
	d.recomputeBlocked()
	return nil
}

// ReportBlocked marks the goal BLOCKED and records the blocking question as
// a note prefixed with "BLOCKED: ".
func (d *Document) ReportBlocked(id string, question *types.Note) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	g.Status = types.StatusBlocked
	g.Assignee = ""
	if question != nil {
		g.Notes = append(g.Notes, &types.Note{
			ID:     question.ID,
			Note:   "BLOCKED: " + question.Note,
			Author: question.Author,
		})
	}
	d.recomputeBlocked()
	return nil
}

// UnblockGoal answers a blocked goal: status returns to TODO and the
// response is recorded as a note prefixed with "UNBLOCKED: ". Fails unless
// the goal is currently BLOCKED.
func (d *Document) UnblockGoal(id string, response *types.Note) error {
	g := d.FindGoal(id)
	if g == nil {
		return &GoalNotFoundError{ID: id}
	}
	if g.Status != types.StatusBlocked {
		return &NotBlockedError{ID: id}
	}
	g.Status = types.StatusTodo
	g.Assignee = ""
	if response != nil {
		g.Notes = append(g.Notes, &types.Note{
			ID:     response.ID,
			Note:   "UNBLOCKED: " + response.Note,
			Author: response.Author,
		})
	}
	d.recomputeBlocked()
	return nil
}

// allChildrenFinished reports whether every direct child of id is
// COMPLETED or WONT_DO. A goal with no children counts as finished-below.
func (d *Document) allChildrenFinished(id string) bool {
	for _, child := range d.Children(id) {
		if !child.Status.IsFinished() {
			return false
		}
	}
	return true
}
