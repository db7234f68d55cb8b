package wbs

import "fmt"

// The engine's failure modes form a closed set. Each error carries the
// offending goal ID and is returned before any mutation happens; the
// dispatch substrate records it against the failing action and moves on.

// GoalNotFoundError reports an operation against a goal ID that does not
// exist in the document.
type GoalNotFoundError struct {
	ID string
}

func (e *GoalNotFoundError) Error() string {
	return fmt.Sprintf("goal %s not found", e.ID)
}

// DuplicateGoalError reports a create with an ID that is already taken.
type DuplicateGoalError struct {
	ID string
}

func (e *DuplicateGoalError) Error() string {
	return fmt.Sprintf("goal %s already exists", e.ID)
}

// HasChildrenError reports a delegation attempt on a non-leaf goal.
// Only leaf goals may be delegated.
type HasChildrenError struct {
	ID string
}

func (e *HasChildrenError) Error() string {
	return fmt.Sprintf("goal %s has children and cannot be delegated", e.ID)
}

// NotDelegatedError reports a progress report on a goal that is not
// currently DELEGATED.
type NotDelegatedError struct {
	ID string
}

func (e *NotDelegatedError) Error() string {
	return fmt.Sprintf("goal %s is not delegated and cannot be reported on", e.ID)
}

// NotBlockedError reports an unblock on a goal that is not BLOCKED.
type NotBlockedError struct {
	ID string
}

func (e *NotBlockedError) Error() string {
	return fmt.Sprintf("goal %s is not blocked", e.ID)
}

// CycleError reports a reorder that would make a goal an ancestor of
// itself. The move is rejected before any mutation.
type CycleError struct {
	ID       string
	ParentID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cannot move goal %s under %s: would create a cycle", e.ID, e.ParentID)
}
