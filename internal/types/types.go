// Package types defines core data structures for the wbs goal engine.
package types

import "fmt"

// Goal represents a single node in the work breakdown tree.
// Goals live in one flat, ordered collection on the document; the tree
// shape is derived entirely from ParentID back-references.
type Goal struct {
	// ===== Core Identification =====
	ID string `json:"id"`

	// ===== Content =====
	Description  string `json:"description"`
	Instructions string `json:"instructions,omitempty"`

	// ===== Hierarchy =====
	// ParentID references another goal's ID. Empty marks a root goal.
	ParentID string `json:"parentId,omitempty"`

	// ===== Status & Assignment =====
	Status Status `json:"status"`
	// Assignee is only meaningful while the goal is DELEGATED or IN_REVIEW.
	// Empty means unassigned.
	Assignee string `json:"assignee,omitempty"`

	// ===== Flags =====
	IsDraft bool `json:"isDraft"`

	// ===== Relational Data =====
	// Dependencies is an ordered set of goal IDs that conceptually precede
	// this goal. The engine tracks these edges but does not enforce them.
	Dependencies []string `json:"dependencies,omitempty"`
	Notes        []*Note  `json:"notes,omitempty"`

	// ===== Optional free-form blob =====
	MetaData *MetaData `json:"metaData,omitempty"`
}

// Validate checks if the goal has valid field values.
func (g *Goal) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("goal id is required")
	}
	if g.Description == "" {
		return fmt.Errorf("description is required")
	}
	if !g.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", g.Status)
	}
	return nil
}

// HasDependency reports whether the goal already tracks dependsOnID.
func (g *Goal) HasDependency(dependsOnID string) bool {
	for _, id := range g.Dependencies {
		if id == dependsOnID {
			return true
		}
	}
	return false
}

// Status represents the current workflow state of a goal.
type Status string

// Goal status constants
const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDelegated  Status = "DELEGATED"
	StatusInReview   Status = "IN_REVIEW"
	StatusBlocked    Status = "BLOCKED"
	StatusCompleted  Status = "COMPLETED"
	StatusWontDo     Status = "WONT_DO"
)

// IsValid checks if the status value is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDelegated, StatusInReview,
		StatusBlocked, StatusCompleted, StatusWontDo:
		return true
	}
	return false
}

// IsFinished reports whether the status is terminal (COMPLETED or WONT_DO).
// Reopening work below a finished goal cascades upward through these.
func (s Status) IsFinished() bool {
	return s == StatusCompleted || s == StatusWontDo
}

// IsActive reports whether work is underway (IN_PROGRESS, DELEGATED, IN_REVIEW).
func (s Status) IsActive() bool {
	return s == StatusInProgress || s == StatusDelegated || s == StatusInReview
}

// IsWaiting reports whether the goal is parked (TODO or BLOCKED).
func (s Status) IsWaiting() bool {
	return s == StatusTodo || s == StatusBlocked
}

// Note is an append-only annotation on a goal. Workflow operations append
// notes; they never rewrite existing note text.
type Note struct {
	ID     string `json:"id"`
	Note   string `json:"note"`
	Author string `json:"author,omitempty"`
}

// MetaData is an optional free-form blob attached to the document or to a
// single goal. Format names the encoding of Data (e.g. "json", "yaml").
type MetaData struct {
	Format string `json:"format"`
	Data   string `json:"data"`
}
