package dispatch

import (
	"fmt"

	"github.com/steveyegge/wbs/internal/types"
)

// One args struct per action type. Field names follow the document model's
// JSON casing. Validate checks payload shape only: required fields present,
// embedded notes well-formed. Whether the referenced goals exist or the
// transition is legal is the engine's call.

func validateNote(field string, n *types.Note) error {
	if n == nil {
		return fmt.Errorf("%s is required", field)
	}
	if n.ID == "" {
		return fmt.Errorf("%s.id is required", field)
	}
	if n.Note == "" {
		return fmt.Errorf("%s.note is required", field)
	}
	return nil
}

type CreateGoalArgs struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Assignee     string          `json:"assignee,omitempty"`
	ParentID     string          `json:"parentId,omitempty"`
	InsertBefore string          `json:"insertBefore,omitempty"`
	Draft        *bool           `json:"draft,omitempty"`
	DependsOn    []string        `json:"dependsOn,omitempty"`
	InitialNote  *types.Note     `json:"initialNote,omitempty"`
	Instructions string          `json:"instructions,omitempty"`
	MetaData     *types.MetaData `json:"metaData,omitempty"`
}

func (a *CreateGoalArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.Description == "" {
		return fmt.Errorf("description is required")
	}
	if a.InitialNote != nil {
		return validateNote("initialNote", a.InitialNote)
	}
	return nil
}

type DelegateGoalArgs struct {
	ID       string `json:"id"`
	Assignee string `json:"assignee"`
}

func (a *DelegateGoalArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.Assignee == "" {
		return fmt.Errorf("assignee is required")
	}
	return nil
}

type ReportOnGoalArgs struct {
	ID           string      `json:"id"`
	Note         *types.Note `json:"note"`
	MoveInReview bool        `json:"moveInReview,omitempty"`
}

func (a *ReportOnGoalArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	return validateNote("note", a.Note)
}

// StatusChangeArgs serves the mark_* transitions that take an optional note.
type StatusChangeArgs struct {
	ID   string      `json:"id"`
	Note *types.Note `json:"note,omitempty"`
}

func (a *StatusChangeArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.Note != nil {
		return validateNote("note", a.Note)
	}
	return nil
}

// GoalIDArgs serves the actions whose payload is a bare goal reference.
type GoalIDArgs struct {
	ID string `json:"id"`
}

func (a *GoalIDArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

type ReportBlockedArgs struct {
	ID       string      `json:"id"`
	Question *types.Note `json:"question"`
}

func (a *ReportBlockedArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	return validateNote("question", a.Question)
}

type UnblockGoalArgs struct {
	ID       string      `json:"id"`
	Response *types.Note `json:"response"`
}

func (a *UnblockGoalArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	return validateNote("response", a.Response)
}

type UpdateDescriptionArgs struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

func (a *UpdateDescriptionArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

type UpdateInstructionsArgs struct {
	ID           string `json:"id"`
	Instructions string `json:"instructions"`
}

func (a *UpdateInstructionsArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.Instructions == "" {
		return fmt.Errorf("instructions is required")
	}
	return nil
}

type AddNoteArgs struct {
	ID   string      `json:"id"`
	Note *types.Note `json:"note"`
}

func (a *AddNoteArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	return validateNote("note", a.Note)
}

type RemoveNoteArgs struct {
	ID     string `json:"id"`
	NoteID string `json:"noteId"`
}

func (a *RemoveNoteArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.NoteID == "" {
		return fmt.Errorf("noteId is required")
	}
	return nil
}

type ReorderGoalArgs struct {
	ID string `json:"id"`
	// ParentID nil or empty moves the goal to the root.
	ParentID     *string `json:"parentId,omitempty"`
	InsertBefore string  `json:"insertBefore,omitempty"`
}

func (a *ReorderGoalArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

type DependenciesArgs struct {
	ID  string   `json:"id"`
	IDs []string `json:"ids"`
}

func (a *DependenciesArgs) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if len(a.IDs) == 0 {
		return fmt.Errorf("ids is required")
	}
	return nil
}

type SetOwnerArgs struct {
	Owner string `json:"owner"`
}

func (a *SetOwnerArgs) Validate() error { return nil }

type SetReferencesArgs struct {
	URLs []string `json:"urls"`
}

func (a *SetReferencesArgs) Validate() error { return nil }

type SetMetaDataArgs struct {
	Format string `json:"format"`
	Data   string `json:"data"`
}

func (a *SetMetaDataArgs) Validate() error {
	if a.Format == "" {
		return fmt.Errorf("format is required")
	}
	return nil
}
