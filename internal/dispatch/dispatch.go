// Package dispatch routes serialized actions to the goal engine. An action
// is a named operation plus a JSON payload; dispatching decodes and
// validates the payload, applies the operation to a document, and produces
// a record of the outcome. Failed actions are recorded, never fatal: a
// document's history may contain rejected actions and replay must tolerate
// them.
package dispatch

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/steveyegge/wbs/internal/wbs"
)

// ActionType names one engine operation.
type ActionType string

const (
	ActionCreateGoal         ActionType = "create_goal"
	ActionDelegateGoal       ActionType = "delegate_goal"
	ActionReportOnGoal       ActionType = "report_on_goal"
	ActionMarkInProgress     ActionType = "mark_in_progress"
	ActionMarkCompleted      ActionType = "mark_completed"
	ActionMarkTodo           ActionType = "mark_todo"
	ActionMarkWontDo         ActionType = "mark_wont_do"
	ActionReportBlocked      ActionType = "report_blocked"
	ActionUnblockGoal        ActionType = "unblock_goal"
	ActionUpdateDescription  ActionType = "update_description"
	ActionUpdateInstructions ActionType = "update_instructions"
	ActionClearInstructions  ActionType = "clear_instructions"
	ActionAddNote            ActionType = "add_note"
	ActionRemoveNote         ActionType = "remove_note"
	ActionClearNotes         ActionType = "clear_notes"
	ActionMarkAsDraft        ActionType = "mark_as_draft"
	ActionMarkAsReady        ActionType = "mark_as_ready"
	ActionReorderGoal        ActionType = "reorder_goal"
	ActionAddDependencies    ActionType = "add_dependencies"
	ActionRemoveDependencies ActionType = "remove_dependencies"
	ActionSetOwner           ActionType = "set_owner"
	ActionSetReferences      ActionType = "set_references"
	ActionSetMetaData        ActionType = "set_meta_data"
)

// Action is one serialized operation against a document.
type Action struct {
	ID        string          `json:"id"`
	Type      ActionType      `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Actor     string          `json:"actor,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Record captures the outcome of dispatching one action. Error is the
// failure message, empty on success. Revision is the document revision
// after the dispatch; it only advances when the action applied cleanly.
type Record struct {
	Action    Action    `json:"action"`
	Revision  int       `json:"revision"`
	Error     string    `json:"error,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
}

// OK reports whether the recorded action applied successfully.
func (r Record) OK() bool { return r.Error == "" }

type handlerFunc func(doc *wbs.Document, payload json.RawMessage) error

// Dispatcher holds the operation table. The zero value is not usable; use
// NewDispatcher.
type Dispatcher struct {
	handlers map[ActionType]handlerFunc
	now      func() time.Time
}

// NewDispatcher builds a dispatcher with every engine operation registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: map[ActionType]handlerFunc{
			ActionCreateGoal:         handleCreateGoal,
			ActionDelegateGoal:       handleDelegateGoal,
			ActionReportOnGoal:       handleReportOnGoal,
			ActionMarkInProgress:     handleMarkInProgress,
			ActionMarkCompleted:      handleMarkCompleted,
			ActionMarkTodo:           handleMarkTodo,
			ActionMarkWontDo:         handleMarkWontDo,
			ActionReportBlocked:      handleReportBlocked,
			ActionUnblockGoal:        handleUnblockGoal,
			ActionUpdateDescription:  handleUpdateDescription,
			ActionUpdateInstructions: handleUpdateInstructions,
			ActionClearInstructions:  handleClearInstructions,
			ActionAddNote:            handleAddNote,
			ActionRemoveNote:         handleRemoveNote,
			ActionClearNotes:         handleClearNotes,
			ActionMarkAsDraft:        handleMarkAsDraft,
			ActionMarkAsReady:        handleMarkAsReady,
			ActionReorderGoal:        handleReorderGoal,
			ActionAddDependencies:    handleAddDependencies,
			ActionRemoveDependencies: handleRemoveDependencies,
			ActionSetOwner:           handleSetOwner,
			ActionSetReferences:      handleSetReferences,
			ActionSetMetaData:        handleSetMetaData,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch applies one action to the document and returns its record. A
// failed action leaves the document revision where it was; a successful one
// bumps it. Dispatch never returns an error: failures live in the record.
func (dp *Dispatcher) Dispatch(doc *wbs.Document, action Action) Record {
	rec := Record{Action: action, AppliedAt: dp.now()}

	handler, ok := dp.handlers[action.Type]
	if !ok {
		rec.Revision = doc.Revision
		rec.Error = fmt.Sprintf("unknown action type: %s", action.Type)
		return rec
	}
	if err := handler(doc, action.Payload); err != nil {
		rec.Revision = doc.Revision
		rec.Error = err.Error()
		return rec
	}

	doc.Revision++
	rec.Revision = doc.Revision
	return rec
}

// Replay folds a history of actions into a fresh document. Every action
// yields a record; failures are collected alongside successes so a history
// containing rejected actions replays to the same state it produced live.
func (dp *Dispatcher) Replay(actions []Action) (*wbs.Document, []Record) {
	doc := wbs.NewDocument()
	records := make([]Record, 0, len(actions))
	for _, action := range actions {
		records = append(records, dp.Dispatch(doc, action))
	}
	return doc, records
}

type validator interface {
	Validate() error
}

// decodeArgs unmarshals an action payload into its args struct and runs the
// struct's shape validation. Engine preconditions are checked by the engine
// itself, after decoding succeeds.
func decodeArgs(payload json.RawMessage, args validator) error {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if err := json.Unmarshal(payload, args); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return args.Validate()
}
