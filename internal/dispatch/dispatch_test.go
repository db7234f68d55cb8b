package dispatch

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/steveyegge/wbs/internal/types"
	"github.com/steveyegge/wbs/internal/wbs"
)

func action(t *testing.T, typ ActionType, payload string) Action {
	t.Helper()
	return Action{
		ID:      fmt.Sprintf("act-%s", typ),
		Type:    typ,
		Payload: json.RawMessage(payload),
		Actor:   "tester",
	}
}

func dispatchOK(t *testing.T, dp *Dispatcher, doc *wbs.Document, typ ActionType, payload string) Record {
	t.Helper()
	rec := dp.Dispatch(doc, action(t, typ, payload))
	if !rec.OK() {
		t.Fatalf("%s failed: %s", typ, rec.Error)
	}
	return rec
}

func TestDispatchCreateAndTransition(t *testing.T) {
	dp := NewDispatcher()
	doc := wbs.NewDocument()

	dispatchOK(t, dp, doc, ActionCreateGoal, `{"id":"p1","description":"parent"}`)
	dispatchOK(t, dp, doc, ActionCreateGoal, `{"id":"c1","description":"child","parentId":"p1","assignee":"bob"}`)

	c1 := doc.FindGoal("c1")
	if c1 == nil || c1.Status != types.StatusDelegated {
		t.Fatalf("c1 = %+v, want DELEGATED goal", c1)
	}

	dispatchOK(t, dp, doc, ActionMarkCompleted, `{"id":"c1"}`)
	if got := doc.FindGoal("p1").Status; got != types.StatusCompleted {
		t.Errorf("p1 status = %s, want COMPLETED via dispatch", got)
	}
	if doc.Revision != 3 {
		t.Errorf("Revision = %d, want 3", doc.Revision)
	}
}

func TestDispatchFailureKeepsRevision(t *testing.T) {
	dp := NewDispatcher()
	doc := wbs.NewDocument()

	dispatchOK(t, dp, doc, ActionCreateGoal, `{"id":"g1","description":"d"}`)

	rec := dp.Dispatch(doc, action(t, ActionCreateGoal, `{"id":"g1","description":"again"}`))
	if rec.OK() {
		t.Fatal("duplicate create succeeded, want failure record")
	}
	if !strings.Contains(rec.Error, "already exists") {
		t.Errorf("Error = %q, want duplicate message", rec.Error)
	}
	if rec.Revision != 1 || doc.Revision != 1 {
		t.Errorf("revision = %d/%d, want 1 (unchanged)", rec.Revision, doc.Revision)
	}
	if len(doc.Goals) != 1 {
		t.Errorf("len(Goals) = %d, want 1", len(doc.Goals))
	}
}

func TestDispatchValidation(t *testing.T) {
	tests := []struct {
		name    string
		typ     ActionType
		payload string
		errMsg  string
	}{
		{"unknown type", ActionType("explode_goal"), `{}`, "unknown action type"},
		{"malformed json", ActionCreateGoal, `{"id":`, "invalid payload"},
		{"create missing id", ActionCreateGoal, `{"description":"d"}`, "id is required"},
		{"create missing description", ActionCreateGoal, `{"id":"g1"}`, "description is required"},
		{"delegate missing assignee", ActionDelegateGoal, `{"id":"g1"}`, "assignee is required"},
		{"report missing note", ActionReportOnGoal, `{"id":"g1"}`, "note is required"},
		{"report note missing text", ActionReportOnGoal, `{"id":"g1","note":{"id":"n1"}}`, "note.note is required"},
		{"block missing question", ActionReportBlocked, `{"id":"g1"}`, "question is required"},
		{"unblock missing response", ActionUnblockGoal, `{"id":"g1"}`, "response is required"},
		{"remove note missing noteId", ActionRemoveNote, `{"id":"g1"}`, "noteId is required"},
		{"deps missing ids", ActionAddDependencies, `{"id":"g1"}`, "ids is required"},
		{"meta missing format", ActionSetMetaData, `{"data":"x"}`, "format is required"},
		{"empty payload", ActionMarkWontDo, ``, "id is required"},
	}
	dp := NewDispatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := wbs.NewDocument()
			rec := dp.Dispatch(doc, action(t, tt.typ, tt.payload))
			if rec.OK() {
				t.Fatal("dispatch succeeded, want validation failure")
			}
			if !strings.Contains(rec.Error, tt.errMsg) {
				t.Errorf("Error = %q, want it to contain %q", rec.Error, tt.errMsg)
			}
			if doc.Revision != 0 {
				t.Errorf("Revision = %d, want 0", doc.Revision)
			}
		})
	}
}

func TestDispatchEveryActionType(t *testing.T) {
	// One valid payload per action type, applied in an order that satisfies
	// the engine's preconditions. Exercises the full routing table.
	steps := []struct {
		typ     ActionType
		payload string
	}{
		{ActionSetOwner, `{"owner":"core-team"}`},
		{ActionSetReferences, `{"urls":["https://example.com/plan"]}`},
		{ActionSetMetaData, `{"format":"json","data":"{}"}`},
		{ActionCreateGoal, `{"id":"p1","description":"parent"}`},
		{ActionCreateGoal, `{"id":"c1","description":"child","parentId":"p1"}`},
		{ActionUpdateDescription, `{"id":"c1","description":"child, rewritten"}`},
		{ActionUpdateInstructions, `{"id":"c1","instructions":"do it carefully"}`},
		{ActionClearInstructions, `{"id":"c1"}`},
		{ActionAddNote, `{"id":"c1","note":{"id":"n1","note":"context","author":"alice"}}`},
		{ActionRemoveNote, `{"id":"c1","noteId":"n1"}`},
		{ActionAddNote, `{"id":"c1","note":{"id":"n2","note":"more context"}}`},
		{ActionClearNotes, `{"id":"c1"}`},
		{ActionMarkAsReady, `{"id":"c1"}`},
		{ActionMarkAsDraft, `{"id":"c1"}`},
		{ActionAddDependencies, `{"id":"c1","ids":["p0"]}`},
		{ActionRemoveDependencies, `{"id":"c1","ids":["p0"]}`},
		{ActionReorderGoal, `{"id":"c1","parentId":null}`},
		{ActionReorderGoal, `{"id":"c1","parentId":"p1"}`},
		{ActionDelegateGoal, `{"id":"c1","assignee":"bob"}`},
		{ActionReportOnGoal, `{"id":"c1","note":{"id":"n3","note":"halfway"},"moveInReview":false}`},
		{ActionReportBlocked, `{"id":"c1","question":{"id":"q1","note":"which color?"}}`},
		{ActionUnblockGoal, `{"id":"c1","response":{"id":"r1","note":"blue"}}`},
		{ActionMarkInProgress, `{"id":"c1"}`},
		{ActionMarkTodo, `{"id":"c1"}`},
		{ActionMarkCompleted, `{"id":"c1","note":{"id":"n4","note":"shipped"}}`},
		{ActionMarkWontDo, `{"id":"p1"}`},
	}

	dp := NewDispatcher()
	doc := wbs.NewDocument()
	for i, step := range steps {
		rec := dp.Dispatch(doc, action(t, step.typ, step.payload))
		if !rec.OK() {
			t.Fatalf("step %d (%s) failed: %s", i, step.typ, rec.Error)
		}
		if rec.Revision != i+1 {
			t.Errorf("step %d: Revision = %d, want %d", i, rec.Revision, i+1)
		}
	}

	if doc.Owner != "core-team" {
		t.Errorf("Owner = %q", doc.Owner)
	}
	if got := doc.FindGoal("p1").Status; got != types.StatusWontDo {
		t.Errorf("p1 status = %s, want WONT_DO", got)
	}
	// c1 was COMPLETED before p1 was abandoned; the cascade preserves it.
	if got := doc.FindGoal("c1").Status; got != types.StatusCompleted {
		t.Errorf("c1 status = %s, want COMPLETED preserved", got)
	}
}

func TestReplay(t *testing.T) {
	history := []Action{
		{ID: "a1", Type: ActionCreateGoal, Payload: json.RawMessage(`{"id":"g1","description":"d"}`)},
		{ID: "a2", Type: ActionCreateGoal, Payload: json.RawMessage(`{"id":"g1","description":"dup"}`)},
		{ID: "a3", Type: ActionDelegateGoal, Payload: json.RawMessage(`{"id":"g1","assignee":"bob"}`)},
		{ID: "a4", Type: ActionMarkCompleted, Payload: json.RawMessage(`{"id":"g1"}`)},
	}

	dp := NewDispatcher()
	doc, records := dp.Replay(history)

	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4", len(records))
	}
	if records[0].Error != "" || records[2].Error != "" || records[3].Error != "" {
		t.Errorf("unexpected failures: %+v", records)
	}
	if records[1].OK() {
		t.Error("duplicate create replayed without a failure record")
	}
	if doc.Revision != 3 {
		t.Errorf("Revision = %d, want 3 (failed action skipped)", doc.Revision)
	}
	g := doc.FindGoal("g1")
	if g.Status != types.StatusCompleted || g.Assignee != "" {
		t.Errorf("g1 = %s/%q, want COMPLETED unassigned", g.Status, g.Assignee)
	}
}

func TestReplayDeterministic(t *testing.T) {
	history := []Action{
		{ID: "a1", Type: ActionCreateGoal, Payload: json.RawMessage(`{"id":"root","description":"r"}`)},
		{ID: "a2", Type: ActionCreateGoal, Payload: json.RawMessage(`{"id":"a","description":"a","parentId":"root"}`)},
		{ID: "a3", Type: ActionCreateGoal, Payload: json.RawMessage(`{"id":"b","description":"b","parentId":"root","insertBefore":"a"}`)},
		{ID: "a4", Type: ActionReorderGoal, Payload: json.RawMessage(`{"id":"a","parentId":"b"}`)},
	}

	dp := NewDispatcher()
	first, _ := dp.Replay(history)
	second, _ := dp.Replay(history)

	fj, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	sj, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(fj) != string(sj) {
		t.Errorf("replays diverged:\n%s\n%s", fj, sj)
	}
}
