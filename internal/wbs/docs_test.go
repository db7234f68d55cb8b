package wbs

import (
	"errors"
	"testing"

	"github.com/steveyegge/wbs/internal/types"
)

func TestUpdateDescriptionAndInstructions(t *testing.T) {
	d := docWith(goal("g1", "", types.StatusTodo))

	if err := d.UpdateDescription("g1", "new description"); err != nil {
		t.Fatalf("UpdateDescription() error = %v", err)
	}
	if got := d.FindGoal("g1").Description; got != "new description" {
		t.Errorf("Description = %q", got)
	}

	if err := d.UpdateInstructions("g1", "step by step"); err != nil {
		t.Fatalf("UpdateInstructions() error = %v", err)
	}
	if got := d.FindGoal("g1").Instructions; got != "step by step" {
		t.Errorf("Instructions = %q", got)
	}

	if err := d.ClearInstructions("g1"); err != nil {
		t.Fatalf("ClearInstructions() error = %v", err)
	}
	if got := d.FindGoal("g1").Instructions; got != "" {
		t.Errorf("Instructions after clear = %q, want empty", got)
	}
}

func TestNoteOperations(t *testing.T) {
	d := docWith(goal("g1", "", types.StatusTodo))
	g := d.FindGoal("g1")

	if err := d.AddNote("g1", &types.Note{ID: "n1", Note: "first", Author: "alice"}); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}
	if err := d.AddNote("g1", &types.Note{ID: "n2", Note: "second"}); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}
	if len(g.Notes) != 2 {
		t.Fatalf("len(Notes) = %d, want 2", len(g.Notes))
	}

	if err := d.RemoveNote("g1", "n1"); err != nil {
		t.Fatalf("RemoveNote() error = %v", err)
	}
	if len(g.Notes) != 1 || g.Notes[0].ID != "n2" {
		t.Errorf("Notes = %v, want only n2", g.Notes)
	}

	// Removing an unknown note ID is a no-op.
	if err := d.RemoveNote("g1", "missing"); err != nil {
		t.Fatalf("RemoveNote(missing) error = %v", err)
	}
	if len(g.Notes) != 1 {
		t.Errorf("len(Notes) = %d, want 1", len(g.Notes))
	}

	if err := d.ClearNotes("g1"); err != nil {
		t.Fatalf("ClearNotes() error = %v", err)
	}
	if g.Notes != nil {
		t.Errorf("Notes = %v, want nil", g.Notes)
	}
}

func TestDraftFlag(t *testing.T) {
	d := docWith(goal("g1", "", types.StatusTodo))

	if err := d.MarkAsDraft("g1"); err != nil {
		t.Fatalf("MarkAsDraft() error = %v", err)
	}
	if !d.FindGoal("g1").IsDraft {
		t.Error("IsDraft = false after MarkAsDraft")
	}
	if err := d.MarkAsReady("g1"); err != nil {
		t.Fatalf("MarkAsReady() error = %v", err)
	}
	if d.FindGoal("g1").IsDraft {
		t.Error("IsDraft = true after MarkAsReady")
	}
}

func TestDocOpsGoalNotFound(t *testing.T) {
	d := NewDocument()
	tests := []struct {
		name string
		err  error
	}{
		{"UpdateDescription", d.UpdateDescription("nope", "x")},
		{"UpdateInstructions", d.UpdateInstructions("nope", "x")},
		{"ClearInstructions", d.ClearInstructions("nope")},
		{"AddNote", d.AddNote("nope", &types.Note{ID: "n", Note: "x"})},
		{"RemoveNote", d.RemoveNote("nope", "n")},
		{"ClearNotes", d.ClearNotes("nope")},
		{"MarkAsDraft", d.MarkAsDraft("nope")},
		{"MarkAsReady", d.MarkAsReady("nope")},
	}
	for _, tt := range tests {
		var nf *GoalNotFoundError
		if !errors.As(tt.err, &nf) {
			t.Errorf("%s error = %v, want GoalNotFoundError", tt.name, tt.err)
		}
	}
}

func TestDocumentMetadata(t *testing.T) {
	d := NewDocument()

	if err := d.SetOwner("platform-team"); err != nil {
		t.Fatalf("SetOwner() error = %v", err)
	}
	if d.Owner != "platform-team" {
		t.Errorf("Owner = %q", d.Owner)
	}

	urls := []string{"https://example.com/rfc", "https://example.com/design"}
	if err := d.SetReferences(urls); err != nil {
		t.Fatalf("SetReferences() error = %v", err)
	}
	if len(d.References) != 2 || d.References[0] != urls[0] {
		t.Errorf("References = %v", d.References)
	}

	if err := d.SetMetaData("yaml", "team: core"); err != nil {
		t.Fatalf("SetMetaData() error = %v", err)
	}
	if d.MetaData == nil || d.MetaData.Format != "yaml" || d.MetaData.Data != "team: core" {
		t.Errorf("MetaData = %+v", d.MetaData)
	}
}
