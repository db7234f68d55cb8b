package dispatch

import (
	"encoding/json"

	"github.com/steveyegge/wbs/internal/wbs"
)

func handleCreateGoal(doc *wbs.Document, payload json.RawMessage) error {
	var args CreateGoalArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.CreateGoal(wbs.CreateGoalInput{
		ID:           args.ID,
		Description:  args.Description,
		Assignee:     args.Assignee,
		ParentID:     args.ParentID,
		InsertBefore: args.InsertBefore,
		Draft:        args.Draft,
		DependsOn:    args.DependsOn,
		InitialNote:  args.InitialNote,
		Instructions: args.Instructions,
		MetaData:     args.MetaData,
	})
}

func handleDelegateGoal(doc *wbs.Document, payload json.RawMessage) error {
	var args DelegateGoalArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.DelegateGoal(args.ID, args.Assignee)
}

func handleReportOnGoal(doc *wbs.Document, payload json.RawMessage) error {
	var args ReportOnGoalArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.ReportOnGoal(args.ID, args.Note, args.MoveInReview)
}

func handleMarkInProgress(doc *wbs.Document, payload json.RawMessage) error {
	var args StatusChangeArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.MarkInProgress(args.ID, args.Note)
}

func handleMarkCompleted(doc *wbs.Document, payload json.RawMessage) error {
	var args StatusChangeArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.MarkCompleted(args.ID, args.Note)
}

func handleMarkTodo(doc *wbs.Document, payload json.RawMessage) error {
	var args StatusChangeArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.MarkTodo(args.ID, args.Note)
}

func handleMarkWontDo(doc *wbs.Document, payload json.RawMessage) error {
	var args GoalIDArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.MarkWontDo(args.ID)
}

func handleReportBlocked(doc *wbs.Document, payload json.RawMessage) error {
	var args ReportBlockedArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.ReportBlocked(args.ID, args.Question)
}

func handleUnblockGoal(doc *wbs.Document, payload json.RawMessage) error {
	var args UnblockGoalArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.UnblockGoal(args.ID, args.Response)
}

func handleUpdateDescription(doc *wbs.Document, payload json.RawMessage) error {
	var args UpdateDescriptionArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.UpdateDescription(args.ID, args.Description)
}

func handleUpdateInstructions(doc *wbs.Document, payload json.RawMessage) error {
	var args UpdateInstructionsArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.UpdateInstructions(args.ID, args.Instructions)
}

func handleClearInstructions(doc *wbs.Document, payload json.RawMessage) error {
	var args GoalIDArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.ClearInstructions(args.ID)
}

func handleAddNote(doc *wbs.Document, payload json.RawMessage) error {
	var args AddNoteArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.AddNote(args.ID, args.Note)
}

func handleRemoveNote(doc *wbs.Document, payload json.RawMessage) error {
	var args RemoveNoteArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.RemoveNote(args.ID, args.NoteID)
}

func handleClearNotes(doc *wbs.Document, payload json.RawMessage) error {
	var args GoalIDArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.ClearNotes(args.ID)
}

func handleMarkAsDraft(doc *wbs.Document, payload json.RawMessage) error {
	var args GoalIDArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.MarkAsDraft(args.ID)
}

func handleMarkAsReady(doc *wbs.Document, payload json.RawMessage) error {
	var args GoalIDArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.MarkAsReady(args.ID)
}

func handleReorderGoal(doc *wbs.Document, payload json.RawMessage) error {
	var args ReorderGoalArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	parentID := ""
	if args.ParentID != nil {
		parentID = *args.ParentID
	}
	return doc.Reorder(args.ID, parentID, args.InsertBefore)
}

func handleAddDependencies(doc *wbs.Document, payload json.RawMessage) error {
	var args DependenciesArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.AddDependencies(args.ID, args.IDs)
}

func handleRemoveDependencies(doc *wbs.Document, payload json.RawMessage) error {
	var args DependenciesArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.RemoveDependencies(args.ID, args.IDs)
}

func handleSetOwner(doc *wbs.Document, payload json.RawMessage) error {
	var args SetOwnerArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.SetOwner(args.Owner)
}

func handleSetReferences(doc *wbs.Document, payload json.RawMessage) error {
	var args SetReferencesArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.SetReferences(args.URLs)
}

func handleSetMetaData(doc *wbs.Document, payload json.RawMessage) error {
	var args SetMetaDataArgs
	if err := decodeArgs(payload, &args); err != nil {
		return err
	}
	return doc.SetMetaData(args.Format, args.Data)
}
