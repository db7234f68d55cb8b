package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/steveyegge/wbs/internal/config"
	"github.com/steveyegge/wbs/internal/dispatch"
	"github.com/steveyegge/wbs/internal/storage"
	"github.com/steveyegge/wbs/internal/storage/sqlite"
	"github.com/steveyegge/wbs/internal/wbs"
)

// openStore opens the action log at the configured path.
func openStore(ctx context.Context) (storage.Storage, error) {
	return sqlite.New(ctx, config.DatabasePath())
}

// loadDocument rebuilds the current document by replaying the log.
func loadDocument(ctx context.Context, store storage.Storage) (*wbs.Document, error) {
	records, err := store.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	actions := make([]dispatch.Action, len(records))
	for i, rec := range records {
		actions[i] = rec.Action
	}
	doc, _ := dispatch.NewDispatcher().Replay(actions)
	return doc, nil
}

// applyAction replays the log, dispatches one new action against the
// resulting document, and appends the outcome. Failed actions are appended
// too; history keeps what was attempted. Returns the document after the
// dispatch and the action's record.
func applyAction(ctx context.Context, typ dispatch.ActionType, args interface{}) (*wbs.Document, dispatch.Record) {
	payload, err := json.Marshal(args)
	if err != nil {
		FatalError("encoding action payload: %v", err)
	}

	store, err := openStore(ctx)
	if err != nil {
		FatalError("%v", err)
	}
	defer store.Close()

	doc, err := loadDocument(ctx, store)
	if err != nil {
		FatalError("%v", err)
	}

	action := dispatch.Action{
		ID:        uuid.NewString(),
		Type:      typ,
		Payload:   payload,
		Actor:     config.GetString("actor"),
		CreatedAt: time.Now().UTC(),
	}
	rec := dispatch.NewDispatcher().Dispatch(doc, action)
	if err := store.AppendRecord(ctx, rec); err != nil {
		FatalError("recording action: %v", err)
	}
	return doc, rec
}

// mustApply is applyAction for commands that treat a rejected action as a
// fatal CLI error.
func mustApply(ctx context.Context, typ dispatch.ActionType, args interface{}) *wbs.Document {
	doc, rec := applyAction(ctx, typ, args)
	if !rec.OK() {
		FatalError("%s", rec.Error)
	}
	return doc
}

// newNoteID mints an ID for notes created by CLI flags.
func newNoteID() string {
	return uuid.NewString()
}
