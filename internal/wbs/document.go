// Package wbs implements the work breakdown structure goal engine: a
// mutable hierarchical goal tree stored as one flat, ordered collection,
// with a status workflow that cascades between parents and children.
//
// Every operation validates its preconditions before touching the
// collection, so a failed operation leaves the document unchanged. Cascades
// collect their target IDs through the pure tree queries first and mutate
// in a second pass.
package wbs

import (
	"github.com/steveyegge/wbs/internal/types"
)

// Document is the top-level state the engine operates on. Goals holds the
// flat collection in canonical depth-first order: every parent precedes all
// of its descendants, siblings keep their insertion order.
type Document struct {
	Goals []*types.Goal `json:"goals"`

	// IsBlocked caches "at least one goal has status BLOCKED". It is
	// recomputed after every status-changing operation.
	IsBlocked bool `json:"isBlocked"`

	Owner      string          `json:"owner,omitempty"`
	References []string        `json:"references,omitempty"`
	MetaData   *types.MetaData `json:"metaData,omitempty"`

	// Revision counts successfully applied actions. The dispatch substrate
	// bumps it once per action; engine operations never touch it.
	Revision int `json:"revision"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// recomputeBlocked refreshes the IsBlocked cache from the collection.
func (d *Document) recomputeBlocked() {
	for _, g := range d.Goals {
		if g.Status == types.StatusBlocked {
			d.IsBlocked = true
			return
		}
	}
	d.IsBlocked = false
}
