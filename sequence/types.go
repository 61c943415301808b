// Package sequence implements the sequence-CRDT integration engine: the
// Item/Document model and the four integration strategies (YjsMod, Yjs,
// Automerge, Sync9) that place a freshly-anchored item at its canonical
// index in a materialized document.
package sequence

import (
	"go.uber.org/zap"

	"github.com/kallisti-lab/seqcrdt/version"
)

// Item is the single union shape every integration algorithm in this
// package reads and writes. Fields an algorithm doesn't use are still
// carried and preserved verbatim through merge.
type Item[T any] struct {
	// Content is the payload element. HasContent is false for Sync9's
	// zero-length split placeholders.
	Content    T
	HasContent bool

	ID version.ID

	// OriginLeft is the left anchor. nil means root (start of document).
	// Consulted by YjsMod, Yjs, Automerge, and Sync9.
	OriginLeft *version.ID
	// OriginRight is the right anchor. nil means end-of-document.
	// Consulted only by YjsMod and Yjs.
	OriginRight *version.ID

	// Seq is a second, per-document (not per-agent) monotonically
	// increasing counter used only by Automerge to order same-parent
	// siblings.
	Seq int

	// InsertAfter distinguishes, for Sync9 only, inserting as the first
	// child of OriginLeft (false) from inserting immediately after
	// OriginLeft's own content, i.e. after a prior split (true).
	InsertAfter bool

	// IsDeleted is the tombstone flag: the only field that changes after
	// an item has been integrated.
	IsDeleted bool
}

// isVisible reports whether an item counts towards a document's visible
// content and length: it carries content and has not been deleted.
func isVisible[T any](it Item[T]) bool {
	return it.HasContent && !it.IsDeleted
}

// Document is a linear buffer of items plus the derived state (version
// vector, visible length, max per-document seq) every algorithm needs.
type Document[T any] struct {
	// Content is the materialization order: also the visible order once
	// tombstones and placeholders are filtered out.
	Content []Item[T]
	Version version.Vector
	// Length is the count of items with content present and not deleted.
	Length int
	// MaxSeq is the highest Seq across all items (Automerge only); new
	// local inserts always get MaxSeq+1 regardless of the target
	// algorithm, so every Item carries a meaningful Seq even if its
	// algorithm ignores it.
	MaxSeq int

	// Log, when non-nil, receives Debug-level lookup hit/miss telemetry
	// A nil Log is a valid, silent no-op.
	Log *zap.Logger

	hits, misses int
}

// NewDoc returns an empty document ready for local inserts or merges.
func NewDoc[T any]() *Document[T] {
	return &Document[T]{Version: version.Vector{}, MaxSeq: -1}
}

// WithLogger attaches a structured logger for lookup-hint telemetry and
// returns the document for chaining.
func (d *Document[T]) WithLogger(log *zap.Logger) *Document[T] {
	d.Log = log
	return d
}

// spliceItem inserts item at idx, shifting everything from idx onward one
// slot to the right, and updates Length when the spliced item is visible.
// This is the one mutation point every integrate algorithm commits
// through, so Length never drifts out of sync with Content.
func spliceItem[T any](doc *Document[T], idx int, item Item[T]) {
	doc.Content = append(doc.Content, Item[T]{})
	copy(doc.Content[idx+1:], doc.Content[idx:])
	doc.Content[idx] = item
	if isVisible(item) {
		doc.Length++
	}
}
