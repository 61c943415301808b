package sequence

import (
	"go.uber.org/zap"

	"github.com/kallisti-lab/seqcrdt/version"
)

// FindItem returns the index of the item whose ID equals *needle. A nil
// needle represents the root sentinel and always resolves to -1 without a
// search. When hint >= 0, doc.Content[hint] is checked first — the
// hot-path optimization local edits rely on, since consecutive operations
// from the same editing session tend to cluster around the same index.
//
// atEnd restricts the match to items that still carry content, which
// Sync9 needs to distinguish the two halves of a split item that share an
// id.
func FindItem[T any](doc *Document[T], needle *version.ID, atEnd bool, hint int) (int, error) {
	if needle == nil {
		return -1, nil
	}

	if hint >= 0 && hint < len(doc.Content) && matchesID(doc.Content[hint], *needle, atEnd) {
		doc.hits++
		logLookup(doc, "lookup hint hit", *needle, doc.hits, doc.misses)
		return hint, nil
	}

	for i := range doc.Content {
		if matchesID(doc.Content[i], *needle, atEnd) {
			doc.misses++
			logLookup(doc, "lookup hint miss", *needle, doc.hits, doc.misses)
			return i, nil
		}
	}

	return -1, newError(ItemNotFound, "anchor %s not found in document", needle)
}

func matchesID[T any](it Item[T], id version.ID, atEnd bool) bool {
	if it.ID != id {
		return false
	}
	if atEnd {
		return it.HasContent
	}
	return true
}

func logLookup[T any](doc *Document[T], msg string, id version.ID, hits, misses int) {
	if doc.Log == nil {
		return
	}
	doc.Log.Debug(msg,
		zap.String("anchor", id.String()),
		zap.Int("hits", hits),
		zap.Int("misses", misses),
	)
}

// FindItemAtPos translates a visible position into an absolute index in
// doc.Content, walking the content slice and counting only items with
// content present and not deleted. stickEnd (Sync9) returns the first
// candidate index even when it lands on a placeholder or tombstone,
// permitting insertion before adjacent empty items; without it, the walk
// skips past any run of invisible items so a plain insert lands
// immediately before the next visible item instead of wedged inside the
// run.
func FindItemAtPos[T any](doc *Document[T], pos int, stickEnd bool) (int, error) {
	if pos < 0 {
		return -1, newError(PositionOutOfRange, "position %d is negative", pos)
	}

	remaining := pos
	for i := 0; i <= len(doc.Content); i++ {
		if remaining == 0 {
			if stickEnd {
				return i, nil
			}
			for i < len(doc.Content) && !isVisible(doc.Content[i]) {
				i++
			}
			return i, nil
		}
		if i == len(doc.Content) {
			break
		}
		if isVisible(doc.Content[i]) {
			remaining--
		}
	}

	return -1, newError(PositionOutOfRange, "position %d exceeds visible length %d", pos, doc.Length)
}
