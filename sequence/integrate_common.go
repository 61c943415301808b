package sequence

import "github.com/kallisti-lab/seqcrdt/version"

// checkAndAdvanceVersion enforces the common integrate precondition every
// algorithm shares: id.Seq must be exactly one past the agent's current
// high-water mark. On success it folds id into doc.Version.
func checkAndAdvanceVersion[T any](doc *Document[T], id version.ID) error {
	expected := doc.Version.Highest(id.Agent) + 1
	if id.Seq != expected {
		return newError(OutOfOrder, "agent %s: expected next seq %d, got %d", id.Agent, expected, id.Seq)
	}
	doc.Version.Observe(id)
	return nil
}

// resolveOriginRight resolves originRight to an index, treating a nil
// anchor as end-of-document (len(doc.Content)) rather than root. Only
// YjsMod and Yjs consult originRight.
func resolveOriginRight[T any](doc *Document[T], originRight *version.ID) (int, error) {
	if originRight == nil {
		return len(doc.Content), nil
	}
	return FindItem(doc, originRight, false, -1)
}
