package sequence

// MergeInto transfers items missing from dest that are present in src,
// gated on causal readiness, using integrate to place each one. It is a
// scan-and-retry loop: every pass scans the still-missing set and
// integrates whatever has become ready, trading constant factors for
// simplicity over maintaining an explicit dependency graph.
func MergeInto[T any](dest *Document[T], src *Document[T], integrate IntegrateFunc[T]) error {
	missing := make([]Item[T], 0, len(src.Content))
	for _, it := range src.Content {
		if !it.HasContent {
			continue
		}
		if dest.Version.Contains(it.ID) {
			continue
		}
		missing = append(missing, it)
	}

	for len(missing) > 0 {
		progressed := false
		remaining := missing[:0]

		for _, it := range missing {
			if !isCausallyReady(dest, it) {
				remaining = append(remaining, it)
				continue
			}
			if _, err := integrate(dest, it, -1); err != nil {
				return err
			}
			progressed = true
		}

		if !progressed {
			return newError(UnresolvableDependency, "merge_into made no progress with %d item(s) still pending", len(remaining))
		}
		missing = remaining
	}

	return nil
}

// isCausallyReady reports whether item can be integrated into dest right
// now: its id isn't already observed, its agent's prior seq is already
// observed (or it's the agent's first op), and both anchors — when
// present — are already observed.
func isCausallyReady[T any](dest *Document[T], item Item[T]) bool {
	if dest.Version.Contains(item.ID) {
		return false
	}
	if item.ID.Seq > 0 && dest.Version.Highest(item.ID.Agent) < item.ID.Seq-1 {
		return false
	}
	if item.OriginLeft != nil && !dest.Version.Contains(*item.OriginLeft) {
		return false
	}
	if item.OriginRight != nil && !dest.Version.Contains(*item.OriginRight) {
		return false
	}
	return true
}

// CanInsertNow reports whether item's dependencies are already satisfied
// in doc, i.e. whether MergeInto could integrate it in the current pass.
func CanInsertNow[T any](item Item[T], doc *Document[T]) bool {
	return isCausallyReady(doc, item)
}
