package sequence

// IntegrateAutomerge places item using Automerge's sibling-ordering rule:
// only OriginLeft is consulted for the parent; Seq (not OriginRight)
// orders same-parent siblings, descending, with agent ascending as the
// final tie-break. This deliberately inverts the reference
// implementation's descending agent order, for cross-algorithm
// consistency with YjsMod/Yjs/Sync9.
func IntegrateAutomerge[T any](doc *Document[T], item Item[T], hint int) (int, error) {
	if err := checkAndAdvanceVersion(doc, item.ID); err != nil {
		return -1, err
	}
	if item.Seq < 0 {
		return -1, newError(OutOfOrder, "automerge item %s has negative seq %d", item.ID, item.Seq)
	}

	parent, err := FindItem(doc, item.OriginLeft, false, hint-1)
	if err != nil {
		return -1, err
	}
	destIdx := parent + 1

	lostConflict := false
	for destIdx < len(doc.Content) {
		o := doc.Content[destIdx]

		// Fast-path: every surviving branch below that does not break
		// guarantees o.Seq >= item.Seq, so a strictly higher item.Seq
		// can never end up behind this sibling.
		if item.Seq > o.Seq {
			break
		}

		oparent, err := FindItem(doc, o.OriginLeft, false, -1)
		if err != nil {
			return -1, err
		}

		stop := false
		switch {
		case oparent < parent:
			stop = true
		case oparent == parent:
			switch {
			case item.Seq > o.Seq:
				stop = true
			case item.Seq == o.Seq:
				if item.ID.Less(o.ID) {
					stop = true
				} else {
					lostConflict = true
				}
			default: // item.Seq < o.Seq
				lostConflict = true
			}
		default: // oparent > parent: skip a losing sibling's subtree
			if !lostConflict {
				return -1, newError(ItemNotFound, "automerge integration: skipped sibling subtree at index %d without a prior lost conflict", destIdx)
			}
		}
		if stop {
			break
		}
		destIdx++
	}

	if item.Seq > doc.MaxSeq {
		doc.MaxSeq = item.Seq
	}
	spliceItem(doc, destIdx, item)
	return destIdx, nil
}
