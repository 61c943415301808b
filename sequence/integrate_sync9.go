package sequence

// IntegrateSync9 places item using the Sync9 tree algorithm. Items form a
// tree where each node may split in place to host children between a
// leading, content-absent placeholder half that marks the split point and
// the trailing content-bearing half. Children anchored with InsertAfter
// false land between the two halves, before the node's content; children
// anchored with InsertAfter true are placed after the content half.
func IntegrateSync9[T any](doc *Document[T], item Item[T], hint int) (int, error) {
	if err := checkAndAdvanceVersion(doc, item.ID); err != nil {
		return -1, err
	}

	parentIdx, err := FindItem(doc, item.OriginLeft, item.InsertAfter, hint-1)
	if err != nil {
		return -1, err
	}
	destIdx := parentIdx + 1

	if item.OriginLeft != nil && !item.InsertAfter && parentIdx >= 0 && doc.Content[parentIdx].HasContent {
		placeholder := doc.Content[parentIdx]
		placeholder.HasContent = false
		var zero T
		placeholder.Content = zero

		spliceItem(doc, parentIdx, placeholder)
		spliceItem(doc, parentIdx+1, item)
		return parentIdx + 1, nil
	}

	for destIdx < len(doc.Content) {
		o := doc.Content[destIdx]
		oparent, err := FindItem(doc, o.OriginLeft, o.InsertAfter, hint-1)
		if err != nil {
			return -1, err
		}

		stop := false
		switch {
		case oparent < parentIdx:
			stop = true
		case oparent == parentIdx:
			if item.ID.Less(o.ID) {
				stop = true
			}
		default: // oparent > parentIdx
		}
		if stop {
			break
		}
		destIdx++
	}

	spliceItem(doc, destIdx, item)
	return destIdx, nil
}
