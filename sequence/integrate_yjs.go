package sequence

// IntegrateYjs places item using the classic Yjs algorithm. It shares
// IntegrateYjsMod's scaffolding; only the middle row of the case split —
// what happens when oleft == left — differs, which is also where the two
// algorithms' known, preserved divergence on the "withTails2" case comes
// from.
func IntegrateYjs[T any](doc *Document[T], item Item[T], hint int) (int, error) {
	if err := checkAndAdvanceVersion(doc, item.ID); err != nil {
		return -1, err
	}

	left, err := FindItem(doc, item.OriginLeft, false, hint-1)
	if err != nil {
		return -1, err
	}
	right, err := resolveOriginRight(doc, item.OriginRight)
	if err != nil {
		return -1, err
	}

	destIdx := left + 1
	scanning := false

	for i := destIdx; ; i++ {
		if !scanning {
			destIdx = i
		}
		if i == len(doc.Content) || i == right {
			break
		}

		o := doc.Content[i]
		oleft, err := FindItem(doc, o.OriginLeft, false, -1)
		if err != nil {
			return -1, err
		}
		oright, err := resolveOriginRight(doc, o.OriginRight)
		if err != nil {
			return -1, err
		}

		stop := false
		switch {
		case oleft < left:
			stop = true
		case oleft == left:
			switch {
			case item.ID.Agent > o.ID.Agent:
				scanning = false
			case oright == right:
				stop = true
			default:
				scanning = true
			}
		default: // oleft > left
		}
		if stop {
			break
		}
	}

	spliceItem(doc, destIdx, item)
	return destIdx, nil
}
