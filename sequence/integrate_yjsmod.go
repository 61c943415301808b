package sequence

// IntegrateYjsMod places item at its canonical index using the modified
// Yjs (Fugue-style) algorithm. The two-dimensional oleft/oright decision
// below is what avoids the interleaving pathology: when two users type
// concurrent runs anchored at the same parent, a scanning phase defers
// commitment until either a direct anchor collision (resolved by agent)
// or the end of the foreign span is observed.
func IntegrateYjsMod[T any](doc *Document[T], item Item[T], hint int) (int, error) {
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
			case oright < right:
				scanning = true
			case oright == right:
				if item.ID.Less(o.ID) {
					stop = true
				} else {
					scanning = false
				}
			default: // oright > right
				scanning = false
			}
		default: // oleft > left: skip interior of a foreign run
		}
		if stop {
			break
		}
	}

	spliceItem(doc, destIdx, item)
	return destIdx, nil
}
