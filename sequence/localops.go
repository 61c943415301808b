package sequence

import "github.com/kallisti-lab/seqcrdt/version"

// IntegrateFunc places a fully-anchored item at its canonical index in
// doc. hint, when >= 0, seeds the lookup of the item's anchors the same
// way FindItem's hint does. It returns the index the item landed at.
type IntegrateFunc[T any] func(doc *Document[T], item Item[T], hint int) (int, error)

// LocalInsert turns a local edit at visible position pos into a fresh,
// fully-anchored item and hands it to integrate. This is the standard
// anchor-selection rule shared by YjsMod, Yjs, and Automerge: the new
// item's origins are simply its current left and right neighbors.
func LocalInsert[T any](doc *Document[T], agent version.Agent, pos int, content T, integrate IntegrateFunc[T]) (int, error) {
	i, err := FindItemAtPos(doc, pos, false)
	if err != nil {
		return -1, err
	}

	item := Item[T]{
		Content:    content,
		HasContent: true,
		ID:         version.ID{Agent: agent, Seq: doc.Version.Highest(agent) + 1},
		Seq:        doc.MaxSeq + 1,
	}
	if i > 0 {
		left := doc.Content[i-1].ID
		item.OriginLeft = &left
	}
	if i < len(doc.Content) {
		right := doc.Content[i].ID
		item.OriginRight = &right
	}

	return integrate(doc, item, i)
}

// LocalInsertSync9 is Sync9's own anchor-selection rule: it must pick an
// anchor that distinguishes "as first child of X" from "after X", which
// requires walking into the run of existing children anchored at the same
// parent until a non-empty (content-bearing) span is reached.
func LocalInsertSync9[T any](doc *Document[T], agent version.Agent, pos int, content T) (int, error) {
	i, err := FindItemAtPos(doc, pos, true)
	if err != nil {
		return -1, err
	}

	parentIdx := i - 1
	var originLeft *version.ID
	if parentIdx >= 0 {
		id := doc.Content[parentIdx].ID
		originLeft = &id
	}
	insertAfter := true

	for i < len(doc.Content) {
		cur := doc.Content[i]
		if !sameAnchor(cur.OriginLeft, originLeft) {
			break
		}
		parentIdx = i
		curID := cur.ID
		originLeft = &curID
		insertAfter = false
		i++
		if cur.HasContent {
			break
		}
	}

	item := Item[T]{
		Content:     content,
		HasContent:  true,
		ID:          version.ID{Agent: agent, Seq: doc.Version.Highest(agent) + 1},
		Seq:         doc.MaxSeq + 1,
		OriginLeft:  originLeft,
		InsertAfter: insertAfter,
	}

	return IntegrateSync9(doc, item, parentIdx+1)
}

func sameAnchor(a, b *version.ID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// LocalDelete marks the item at visible position pos as deleted. It is a
// no-op if the item is already deleted. Deletion never moves or removes
// storage, and it does not propagate via MergeInto (a documented
// limitation).
func LocalDelete[T any](doc *Document[T], pos int) error {
	idx, err := FindItemAtPos(doc, pos, false)
	if err != nil {
		return err
	}
	if idx >= len(doc.Content) {
		return newError(PositionOutOfRange, "position %d exceeds visible length %d", pos, doc.Length)
	}
	if doc.Content[idx].IsDeleted {
		return nil
	}
	doc.Content[idx].IsDeleted = true
	doc.Length--
	return nil
}
