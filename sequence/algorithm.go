package sequence

import "github.com/kallisti-lab/seqcrdt/version"

// Algorithm binds the local-insert and integrate behavior for one of the
// four integration strategies this package implements, plus the set of
// scenario names it is documented to diverge on. Dispatch is a plain
// struct of function values rather than an interface hierarchy — the
// idiomatic Go answer to "polymorphism over algorithms" when every
// strategy shares the same Item/Document shape and only the placement
// rule differs.
type Algorithm[T any] struct {
	Name        string
	LocalInsert func(doc *Document[T], agent version.Agent, pos int, content T) (int, error)
	Integrate   IntegrateFunc[T]
	// IgnoreTests names scenarios this algorithm is documented to
	// diverge on; the scenario/property suite skips these by name
	// instead of silently passing them.
	IgnoreTests []string
}

func standardLocalInsert[T any](integrate IntegrateFunc[T]) func(*Document[T], version.Agent, int, T) (int, error) {
	return func(doc *Document[T], agent version.Agent, pos int, content T) (int, error) {
		return LocalInsert(doc, agent, pos, content, integrate)
	}
}

// Yjs returns the classic Yjs algorithm dispatch record.
func Yjs[T any]() Algorithm[T] {
	return Algorithm[T]{
		Name:        "yjs",
		LocalInsert: standardLocalInsert[T](IntegrateYjs[T]),
		Integrate:   IntegrateYjs[T],
		IgnoreTests: []string{"withTails2"},
	}
}

// YjsMod returns the modified (Fugue-style) Yjs algorithm dispatch record.
func YjsMod[T any]() Algorithm[T] {
	return Algorithm[T]{
		Name:        "yjsMod",
		LocalInsert: standardLocalInsert[T](IntegrateYjsMod[T]),
		Integrate:   IntegrateYjsMod[T],
	}
}

// Automerge returns the Automerge-style algorithm dispatch record.
func Automerge[T any]() Algorithm[T] {
	return Algorithm[T]{
		Name:        "automerge",
		LocalInsert: standardLocalInsert[T](IntegrateAutomerge[T]),
		Integrate:   IntegrateAutomerge[T],
		IgnoreTests: []string{"interleavingBackward", "withTails"},
	}
}

// Sync9 returns the Sync9 algorithm dispatch record.
func Sync9[T any]() Algorithm[T] {
	return Algorithm[T]{
		Name: "sync9",
		LocalInsert: func(doc *Document[T], agent version.Agent, pos int, content T) (int, error) {
			return LocalInsertSync9(doc, agent, pos, content)
		},
		Integrate: IntegrateSync9[T],
	}
}

// Algorithms returns all four dispatch records keyed by name.
func Algorithms[T any]() map[string]Algorithm[T] {
	return map[string]Algorithm[T]{
		"yjs":       Yjs[T](),
		"yjsMod":    YjsMod[T](),
		"automerge": Automerge[T](),
		"sync9":     Sync9[T](),
	}
}
