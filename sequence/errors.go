package sequence

import "fmt"

// ErrorKind enumerates the fatal, invariant-violation error classes this
// package returns. None of them is ever recovered internally — every one
// propagates to the caller.
type ErrorKind string

const (
	// OutOfOrder: integrate was called with a non-consecutive seq for
	// the item's agent.
	OutOfOrder ErrorKind = "out_of_order"
	// ItemNotFound: a non-root anchor id is missing from the document.
	ItemNotFound ErrorKind = "item_not_found"
	// PositionOutOfRange: a visible position exceeds the document's
	// visible length.
	PositionOutOfRange ErrorKind = "position_out_of_range"
	// UnresolvableDependency: MergeInto made no progress in a full pass
	// over its pending set.
	UnresolvableDependency ErrorKind = "unresolvable_dependency"
)

// Error is the single exported error type for every fatal kind above. It
// is constructed with fmt.Sprintf-style formatting and returned as-is (or
// wrapped further with fmt.Errorf("...: %w", err) by callers) rather than
// introducing a separate errors package.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
