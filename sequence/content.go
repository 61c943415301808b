package sequence

import "github.com/kallisti-lab/seqcrdt/version"

// GetContent returns the non-deleted, non-placeholder materialized
// sequence: the payload the document actually displays.
func GetContent[T any](doc *Document[T]) []T {
	out := make([]T, 0, doc.Length)
	for _, it := range doc.Content {
		if isVisible(it) {
			out = append(out, it.Content)
		}
	}
	return out
}

// IsInVersion reports whether id has already been integrated according to
// v.
func IsInVersion(id version.ID, v version.Vector) bool {
	return v.Contains(id)
}
