package domain

import "slices"

// ConflictPolicy decides whether a newly imported asset may be added to an
// ordered bundle, and whether an existing entry must first be evicted.
type ConflictPolicy int

const (
	// FirstOneWins keeps the earliest-inserted instance of a path. Scripts
	// use it: a script may have one-time global side effects, so later
	// duplicate registrations are presumed redundant re-declarations.
	FirstOneWins ConflictPolicy = iota

	// LastOneWins keeps the most recently inserted instance of a path.
	// Styles use it: CSS cascades, so the latest import determines the
	// final position.
	LastOneWins
)

// Resolution is the outcome of applying a ConflictPolicy to one import.
type Resolution struct {
	// Accept reports whether the path should be inserted. Insertion
	// position (front vs back) is the caller's responsibility.
	Accept bool
	// Evict reports that the existing instance of the path must be
	// removed before inserting.
	Evict bool
	// Duplicate reports that the path was already present, whatever the
	// outcome. Callers emit one diagnostic per duplicate detected.
	Duplicate bool
}

// Resolve applies the policy to a new import of path against the already
// accepted ordered list.
//
// FirstOneWins: present and not prepending is a no-op, since the existing
// entry is already ordered before the new request. Present and prepending
// evicts the (now-later) existing entry and accepts insertion at the front.
//
// LastOneWins: present and not prepending evicts the existing entry and
// accepts re-insertion at the end. Present and prepending is a no-op, since
// the existing entry already sits after the requested position.
func (p ConflictPolicy) Resolve(existing []string, path string, prepend bool) Resolution {
	if !slices.Contains(existing, path) {
		return Resolution{Accept: true}
	}

	switch p {
	case FirstOneWins:
		if prepend {
			return Resolution{Accept: true, Evict: true, Duplicate: true}
		}
		return Resolution{Duplicate: true}
	case LastOneWins:
		if prepend {
			return Resolution{Duplicate: true}
		}
		return Resolution{Accept: true, Evict: true, Duplicate: true}
	default:
		return Resolution{Duplicate: true}
	}
}
