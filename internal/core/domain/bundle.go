package domain

import "slices"

// Bundle is an ordered sequence of asset paths destined for one output
// file. Insertion order is the final concatenation order, except where the
// conflict policy rewrites it. A path never appears twice.
type Bundle struct {
	files []string
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// Add routes one import through the conflict policy and, when accepted,
// inserts the path (front when prepend is set, back otherwise). The
// returned Resolution carries the duplicate flag for diagnostics.
func (b *Bundle) Add(policy ConflictPolicy, path string, prepend bool) Resolution {
	res := policy.Resolve(b.files, path, prepend)
	if res.Evict {
		b.remove(path)
	}
	if res.Accept {
		if prepend {
			b.files = append([]string{path}, b.files...)
		} else {
			b.files = append(b.files, path)
		}
	}
	return res
}

func (b *Bundle) remove(path string) {
	if i := slices.Index(b.files, path); i >= 0 {
		b.files = slices.Delete(b.files, i, i+1)
	}
}

// Contains reports whether the path is already in the bundle.
func (b *Bundle) Contains(path string) bool {
	return slices.Contains(b.files, path)
}

// Files returns the ordered asset paths. The slice is a copy.
func (b *Bundle) Files() []string {
	return slices.Clone(b.files)
}

// Len returns the number of assets in the bundle.
func (b *Bundle) Len() int {
	return len(b.files)
}
