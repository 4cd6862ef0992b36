package collect

import (
	"path/filepath"
)

// Entry is one successfully fingerprinted document.
type Entry struct {
	Path    string
	Snippet string
}

// Fingerprints is the path→snippet set built once per run. Iteration order
// is insertion order, which is completion order of the extraction workers.
// Every entry holds a non-empty snippet; failed extractions are never added.
type Fingerprints struct {
	entries []Entry
	seen    map[string]struct{}
}

func NewFingerprints() *Fingerprints {
	return &Fingerprints{seen: make(map[string]struct{})}
}

// Add inserts a snippet for a path. Duplicate paths and empty snippets are
// ignored; the caller is expected to have filtered both already.
func (f *Fingerprints) Add(path, snippet string) {
	if snippet == "" {
		return
	}
	if _, ok := f.seen[path]; ok {
		return
	}
	f.seen[path] = struct{}{}
	f.entries = append(f.entries, Entry{Path: path, Snippet: snippet})
}

func (f *Fingerprints) Len() int {
	return len(f.entries)
}

func (f *Fingerprints) Entries() []Entry {
	return f.entries
}

// PathByBase resolves a basename back to the full path it was recorded
// under. Basenames come from the model's verdict, full paths from the glob.
func (f *Fingerprints) PathByBase(base string) (string, bool) {
	for _, e := range f.entries {
		if filepath.Base(e.Path) == base {
			return e.Path, true
		}
	}
	return "", false
}
