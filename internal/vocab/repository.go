package vocab

import "fmt"

// Repository is the in-memory, insertion-ordered vocabulary.
// It tracks whether it has changed since it was last persisted.
type Repository struct {
	entries []*Entry
	dirty   bool
}

// NewRepository creates an empty, clean repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Add appends a new entry. It fails with ErrDuplicateWord, leaving the
// repository untouched, if word is already present.
func (r *Repository) Add(word, meaning, explanation string) error {
	if r.Contains(word) {
		return fmt.Errorf("add %q: %w", word, ErrDuplicateWord)
	}
	e := NewEntry(word, meaning, explanation)
	r.entries = append(r.entries, &e)
	r.dirty = true
	return nil
}

// Restore appends a persisted entry without marking the repository dirty.
func (r *Repository) Restore(e Entry) error {
	if r.Contains(e.word) {
		return fmt.Errorf("restore %q: %w", e.word, ErrDuplicateWord)
	}
	r.entries = append(r.entries, &e)
	return nil
}

// Get returns the entry at index.
func (r *Repository) Get(index int) (*Entry, error) {
	if index < 0 || index >= len(r.entries) {
		return nil, fmt.Errorf("get %d of %d: %w", index, len(r.entries), ErrIndexOutOfRange)
	}
	return r.entries[index], nil
}

// Delete removes the entry at index; later entries move down by one.
func (r *Repository) Delete(index int) error {
	if index < 0 || index >= len(r.entries) {
		return fmt.Errorf("delete %d of %d: %w", index, len(r.entries), ErrIndexOutOfRange)
	}
	copy(r.entries[index:], r.entries[index+1:])
	r.entries[len(r.entries)-1] = nil
	r.entries = r.entries[:len(r.entries)-1]
	r.dirty = true
	return nil
}

// Clear removes every entry.
func (r *Repository) Clear() {
	r.entries = nil
	r.dirty = true
}

// Len returns the number of entries.
func (r *Repository) Len() int {
	return len(r.entries)
}

// Contains reports whether word is present (case-sensitive exact match).
func (r *Repository) Contains(word string) bool {
	_, ok := r.Find(word)
	return ok
}

// Find returns the index of word.
func (r *Repository) Find(word string) (int, bool) {
	for i, e := range r.entries {
		if e.word == word {
			return i, true
		}
	}
	return -1, false
}

// Entries returns a copy of all entries in order.
func (r *Repository) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = *e
	}
	return out
}

// PageCount returns how many pages of the given size the repository spans.
func (r *Repository) PageCount(size int) int {
	if size <= 0 || len(r.entries) == 0 {
		return 0
	}
	return (len(r.entries) + size - 1) / size
}

// Page returns the entries on the zero-based page.
func (r *Repository) Page(page, size int) ([]*Entry, error) {
	if len(r.entries) == 0 {
		return nil, ErrEmptyRepository
	}
	if size <= 0 || page < 0 || page >= r.PageCount(size) {
		return nil, fmt.Errorf("page %d: %w", page, ErrIndexOutOfRange)
	}
	start := page * size
	end := min(start+size, len(r.entries))
	return r.entries[start:end], nil
}

// Dirty reports whether the repository has unsaved changes.
func (r *Repository) Dirty() bool {
	return r.dirty
}

// MarkDirty records a change made to an entry in place, such as a score update.
func (r *Repository) MarkDirty() {
	r.dirty = true
}

// MarkClean is called after a successful save.
func (r *Repository) MarkClean() {
	r.dirty = false
}

// LevelCounts returns how many entries sit at each level, indexed by level.
func (r *Repository) LevelCounts() [MaxLevel + 1]int {
	var counts [MaxLevel + 1]int
	for _, e := range r.entries {
		counts[e.level]++
	}
	return counts
}
