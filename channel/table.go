// Package channel is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package channel

// Table maps channel ids to their Record, and is the storage behind both the
// engine's pending and playing sets (spec.md §4.2). Iteration order is
// unspecified but stable across non-mutating passes; it is safe to delete
// the currently-yielded entry from within Each.
type Table struct {
	records map[ID]*Record
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{records: make(map[ID]*Record)}
}

// Insert adds or overwrites the record for r.ID.
func (t *Table) Insert(r *Record) {
	t.records[r.ID] = r
}

// Get looks up a record by id.
func (t *Table) Get(id ID) (*Record, bool) {
	r, ok := t.records[id]
	return r, ok
}

// Delete removes the record for id, if present.
func (t *Table) Delete(id ID) {
	delete(t.records, id)
}

// Len reports the number of records currently held.
func (t *Table) Len() int {
	return len(t.records)
}

// Each yields every record once. If fn returns false the record just yielded
// is removed from the table; this is the only deletion that is safe to
// perform mid-iteration.
func (t *Table) Each(fn func(*Record) (keep bool)) {
	for id, r := range t.records {
		if !fn(r) {
			delete(t.records, id)
		}
	}
}

// AddAll moves every entry out of src and into t. Keys already present in t
// are overwritten, which cannot occur under the engine's id-uniqueness
// invariant. After AddAll, src is empty.
func (t *Table) AddAll(src *Table) {
	for id, r := range src.records {
		t.records[id] = r
	}
	src.records = make(map[ID]*Record, 0)
}

// Free releases the table's storage. It does not free any record's
// Userdata — that is the responsibility of the record's Finish callback.
func (t *Table) Free() {
	t.records = make(map[ID]*Record, 0)
}
