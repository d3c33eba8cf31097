package book

// Book is the address book: a collection of records keyed by contact name.
// It owns every record it holds; callers mutate contacts through the record
// returned by Find. The Book is built for single-actor use and performs no
// locking.
type Book struct {
	records map[string]*Record
}

// New returns an empty address book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts rec keyed by its name. An existing record under the same
// name is replaced entirely, phones of the old record are not merged in.
func (b *Book) AddRecord(rec *Record) {
	b.records[rec.Name()] = rec
}

// Find returns the record stored under name, if any. A missing name is an
// absent result, not an error.
func (b *Book) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name. Deleting an unknown name is a
// no-op.
func (b *Book) Delete(name string) {
	delete(b.records, name)
}

// Records returns all records. Order follows map iteration and is not a
// contract; renderers sort for stable display.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, rec := range b.records {
		out = append(out, rec)
	}
	return out
}

// Len reports the number of stored records.
func (b *Book) Len() int {
	return len(b.records)
}
