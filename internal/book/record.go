package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact: an immutable name, an ordered list of phone numbers
// and an optional birthday. All mutations either fully apply or fail before
// touching the record.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record for the given name. The name is the record's
// identity key inside a Book and cannot change afterwards.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name value.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the contact's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it to the phone list. Duplicates are
// allowed: adding the same number twice stores it twice.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone whose value equals raw exactly.
// Removing a number the record does not hold is a no-op, not an error.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != raw {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces oldRaw with newRaw. It fails with a NotFoundError when
// oldRaw is absent and with a ValidationError when newRaw is invalid; in both
// cases the phone list is left untouched. When oldRaw appears more than once,
// every occurrence is removed and a single newRaw entry is appended.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if _, ok := r.FindPhone(oldRaw); !ok {
		return &NotFoundError{What: fieldPhone, Value: oldRaw}
	}
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.RemovePhone(oldRaw)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone whose value equals raw exactly.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates raw and stores it, replacing any previous birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String renders the record on a single line for the plain-list view.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}

	birthday := config.DisplayAbsent
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, config.PhoneListSep), birthday)
}
