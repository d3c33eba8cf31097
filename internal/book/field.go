// Package book implements the address book core: validated contact fields,
// records, the book itself and the upcoming-birthdays computation.
package book

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Field is the contract shared by all validated contact fields.
// A field never holds a value that failed its validation rule: construction
// and Set both re-validate, and a failed Set leaves the old value in place.
type Field interface {
	fmt.Stringer

	// Set replaces the stored value after validating the raw input.
	Set(raw string) error
}

// Compile-time checks that every field variant satisfies the contract.
var (
	_ Field = (*Name)(nil)
	_ Field = (*Phone)(nil)
	_ Field = (*Birthday)(nil)
)

const (
	fieldName     = "name"
	fieldPhone    = "phone"
	fieldBirthday = "birthday"
)

// Name is a contact's display name. Any non-empty text is valid.
type Name struct {
	value string
}

// NewName validates raw and returns a Name holding it.
func NewName(raw string) (Name, error) {
	var n Name
	if err := n.Set(raw); err != nil {
		return Name{}, err
	}
	return n, nil
}

// Set replaces the name value. Empty text is rejected.
func (n *Name) Set(raw string) error {
	if raw == "" {
		return &ValidationError{Field: fieldName, Input: raw, Reason: config.ErrNameEmpty}
	}
	n.value = raw
	return nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a contact phone number: exactly ten decimal digits, stored
// verbatim with no normalization.
type Phone struct {
	value string
}

// NewPhone validates raw and returns a Phone holding it.
func NewPhone(raw string) (Phone, error) {
	var p Phone
	if err := p.Set(raw); err != nil {
		return Phone{}, err
	}
	return p, nil
}

// Set replaces the phone value. Anything but ten ASCII digits is rejected.
func (p *Phone) Set(raw string) error {
	if !validPhone(raw) {
		return &ValidationError{Field: fieldPhone, Input: raw, Reason: config.ErrPhoneFormat}
	}
	p.value = raw
	return nil
}

func (p Phone) String() string {
	return p.value
}

func validPhone(raw string) bool {
	if len(raw) != config.PhoneLength {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Birthday is a contact's date of birth. Input is accepted only in the
// DD.MM.YYYY pattern; the stored representation is the parsed calendar date,
// never the original text.
type Birthday struct {
	value time.Time
}

// NewBirthday parses raw against the DD.MM.YYYY pattern and returns a
// Birthday holding the resulting date.
func NewBirthday(raw string) (Birthday, error) {
	var b Birthday
	if err := b.Set(raw); err != nil {
		return Birthday{}, err
	}
	return b, nil
}

// Set replaces the stored date. Input that does not parse as a real calendar
// date under DD.MM.YYYY is rejected.
func (b *Birthday) Set(raw string) error {
	t, err := time.Parse(config.DateLayoutInput, raw)
	if err != nil {
		return &ValidationError{Field: fieldBirthday, Input: raw, Reason: config.ErrDateFormat}
	}
	b.value = t
	return nil
}

// Date returns the stored calendar date.
func (b Birthday) Date() time.Time {
	return b.value
}

// String re-renders the stored date in the DD.MM.YYYY input pattern.
func (b Birthday) String() string {
	return b.value.Format(config.DateLayoutInput)
}
