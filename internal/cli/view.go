package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// View renders command results for the user. The two implementations differ
// only in how they lay out the contact list.
type View interface {
	// Contacts renders the full contact list.
	Contacts(records []*book.Record)

	// Message prints a single user-facing message.
	Message(text string)
}

// NewView selects a renderer by name.
func NewView(kind string, out io.Writer, msgs *Messages) (View, error) {
	switch kind {
	case config.ViewSimple:
		return &SimpleView{Out: out, Msgs: msgs}, nil
	case config.ViewTable:
		return &TableView{Out: out, Msgs: msgs}, nil
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrViewUnknown, kind)
	}
}

// byName sorts records for stable display; storage order is not a contract.
func byName(records []*book.Record) []*book.Record {
	sorted := make([]*book.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })
	return sorted
}

// SimpleView prints one line per contact.
type SimpleView struct {
	Out  io.Writer
	Msgs *Messages
}

func (v *SimpleView) Contacts(records []*book.Record) {
	fmt.Fprintln(v.Out, v.Msgs.Get(config.TKeyContactsHeader))
	for _, rec := range byName(records) {
		fmt.Fprintln(v.Out, rec)
	}
}

func (v *SimpleView) Message(text string) {
	fmt.Fprintln(v.Out, text)
}

// TableView prints the contacts as a fixed-width table.
type TableView struct {
	Out  io.Writer
	Msgs *Messages
}

func (v *TableView) Contacts(records []*book.Record) {
	fmt.Fprintln(v.Out, v.Msgs.Get(config.TKeyContactsHeader))
	if len(records) == 0 {
		fmt.Fprintln(v.Out, v.Msgs.Get(config.TKeyNoContacts))
		return
	}

	width := config.TableColName + config.TableColPhones + config.TableColBirthday + config.TablePadding
	rule := strings.Repeat(config.TableRule, width)

	fmt.Fprintln(v.Out, rule)
	v.row(v.Msgs.Get(config.TKeyColName), v.Msgs.Get(config.TKeyColPhones), v.Msgs.Get(config.TKeyColBirthday))
	fmt.Fprintln(v.Out, rule)

	for _, rec := range byName(records) {
		phones := make([]string, 0, len(rec.Phones()))
		for _, p := range rec.Phones() {
			phones = append(phones, p.String())
		}

		birthday := config.DisplayAbsent
		if bd, ok := rec.Birthday(); ok {
			birthday = bd.String()
		}

		v.row(rec.Name(), strings.Join(phones, config.PhoneListSep), birthday)
	}

	fmt.Fprintln(v.Out, rule)
}

func (v *TableView) row(name, phones, birthday string) {
	fmt.Fprintf(v.Out, "%s %-*s %s %-*s %s %-*s %s\n",
		config.TableColSep, config.TableColName, name,
		config.TableColSep, config.TableColPhones, phones,
		config.TableColSep, config.TableColBirthday, birthday,
		config.TableColSep,
	)
}

func (v *TableView) Message(text string) {
	fmt.Fprintln(v.Out, text)
}
