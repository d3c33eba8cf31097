package book

import (
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Greeting pairs a contact name with the date on which the congratulation
// should be sent.
type Greeting struct {
	Name string
	Date time.Time
}

// DateString renders the congratulation date as YYYY.MM.DD.
func (g Greeting) DateString() string {
	return g.Date.Format(config.DateLayoutGreeting)
}

// UpcomingBirthdays returns a greeting for every contact whose birthday falls
// within the week starting at today (today plus the six following days,
// inclusive). The caller supplies today; the book never reads the wall clock.
//
// Each birthday is projected onto today's year and rolled one year forward
// when that projection lies strictly in the past. Greetings landing on a
// Saturday or Sunday are moved to the following Monday. Result order follows
// map iteration and is not a contract.
func (b *Book) UpcomingBirthdays(today time.Time) []Greeting {
	loc := today.Location()
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	var out []Greeting
	for _, rec := range b.records {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}

		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		next := time.Date(ref.Year(), bd.Date().Month(), bd.Date().Day(), 0, 0, 0, 0, loc)
		if next.Before(ref) {
			next = time.Date(ref.Year()+1, bd.Date().Month(), bd.Date().Day(), 0, 0, 0, 0, loc)
		}

		if !next.Before(ref.AddDate(0, 0, config.UpcomingWindowDays)) {
			continue
		}

		switch next.Weekday() {
		case time.Saturday:
			next = next.AddDate(0, 0, 2)
		case time.Sunday:
			next = next.AddDate(0, 0, 1)
		}

		out = append(out, Greeting{Name: rec.Name(), Date: next})
	}
	return out
}
