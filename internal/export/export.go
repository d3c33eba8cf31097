// Package export renders the address book's birthdays as an iCalendar feed
// that calendar clients can subscribe to or import.
package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// SummaryFunc renders a localized event title for a contact turning age.
// age 0 marks the birth itself.
type SummaryFunc func(name string, age int) string

// Calendar renders every birthday in the book as all-day events covering the
// previous, current and next year relative to now. trigger, when non-empty,
// attaches a DISPLAY alarm with that ISO8601 offset to each event. A nil
// summary falls back to untranslated titles.
func Calendar(b *book.Book, now time.Time, trigger string, summary SummaryFunc) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Events carry the local calendar date; only the stamp is UTC.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	total := 0
	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}

		for _, e := range birthdayEvents(rec.Name(), bd.Date(), now, trigger, summary) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
			total++
		}
	}

	if len(cal.Children) == 0 {
		slog.Debug(config.MsgCacheUpdated,
			config.LogKeyComponent, config.CompExport,
			config.LogKeyCount, 0,
		)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyCount, total,
	)
	return buf.Bytes(), nil
}

// birthdayEvents builds the per-year events for one contact. A three-year
// span keeps the feed populated when clients scroll backward or forward
// without an immediate refresh, and no event predates the birth itself.
func birthdayEvents(name string, birthDate time.Time, now time.Time, trigger string, summary SummaryFunc) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	uidBase := eventUID(name, birthDate)

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - birthDate.Year()
		title := fmt.Sprintf(config.FallbackSummaryAge, name, age)
		if age == 0 {
			title = fmt.Sprintf(config.FallbackSummaryBirth, name)
		}
		if summary != nil {
			title = summary(name, age)
		}
		event.Props.SetText(config.PropSummary, title)

		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if trigger != "" {
			addAlarm(event, trigger, title)
		}

		events = append(events, event)
	}
	return events
}

// eventUID derives a stable identifier from the contact's name and date of
// birth so repeated exports keep the same UIDs.
func eventUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid a VALUE=TEXT param on the property.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
