package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
)

func bookWithBirthday(t *testing.T, name, birthday string) *book.Book {
	t.Helper()
	b := book.New()
	rec := mustRecord(t, name)
	require.NoError(t, rec.SetBirthday(birthday))
	b.AddRecord(rec)
	return b
}

func soleGreeting(t *testing.T, greetings []book.Greeting) book.Greeting {
	t.Helper()
	require.Len(t, greetings, 1)
	return greetings[0]
}

func TestUpcomingBirthdays_TodayIsTheBirthday(t *testing.T) {
	// Monday, June 10th. A birthday on the reference day itself is kept
	// and needs no weekend shift.
	ref := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	b := bookWithBirthday(t, "John", "10.06.1990")

	g := soleGreeting(t, b.UpcomingBirthdays(ref))
	assert.Equal(t, "John", g.Name)
	assert.Equal(t, "2024.06.10", g.DateString())
}

func TestUpcomingBirthdays_SaturdayShiftsToMonday(t *testing.T) {
	// Friday, June 7th; birthday lands on Saturday the 8th.
	ref := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	b := bookWithBirthday(t, "John", "08.06.1990")

	g := soleGreeting(t, b.UpcomingBirthdays(ref))
	assert.Equal(t, "2024.06.10", g.DateString(), "Saturday greeting moves to the following Monday")
}

func TestUpcomingBirthdays_SundayShiftsToMonday(t *testing.T) {
	// Friday, June 7th; birthday lands on Sunday the 9th.
	ref := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	b := bookWithBirthday(t, "Jane", "09.06.1985")

	g := soleGreeting(t, b.UpcomingBirthdays(ref))
	assert.Equal(t, "2024.06.10", g.DateString(), "Sunday greeting moves to the following Monday")
}

func TestUpcomingBirthdays_FarBirthdayExcluded(t *testing.T) {
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	b := bookWithBirthday(t, "John", "20.06.1990")

	assert.Empty(t, b.UpcomingBirthdays(ref), "a birthday more than a week away is excluded")
}

func TestUpcomingBirthdays_PassedBirthdayRollsToNextYear(t *testing.T) {
	// June 6th already passed on June 10th: the projection rolls to next
	// year, which pushes it far outside the window.
	ref := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	b := bookWithBirthday(t, "John", "06.06.2020")

	assert.Empty(t, b.UpcomingBirthdays(ref))
}

func TestUpcomingBirthdays_YearRolloverInsideWindow(t *testing.T) {
	// Late December reference; a January birthday rolls into next year and
	// still falls inside the window.
	ref := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	b := bookWithBirthday(t, "Jane", "02.01.1990")

	g := soleGreeting(t, b.UpcomingBirthdays(ref))
	assert.Equal(t, "2025.01.02", g.DateString())
}

func TestUpcomingBirthdays_WindowBoundaries(t *testing.T) {
	// Monday, June 10th. The window covers the 10th through the 16th.
	ref := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		included bool
		greeting string
	}{
		{"Sixth day after reference", "16.06.1990", true, "2024.06.17"}, // the 16th is a Sunday
		{"Seventh day after reference", "17.06.1990", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bookWithBirthday(t, "John", tt.birthday)
			greetings := b.UpcomingBirthdays(ref)

			if !tt.included {
				assert.Empty(t, greetings)
				return
			}
			g := soleGreeting(t, greetings)
			assert.Equal(t, tt.greeting, g.DateString())
		})
	}
}

func TestUpcomingBirthdays_SkipsContactsWithoutBirthday(t *testing.T) {
	ref := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	b := book.New()
	b.AddRecord(mustRecord(t, "NoBirthday", "1234567890"))

	withBday := mustRecord(t, "John")
	require.NoError(t, withBday.SetBirthday("12.06.1990"))
	b.AddRecord(withBday)

	g := soleGreeting(t, b.UpcomingBirthdays(ref))
	assert.Equal(t, "John", g.Name)
	assert.Equal(t, "2024.06.12", g.DateString())
}

func TestUpcomingBirthdays_MultipleContacts(t *testing.T) {
	ref := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	b := book.New()
	for name, birthday := range map[string]string{
		"Alice": "11.06.1990", // Tuesday, included
		"Bob":   "15.06.1985", // Saturday, shifts to the 17th
		"Carol": "25.06.2000", // outside the window
	} {
		rec := mustRecord(t, name)
		require.NoError(t, rec.SetBirthday(birthday))
		b.AddRecord(rec)
	}

	byName := make(map[string]string)
	for _, g := range b.UpcomingBirthdays(ref) {
		byName[g.Name] = g.DateString()
	}

	assert.Equal(t, map[string]string{
		"Alice": "2024.06.11",
		"Bob":   "2024.06.17",
	}, byName)
}
