package book_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
)

func TestNewPhone_TableDriven(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Valid 10 digits", "1234567890", true},
		{"Valid all zeros", "0000000000", true},
		{"Too short", "123456789", false},
		{"Too long", "12345678901", false},
		{"Contains letter", "12345abc90", false},
		{"Contains dash", "123-456-78", false},
		{"Contains space", "123 456 78", false},
		{"Leading plus", "+123456789", false},
		{"Empty", "", false},
		{"Unicode digits", "１２３４５６７８９０", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := book.NewPhone(tt.input)
			if tt.valid {
				require.NoError(t, err)
				// Stored exactly as provided, no normalization.
				assert.Equal(t, tt.input, p.String())
				return
			}

			require.Error(t, err)
			var verr *book.ValidationError
			assert.True(t, errors.As(err, &verr), "expected a ValidationError, got %T", err)
		})
	}
}

func TestPhone_Set_KeepsOldValueOnFailure(t *testing.T) {
	p, err := book.NewPhone("1234567890")
	require.NoError(t, err)

	err = p.Set("bad")
	require.Error(t, err)
	assert.Equal(t, "1234567890", p.String(), "failed Set must leave the previous value in place")

	require.NoError(t, p.Set("0987654321"))
	assert.Equal(t, "0987654321", p.String())
}

func TestNewName(t *testing.T) {
	n, err := book.NewName("John")
	require.NoError(t, err)
	assert.Equal(t, "John", n.String())

	_, err = book.NewName("")
	require.Error(t, err)

	var verr *book.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
}

func TestNewBirthday_TableDriven(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Valid date", "06.06.2020", true},
		{"Valid end of year", "31.12.1999", true},
		{"Valid leap day", "29.02.2020", true},
		{"Impossible day", "31.02.2020", false},
		{"Leap day in non-leap year", "29.02.2021", false},
		{"ISO order", "2020-06-06", false},
		{"Slashes", "06/06/2020", false},
		{"Missing year", "06.06", false},
		{"Garbage", "not-a-date", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := book.NewBirthday(tt.input)
			if tt.valid {
				require.NoError(t, err)
				// Canonical text form reproduces the input pattern.
				assert.Equal(t, tt.input, b.String())
				return
			}

			require.Error(t, err)
			var verr *book.ValidationError
			assert.True(t, errors.As(err, &verr), "expected a ValidationError, got %T", err)
		})
	}
}

func TestBirthday_StoresParsedDate(t *testing.T) {
	b, err := book.NewBirthday("06.06.2020")
	require.NoError(t, err)

	d := b.Date()
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 6, d.Day())
}

// TestField_SharedContract exercises Set through the shared interface.
func TestField_SharedContract(t *testing.T) {
	tests := []struct {
		name  string
		field book.Field
		good  string
		bad   string
	}{
		{"Name", &book.Name{}, "Alice", ""},
		{"Phone", &book.Phone{}, "5555555555", "555"},
		{"Birthday", &book.Birthday{}, "01.01.1990", "1990-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.field.Set(tt.good))
			require.Error(t, tt.field.Set(tt.bad))
		})
	}
}
