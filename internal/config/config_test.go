package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"KeyringService", config.KeyringService},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultBookFile", config.DefaultBookFile},
		{"DefaultExportFile", config.DefaultExportFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneLength, "Phone numbers are defined as exactly 10 digits")
	assert.Equal(t, 7, config.UpcomingWindowDays, "The upcoming window covers today plus six days")
	assert.Greater(t, config.DefaultICalRefresh, 0*time.Second, "Refresh interval must be positive")
}

// TestDateLayouts_RoundTrip guards the three date layouts against typos: each
// must survive a format/parse cycle for a non-ambiguous date.
func TestDateLayouts_RoundTrip(t *testing.T) {
	ref := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	for _, layout := range []string{
		config.DateLayoutInput,
		config.DateLayoutGreeting,
		config.DateLayoutVCard,
	} {
		parsed, err := time.Parse(layout, ref.Format(layout))
		assert.NoError(t, err)
		assert.True(t, parsed.Equal(ref), "layout %q must round-trip", layout)
	}
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-AddressBook/"), "UserAgent must start with AppName/")
}

// TestLanguages checks the default language is among the supported ones.
func TestLanguages(t *testing.T) {
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	// Timeouts
	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	// Limits
	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024), "MaxHTTPResponseSize should stay under 1GB to protect RAM")

	// Ports
	assert.GreaterOrEqual(t, config.MinPort, 1)
	assert.LessOrEqual(t, config.MaxPort, 65535)
}
