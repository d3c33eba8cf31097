package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// allMessageKeys lists every translation key the application resolves.
var allMessageKeys = []string{
	config.TKeyWelcome,
	config.TKeyPrompt,
	config.TKeyGoodbye,
	config.TKeyHowHelp,
	config.TKeyCommandsHelp,
	config.TKeyInvalidCommand,
	config.TKeyBadArgs,
	config.TKeyContactAdded,
	config.TKeyPhoneAdded,
	config.TKeyContactUpdated,
	config.TKeyContactDeleted,
	config.TKeyContactMissing,
	config.TKeyPhoneRemoved,
	config.TKeyBirthdayAdded,
	config.TKeyBirthdayUnset,
	config.TKeyNoUpcoming,
	config.TKeyContactsHeader,
	config.TKeyNoContacts,
	config.TKeyBookEmpty,
	config.TKeyExported,
	config.TKeyImported,
	config.TKeyPasswordSaved,
	config.TKeyPasswordFailed,
	config.TKeyColName,
	config.TKeyColPhones,
	config.TKeyColBirthday,
	config.TKeyEvtSummaryAge,
	config.TKeyEvtSummaryBirth,
}

// TestLocales_AllKeysPresent guards against a locale file drifting out of
// sync with the keys used in code.
func TestLocales_AllKeysPresent(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			data, err := localeFS.ReadFile("locales/active." + lang + ".json")
			require.NoError(t, err)

			var messages map[string]string
			require.NoError(t, json.Unmarshal(data, &messages))

			for _, key := range allMessageKeys {
				value, ok := messages[key]
				assert.True(t, ok, "missing key %q in %s locale", key, lang)
				assert.NotEmpty(t, value, "empty value for key %q in %s locale", key, lang)
			}

			assert.Len(t, messages, len(allMessageKeys), "locale holds keys the code never resolves")
		})
	}
}

func TestNewMessages_ResolvesKnownKey(t *testing.T) {
	msgs := NewMessages("en")
	assert.Equal(t, "Good bye!", msgs.Get(config.TKeyGoodbye))
}

func TestNewMessages_FallsBackToEnglish(t *testing.T) {
	// Unsupported languages still resolve through the English fallback.
	msgs := NewMessages("de")
	assert.Equal(t, "Invalid command.", msgs.Get(config.TKeyInvalidCommand))
}

func TestNewMessages_FrenchLocale(t *testing.T) {
	msgs := NewMessages("fr")
	got := msgs.Get(config.TKeyGoodbye)
	assert.NotEmpty(t, got)
	assert.NotEqual(t, config.TKeyGoodbye, got)
}

func TestMessages_UnknownKeyReturnsKey(t *testing.T) {
	msgs := NewMessages("en")
	assert.Equal(t, "does_not_exist", msgs.Get("does_not_exist"))
}

func TestMessages_TemplateData(t *testing.T) {
	msgs := NewMessages("en")
	got := msgs.GetData(config.TKeyImported, map[string]any{"Count": 3})
	assert.True(t, strings.Contains(got, "3"), "rendered message %q must embed the count", got)
}
