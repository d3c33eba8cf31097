package cli

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Messages resolves user-facing strings for the selected language, falling
// back to English and, as a last resort, to the key itself.
type Messages struct {
	localizer *i18n.Localizer
}

// NewMessages loads the embedded locale bundles and builds a localizer for
// lang.
func NewMessages(lang string) *Messages {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return &Messages{localizer: i18n.NewLocalizer(bundle, config.DefaultLanguage)}
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	slog.Debug(config.MsgLocaleSelect,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, lang,
	)
	return &Messages{localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage)}
}

// Get translates a key.
func (m *Messages) Get(key string) string {
	return m.GetData(key, nil)
}

// GetData translates a key with template data.
func (m *Messages) GetData(key string, data map[string]any) string {
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
