package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used for remote vCard imports.
var UserAgent = "Go-AddressBook/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go Address Book"
	AppID          = "com.github.tartampluch.go-addressbook"
	KeyringService = "com.github.tartampluch.go-addressbook"

	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book file and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion  = "version"
	FlagDebug    = "debug"
	FlagFile     = "file"
	FlagView     = "view"
	FlagLang     = "lang"
	FlagPort     = "port"
	FlagReminder = "reminder"

	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescFile     = "Path to the address book file (vCard collection)"
	FlagDescView     = "Contact list renderer: simple or table"
	FlagDescLang     = "UI language (ISO 639-1 code)"
	FlagDescPort     = "Serve the birthday calendar feed on this localhost port (disabled when empty)"
	FlagDescReminder = "ISO8601 alarm trigger for exported birthday events (e.g. -P1D)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

const (
	ViewSimple = "simple"
	ViewTable  = "table"
)

// -----------------------------------------------------------------------------
// Table Layout (fixed-width contact table)
// -----------------------------------------------------------------------------

const (
	TableColName     = 10
	TableColPhones   = 15
	TableColBirthday = 10

	// TablePadding accounts for the column separators and surrounding spaces.
	TablePadding = 10

	TableRule     = "-"
	TableColSep   = "|"
	PhoneListSep  = ";"
	DisplayAbsent = "None"
)

// -----------------------------------------------------------------------------
// Supported Languages (ISO 639-1)
// -----------------------------------------------------------------------------

var SupportedLanguages = []string{"en", "fr"}

const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdRemovePhone  = "remove-phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdCommands     = "commands"
	CmdExport       = "export"
	CmdImport       = "import"
	CmdPassword     = "password"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome         = "welcome"
	TKeyPrompt          = "prompt"
	TKeyGoodbye         = "goodbye"
	TKeyHowHelp         = "how_help"
	TKeyCommandsHelp    = "commands_help"
	TKeyInvalidCommand  = "invalid_command"
	TKeyBadArgs         = "bad_args"
	TKeyContactAdded    = "contact_added"
	TKeyPhoneAdded      = "phone_added"
	TKeyContactUpdated  = "contact_updated"
	TKeyContactDeleted  = "contact_deleted"
	TKeyContactMissing  = "contact_missing"
	TKeyPhoneRemoved    = "phone_removed"
	TKeyBirthdayAdded   = "birthday_added"
	TKeyBirthdayUnset   = "birthday_unset"
	TKeyNoUpcoming      = "no_upcoming"
	TKeyContactsHeader  = "contacts_header"
	TKeyNoContacts      = "no_contacts"
	TKeyBookEmpty       = "book_empty"
	TKeyExported        = "exported"
	TKeyImported        = "imported"
	TKeyPasswordSaved   = "password_saved"
	TKeyPasswordFailed  = "password_failed"
	TKeyColName         = "col_name"
	TKeyColPhones       = "col_phones"
	TKeyColBirthday     = "col_birthday"
	TKeyEvtSummaryAge   = "event_summary_age"
	TKeyEvtSummaryBirth = "event_summary_birth"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultBookFile   = "addressbook" + ExtVCF
	DefaultExportFile = "birthdays" + ExtICS

	// PhoneLength is the exact number of decimal digits a phone number must have.
	PhoneLength = 10

	// UpcomingWindowDays is the length of the upcoming-birthdays window:
	// the reference day plus the six days that follow it.
	UpcomingWindowDays = 7

	// UID generation for exported calendar events.
	UIDSalt         = "go-addressbook-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Date Layouts
// -----------------------------------------------------------------------------

const (
	// DateLayoutInput is the only accepted birthday input pattern (DD.MM.YYYY).
	DateLayoutInput = "02.01.2006"

	// DateLayoutGreeting renders congratulation dates (YYYY.MM.DD).
	DateLayoutGreeting = "2006.01.02"

	// DateLayoutVCard is the BDAY layout used in the persisted vCard file.
	DateLayoutVCard = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Standards: vCard & iCalendar
// -----------------------------------------------------------------------------

const (
	VCardFN   = "FN"
	VCardTEL  = "TEL"
	VCardBDAY = "BDAY"

	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Address Book//Export//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goaddressbook"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultICalRefresh = 1 * time.Hour

	// StubVCalendar is the minimal valid iCalendar object used when the book
	// holds no birthdays, so feed clients never see an invalid calendar.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	// File Extensions
	ExtVCF = ".vcf"
	ExtICS = ".ics"
	ExtTmp = ".tmp"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout        = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second

	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB

	MinPort = 1
	MaxPort = 65535

	SchemeHTTP    = "http"
	SchemeHTTPS   = "https"
	RouteRoot     = "/"
	AddrSeparator = ":"

	AllowedMethods    = "GET, HEAD"
	RetryAfterSeconds = "10"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderRetryAfter   = "Retry-After"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"
	HeaderUserAgent    = "User-Agent"
	HeaderIfNoneMatch  = "If-None-Match"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrNameEmpty     = "name must not be empty"
	ErrPhoneFormat   = "phone number must be exactly 10 digits"
	ErrDateFormat    = "invalid date format, use DD.MM.YYYY"
	ErrBookLoad      = "failed to load address book"
	ErrBookSave      = "failed to save address book"
	ErrBookEncode    = "failed to encode address book"
	ErrVCardParse    = "failed to parse vCard stream"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrExportWrite   = "failed to write calendar export"
	ErrInvalidURL    = "invalid URL structure"
	ErrProtocol      = "unsupported protocol scheme (http/https only)"
	ErrFetcherNil    = "internal error: network fetcher is not initialized"
	ErrServerStartup = "server startup failed"
	ErrServerStop    = "server shutdown failed"
	ErrPortRequired  = "server port is required"
	ErrPortNumber    = "server port must be a number"
	ErrPortRange     = "server port must be between 1 and 65535"
	ErrViewUnknown   = "unknown view"
	ErrWriteResp     = "failed to write response body"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrReadInput     = "failed to read command input"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"

	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgBookLoaded    = "Address book loaded"
	MsgBookSaved     = "Address book saved"
	MsgBookMissing   = "No address book file found, starting empty"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedPhone  = "Skipping invalid phone number"
	MsgSkippedDate   = "Skipping invalid birthday value"
	MsgImportDone    = "Import finished"
	MsgExportDone    = "Calendar export written"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar feed updated"
	MsgCmdDispatch   = "Dispatching command"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgLocaleSelect  = "Active language selected"
	MsgTransMissing  = "Missing translation key"
	MsgPasswordFail  = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgFetchStatus   = "Server returned error status"
	MsgFetchStarting = "Initiating vCard download"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyCommand   = "command"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "imported"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyUser      = "user"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompStorage = "storage"
	CompFetcher = "fetcher"
	CompExport  = "export"
	CompServer  = "server"
	CompCLI     = "cli"
	CompI18n    = "i18n"
	CompMain    = "main"
)
