// Package cli implements the interactive assistant: it parses command lines,
// dispatches them against the address book and renders the results.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/export"
	"github.com/tartampluch/go-addressbook/internal/server"
	"github.com/tartampluch/go-addressbook/internal/storage"
	"github.com/zalando/go-keyring"
)

// App wires the address book core to its collaborators: the persistence
// store, the remote fetcher, the renderer and the optional calendar feed.
type App struct {
	Book    *book.Book
	Store   storage.Store
	Fetcher storage.VCardFetcher
	View    View
	Msgs    *Messages
	Clock   book.Clock

	// Feed, when non-nil, receives a fresh calendar snapshot after every
	// mutating command.
	Feed *server.FeedServer

	// Reminder is the ISO8601 alarm trigger attached to exported events.
	Reminder string

	In  io.Reader
	Out io.Writer
}

// Run drives the read-dispatch-render loop until the user closes the
// assistant, input ends or the context is cancelled. The book is saved after
// every mutating command.
func (a *App) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompCLI)

	a.View.Message(a.Msgs.Get(config.TKeyWelcome))
	a.View.Message(a.Msgs.Get(config.TKeyCommandsHelp))
	a.refreshFeed()

	scanner := bufio.NewScanner(a.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(a.Out, a.Msgs.Get(config.TKeyPrompt))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			return nil
		}

		cmd, args := parseLine(scanner.Text())
		if cmd == "" {
			continue
		}

		log.Debug(config.MsgCmdDispatch, config.LogKeyCommand, cmd)
		mutated, quit := a.dispatch(ctx, cmd, args)

		if mutated {
			if err := a.Store.Save(a.Book); err != nil {
				log.Error(config.ErrBookSave, config.LogKeyError, err)
				a.View.Message(err.Error())
			}
			a.refreshFeed()
		}

		if quit {
			a.View.Message(a.Msgs.Get(config.TKeyGoodbye))
			return nil
		}
	}
}

// parseLine splits a raw input line into a lowercase command name and its
// arguments. Argument casing is preserved; names are case-sensitive keys.
func parseLine(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// dispatch executes one command and reports whether it mutated the book and
// whether the loop should stop.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) (mutated, quit bool) {
	switch cmd {
	case config.CmdHello:
		a.View.Message(a.Msgs.Get(config.TKeyHowHelp))
	case config.CmdCommands:
		a.View.Message(a.Msgs.Get(config.TKeyCommandsHelp))
	case config.CmdAdd:
		return a.handleAdd(args), false
	case config.CmdChange:
		return a.handleChange(args), false
	case config.CmdPhone:
		a.handleShowPhone(args)
	case config.CmdRemovePhone:
		return a.handleRemovePhone(args), false
	case config.CmdAll:
		a.handleShowAll()
	case config.CmdAddBirthday:
		return a.handleAddBirthday(args), false
	case config.CmdShowBirthday:
		a.handleShowBirthday(args)
	case config.CmdBirthdays:
		a.handleBirthdays()
	case config.CmdDelete:
		return a.handleDelete(args), false
	case config.CmdExport:
		a.handleExport(args)
	case config.CmdImport:
		return a.handleImport(ctx, args), false
	case config.CmdPassword:
		a.handlePassword(args)
	case config.CmdClose, config.CmdExit:
		return false, true
	default:
		a.View.Message(a.Msgs.Get(config.TKeyInvalidCommand))
	}
	return false, false
}

func (a *App) handleAdd(args []string) bool {
	if len(args) != 2 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return false
	}
	name, phone := args[0], args[1]

	if rec, ok := a.Book.Find(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			a.View.Message(err.Error())
			return false
		}
		a.View.Message(a.Msgs.Get(config.TKeyPhoneAdded))
		return true
	}

	rec, err := book.NewRecord(name)
	if err != nil {
		a.View.Message(err.Error())
		return false
	}
	if err := rec.AddPhone(phone); err != nil {
		a.View.Message(err.Error())
		return false
	}
	a.Book.AddRecord(rec)
	a.View.Message(a.Msgs.Get(config.TKeyContactAdded))
	return true
}

func (a *App) handleChange(args []string) bool {
	if len(args) != 3 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return false
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		a.View.Message(a.Msgs.Get(config.TKeyContactMissing))
		return false
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		a.View.Message(err.Error())
		return false
	}
	a.View.Message(a.Msgs.Get(config.TKeyContactUpdated))
	return true
}

func (a *App) handleShowPhone(args []string) {
	if len(args) != 1 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		a.View.Message(a.Msgs.Get(config.TKeyContactMissing))
		return
	}

	phones := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		phones = append(phones, p.String())
	}
	a.View.Message(strings.Join(phones, config.PhoneListSep))
}

func (a *App) handleRemovePhone(args []string) bool {
	if len(args) != 2 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return false
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		a.View.Message(a.Msgs.Get(config.TKeyContactMissing))
		return false
	}
	rec.RemovePhone(args[1])
	a.View.Message(a.Msgs.Get(config.TKeyPhoneRemoved))
	return true
}

func (a *App) handleShowAll() {
	if a.Book.Len() == 0 {
		a.View.Message(a.Msgs.Get(config.TKeyBookEmpty))
		return
	}
	a.View.Contacts(a.Book.Records())
}

func (a *App) handleAddBirthday(args []string) bool {
	if len(args) != 2 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return false
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		a.View.Message(a.Msgs.Get(config.TKeyContactMissing))
		return false
	}
	if err := rec.SetBirthday(args[1]); err != nil {
		a.View.Message(err.Error())
		return false
	}
	a.View.Message(a.Msgs.Get(config.TKeyBirthdayAdded))
	return true
}

func (a *App) handleShowBirthday(args []string) {
	if len(args) != 1 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return
	}
	rec, ok := a.Book.Find(args[0])
	if !ok {
		a.View.Message(a.Msgs.Get(config.TKeyContactMissing))
		return
	}
	bd, ok := rec.Birthday()
	if !ok {
		a.View.Message(a.Msgs.Get(config.TKeyBirthdayUnset))
		return
	}
	a.View.Message(bd.String())
}

func (a *App) handleBirthdays() {
	greetings := a.Book.UpcomingBirthdays(a.Clock.Now())
	if len(greetings) == 0 {
		a.View.Message(a.Msgs.Get(config.TKeyNoUpcoming))
		return
	}

	sort.Slice(greetings, func(i, j int) bool { return greetings[i].Name < greetings[j].Name })
	for _, g := range greetings {
		a.View.Message(g.Name + ": " + g.DateString())
	}
}

func (a *App) handleDelete(args []string) bool {
	if len(args) != 1 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return false
	}
	// Delete on an unknown name is a silent no-op.
	a.Book.Delete(args[0])
	a.View.Message(a.Msgs.Get(config.TKeyContactDeleted))
	return true
}

func (a *App) handleExport(args []string) {
	if len(args) > 1 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return
	}
	path := config.DefaultExportFile
	if len(args) == 1 {
		path = args[0]
	}

	data, err := export.Calendar(a.Book, a.Clock.Now(), a.Reminder, a.eventSummary)
	if err != nil {
		a.View.Message(err.Error())
		return
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		a.View.Message(fmt.Sprintf("%s: %v", config.ErrExportWrite, err))
		return
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(data),
	)
	a.View.Message(a.Msgs.GetData(config.TKeyExported, map[string]any{"Path": path}))
}

func (a *App) handleImport(ctx context.Context, args []string) bool {
	if len(args) < 1 || len(args) > 2 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return false
	}
	if a.Fetcher == nil {
		a.View.Message(config.ErrFetcherNil)
		return false
	}

	url := args[0]
	user, pass := "", ""
	if len(args) == 2 {
		user = args[1]
		var err error
		pass, err = keyring.Get(config.KeyringService, user)
		if err != nil {
			slog.Debug(config.MsgPasswordFail,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyUser, user,
			)
			pass = ""
		}
	}

	rc, err := a.Fetcher.Fetch(ctx, url, user, pass)
	if err != nil {
		a.View.Message(err.Error())
		return false
	}
	defer func() { _ = rc.Close() }()

	count, err := storage.Merge(a.Book, rc)
	if err != nil {
		a.View.Message(err.Error())
		// Cards decoded before the failure are already in the book.
		return count > 0
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyImported, count,
	)
	a.View.Message(a.Msgs.GetData(config.TKeyImported, map[string]any{"Count": count}))
	return count > 0
}

func (a *App) handlePassword(args []string) {
	if len(args) != 2 {
		a.View.Message(a.Msgs.Get(config.TKeyBadArgs))
		return
	}
	if err := keyring.Set(config.KeyringService, args[0], args[1]); err != nil {
		a.View.Message(a.Msgs.Get(config.TKeyPasswordFailed))
		return
	}
	a.View.Message(a.Msgs.Get(config.TKeyPasswordSaved))
}

// eventSummary renders localized calendar event titles.
func (a *App) eventSummary(name string, age int) string {
	if age == 0 {
		return a.Msgs.GetData(config.TKeyEvtSummaryBirth, map[string]any{"Name": name})
	}
	return a.Msgs.GetData(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
}

// refreshFeed re-renders the calendar snapshot for the feed server.
func (a *App) refreshFeed() {
	if a.Feed == nil {
		return
	}
	data, err := export.Calendar(a.Book, a.Clock.Now(), a.Reminder, a.eventSummary)
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, err,
		)
		return
	}
	a.Feed.Update(data)
}
