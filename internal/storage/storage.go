// Package storage persists the address book as a vCard collection on disk
// and imports vCard streams from remote sources.
package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Store loads the whole address book at startup and saves it back after each
// mutating command. The book travels as one opaque unit; there is no partial
// persistence.
type Store interface {
	Load() (*book.Book, error)
	Save(b *book.Book) error
}

// FileStore keeps the address book in a single .vcf file: one vCard per
// contact, FN for the name, one TEL per phone and BDAY for the birthday.
type FileStore struct {
	Path string
}

// NewFileStore creates a store bound to the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the address book from disk. A missing file yields an empty
// book, not an error.
func (s *FileStore) Load() (*book.Book, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
	)

	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info(config.MsgBookMissing)
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}
	defer func() { _ = f.Close() }()

	b := book.New()
	if _, err := Merge(b, f); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}

	log.Info(config.MsgBookLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

// Save writes the whole book to disk atomically: the collection is encoded
// into a temporary file which then replaces the target via rename.
func (s *FileStore) Save(b *book.Book) error {
	tmp := s.Path + config.ExtTmp

	f, err := os.OpenFile(tmp, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}

	enc := vcard.NewEncoder(f)
	for _, rec := range b.Records() {
		if err := enc.Encode(recordToCard(rec)); err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
			return fmt.Errorf("%s: %w", config.ErrBookEncode, err)
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}

	slog.Debug(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, b.Len(),
	)
	return nil
}

// Merge decodes a vCard stream into the book and returns the number of
// contacts taken over. Existing records under the same name are replaced.
// Cards without a usable name and card-level decode failures are skipped so
// one bad entry cannot sink the rest of the stream.
func Merge(b *book.Book, r io.Reader) (int, error) {
	log := slog.With(config.LogKeyComponent, config.CompStorage)

	dec := vcard.NewDecoder(r)
	imported, total := 0, 0

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}
		total++

		rec, ok := cardToRecord(card, log)
		if !ok {
			continue
		}

		b.AddRecord(rec)
		imported++
	}

	log.Debug(config.MsgImportDone,
		config.LogKeyTotal, total,
		config.LogKeyImported, imported,
	)
	return imported, nil
}

// recordToCard renders one contact as a vCard 4.0 card.
func recordToCard(rec *book.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(config.VCardFN, rec.Name())

	for _, p := range rec.Phones() {
		card.AddValue(config.VCardTEL, p.String())
	}

	if bd, ok := rec.Birthday(); ok {
		card.SetValue(config.VCardBDAY, bd.Date().Format(config.DateLayoutVCard))
	}

	vcard.ToV4(card)
	return card
}

// cardToRecord builds a contact from one card. Phones that do not satisfy
// the ten-digit rule and unparseable birthdays are dropped with a log entry;
// the card itself is kept as long as it names a contact.
func cardToRecord(card vcard.Card, log *slog.Logger) (*book.Record, bool) {
	name := ""
	if fn := card.Get(config.VCardFN); fn != nil {
		name = fn.Value
	}

	rec, err := book.NewRecord(name)
	if err != nil {
		log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
		return nil, false
	}

	for _, tel := range card.Values(config.VCardTEL) {
		if err := rec.AddPhone(tel); err != nil {
			log.Debug(config.MsgSkippedPhone,
				config.LogKeyName, name,
				config.LogKeyValue, tel,
			)
		}
	}

	if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
		if t, err := time.Parse(config.DateLayoutVCard, bday.Value); err != nil {
			log.Debug(config.MsgSkippedDate,
				config.LogKeyName, name,
				config.LogKeyValue, bday.Value,
			)
		} else if err := rec.SetBirthday(t.Format(config.DateLayoutInput)); err != nil {
			log.Debug(config.MsgSkippedDate,
				config.LogKeyName, name,
				config.LogKeyValue, bday.Value,
			)
		}
	}

	return rec, true
}
