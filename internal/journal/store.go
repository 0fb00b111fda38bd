package journal

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"hyperliquid-journal/internal/errors"
)

// BackupSuffix is appended to a journal path to name its backup.
const BackupSuffix = ".backup"

// Store persists journal documents as indented, key-sorted JSON
// files with a sibling backup refreshed on every overwrite.
//
// The backup-then-write sequence is not atomic; a crash in between
// leaves the primary recoverable from the backup. Single process
// only — concurrent writers need external mutual exclusion.
type Store struct {
	log zerolog.Logger
}

// NewStore creates a journal store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{log: logger}
}

// BackupPath returns the backup sibling for a journal path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Save writes the document to path. If a file already exists there
// it is copied to the backup path first; backup failures are logged
// but never block the primary write.
func (s *Store) Save(path string, doc *Document) error {
	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, BackupPath(path)); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("Could not create journal backup")
		}
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encoding journal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing journal")
	}
	s.log.Debug().Str("path", path).
		Int("trades", len(doc.Trades)).
		Int("manual_trades", len(doc.ManualTrades)).
		Msg("Journal written")
	return nil
}

// Load reads a journal document from path. A missing file is
// ErrJournalNotFound. A primary that fails to parse falls back to
// the backup; when both are unusable the result is ErrCorruptJournal
// so callers can tell a broken journal from an absent one.
func (s *Store) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrJournalNotFound, "%s", path)
		}
		return nil, errors.Wrap(err, "reading journal")
	}

	doc := NewDocument()
	parseErr := json.Unmarshal(data, doc)
	if parseErr == nil {
		return doc, nil
	}
	s.log.Warn().Err(parseErr).Str("path", path).Msg("Journal file failed to parse, trying backup")

	backup, err := os.ReadFile(BackupPath(path))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptJournal, "%s (no usable backup)", path)
	}
	doc = NewDocument()
	if err := json.Unmarshal(backup, doc); err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptJournal, "%s (backup also corrupted)", path)
	}
	s.log.Info().Str("path", BackupPath(path)).Msg("Recovered journal from backup")
	return doc, nil
}

// DefaultFilename names the journal file for a given day.
func DefaultFilename(now time.Time) string {
	return "trade-log-" + now.Format("20060102") + ".json"
}

// LatestFile returns the newest trade-log-*.json in dir, or
// ErrJournalNotFound when there is none.
func LatestFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "trade-log-*.json"))
	if err != nil {
		return "", errors.Wrap(err, "scanning journal directory")
	}
	if len(matches) == 0 {
		return "", errors.Wrapf(errors.ErrJournalNotFound, "no trade-log-*.json in %s", dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
