package comptes

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/nroussel/comptes/date"
	"github.com/rs/zerolog"
)

// Store is the thin imperative shell around the pure ledger operations. It
// holds the current snapshot, replaces it atomically after each successful
// operation, and keeps it persisted to a single state file whenever it
// diverges from the last saved copy (the dirty flag).
//
// Persistence is fire-and-forget: a failed save is logged, the operation
// still succeeds, and the dirty flag stays raised so the next mutation or
// export retries.
type Store struct {
	mu    sync.Mutex
	path  string
	log   zerolog.Logger
	state Snapshot
	dirty bool
}

// Open loads the state file at path into a new Store. A missing file
// starts from the default dataset; an unreadable or structurally invalid
// one is logged and also falls back to the default dataset rather than
// corrupting state.
func Open(path string, log zerolog.Logger) *Store {
	st := &Store{path: path, log: log}

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("path", path).Msg("no state file, starting from default dataset")
		st.state = DefaultSnapshot()
	case err != nil:
		log.Warn().Err(err).Str("path", path).Msg("cannot read state file, starting from default dataset")
		st.state = DefaultSnapshot()
	default:
		defer f.Close()
		s, err := DecodeSnapshot(f)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("state file rejected, starting from default dataset")
			st.state = DefaultSnapshot()
		} else {
			st.state = s
		}
	}
	return st
}

// Snapshot returns a copy of the current snapshot.
func (st *Store) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.Clone()
}

// Dirty reports whether the in-memory snapshot has diverged from the last
// exported copy.
func (st *Store) Dirty() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.dirty
}

// apply runs op against the current snapshot and, on success, installs the
// result, raises the dirty flag, and saves the state file.
func (st *Store) apply(name string, op func(Snapshot) (Snapshot, error)) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	next, err := op(st.state)
	if err != nil {
		st.log.Debug().Err(err).Str("op", name).Msg("operation rejected")
		return err
	}
	st.state = next
	st.dirty = true
	st.save()
	st.log.Info().Str("op", name).Msg("snapshot updated")
	return nil
}

// save writes the current snapshot to the state file. Callers hold the lock.
func (st *Store) save() {
	f, err := os.Create(st.path)
	if err != nil {
		st.log.Error().Err(err).Str("path", st.path).Msg("cannot save state file")
		return
	}
	defer f.Close()
	if err := EncodeSnapshot(f, st.state); err != nil {
		st.log.Error().Err(err).Str("path", st.path).Msg("cannot save state file")
	}
}

// AddTransaction records a transaction through the ledger operation.
func (st *Store) AddTransaction(tx Transaction) error {
	return st.apply("add-transaction", func(s Snapshot) (Snapshot, error) {
		return s.AddTransaction(tx)
	})
}

// EditTransaction replaces an existing transaction.
func (st *Store) EditTransaction(tx Transaction) error {
	return st.apply("edit-transaction", func(s Snapshot) (Snapshot, error) {
		return s.EditTransaction(tx)
	})
}

// DeleteTransaction removes a transaction (and its transfer pair, if any).
func (st *Store) DeleteTransaction(id string) error {
	return st.apply("delete-transaction", func(s Snapshot) (Snapshot, error) {
		return s.DeleteTransaction(id)
	})
}

// Transfer moves money between two accounts.
func (st *Store) Transfer(fromID, toID string, amount Amount, day date.Date) error {
	return st.apply("transfer", func(s Snapshot) (Snapshot, error) {
		return s.Transfer(fromID, toID, amount, day)
	})
}

// AddAccount creates a new account.
func (st *Store) AddAccount(a Account) error {
	return st.apply("add-account", func(s Snapshot) (Snapshot, error) {
		return s.AddAccount(a)
	})
}

// DeleteAccount removes an account with the given disposition.
func (st *Store) DeleteAccount(id string, disposition Disposition, targetID string) error {
	return st.apply("delete-account", func(s Snapshot) (Snapshot, error) {
		return s.DeleteAccount(id, disposition, targetID)
	})
}

// UpdateCategories replaces the category list.
func (st *Store) UpdateCategories(categories []string) error {
	return st.apply("update-categories", func(s Snapshot) (Snapshot, error) {
		return s.UpdateCategories(categories)
	})
}

// ExportTo writes the current snapshot to a timestamped file in dir and,
// on success, clears the dirty flag.
func (st *Store) ExportTo(dir string, now time.Time) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	path, err := Export(dir, st.state, now)
	if err != nil {
		return "", err
	}
	st.dirty = false
	st.log.Info().Str("path", path).Msg("snapshot exported")
	return path, nil
}

// ImportFrom replaces the whole snapshot with the contents of path. On any
// parse or validation failure the previous snapshot stays in place and the
// error is returned.
func (st *Store) ImportFrom(path string) error {
	s, err := Import(path)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = s
	st.dirty = false
	st.save()
	st.log.Info().Str("path", path).Msg("snapshot imported")
	return nil
}

// StatePath returns the state file location backing this store.
func (st *Store) StatePath() string { return st.path }
