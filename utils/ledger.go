package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Ledger owns every Account record. All access goes through a single owner
// goroutine that runs one load-mutate-save cycle at a time, so two commands
// can never settle against the same stale snapshot.
type Ledger struct {
	path     string
	requests chan ledgerRequest
	done     chan struct{}
}

// UpdateFunc mutates the account map in place. Returning dirty persists the
// whole store before the next request runs; returning an error aborts the
// cycle with no mutation written. A cycle whose save fails is rolled back,
// so an error reply always means the store is as it was before the cycle.
type UpdateFunc func(accounts map[string]*Account) (dirty bool, err error)

type ledgerRequest struct {
	fn    UpdateFunc
	reply chan error
}

// OpenLedger loads the store at path and starts the owner goroutine.
// A missing or corrupt file yields an empty store with a logged warning.
// Records written by an older schema are upgraded and persisted immediately.
func OpenLedger(path string) (*Ledger, error) {
	accounts, migrated := loadAccounts(path)

	l := &Ledger{
		path:     path,
		requests: make(chan ledgerRequest),
		done:     make(chan struct{}),
	}

	if migrated {
		if err := saveAccounts(path, accounts); err != nil {
			return nil, fmt.Errorf("persist upgraded ledger: %w", err)
		}
	}

	go l.run(accounts)
	return l, nil
}

func (l *Ledger) run(accounts map[string]*Account) {
	defer close(l.done)
	for req := range l.requests {
		before := snapshotAccounts(accounts)
		dirty, err := req.fn(accounts)
		if err == nil && dirty {
			err = saveAccounts(l.path, accounts)
		}
		if err != nil {
			// A failed cycle's mutation must not stay visible in memory
			// or ride along with the next successful save.
			restoreAccounts(accounts, before)
		}
		req.reply <- err
	}
}

func snapshotAccounts(accounts map[string]*Account) map[string]Account {
	snap := make(map[string]Account, len(accounts))
	for userID, acct := range accounts {
		snap[userID] = *acct
	}
	return snap
}

func restoreAccounts(accounts map[string]*Account, snap map[string]Account) {
	for userID := range accounts {
		if _, ok := snap[userID]; !ok {
			delete(accounts, userID)
		}
	}
	for userID, acct := range snap {
		restored := acct
		accounts[userID] = &restored
	}
}

// Update submits one load-mutate-save cycle and waits for its result.
func (l *Ledger) Update(fn UpdateFunc) error {
	reply := make(chan error, 1)
	l.requests <- ledgerRequest{fn: fn, reply: reply}
	return <-reply
}

// View runs a read-only function against the live account map.
func (l *Ledger) View(fn func(accounts map[string]*Account)) {
	l.Update(func(accounts map[string]*Account) (bool, error) {
		fn(accounts)
		return false, nil
	})
}

// Close stops the owner goroutine. Pending requests finish first.
func (l *Ledger) Close() {
	close(l.requests)
	<-l.done
}

// Ensure returns the account for userID, creating and persisting it with
// default fields if absent. Calling it twice with no intervening mutation
// performs no additional write.
func (l *Ledger) Ensure(userID string) (Account, error) {
	var snapshot Account
	err := l.Update(func(accounts map[string]*Account) (bool, error) {
		acct, created := ensureAccount(accounts, userID)
		snapshot = *acct
		return created, nil
	})
	return snapshot, err
}

// ensureAccount is the in-cycle form of Ensure for callers already holding
// the account map.
func ensureAccount(accounts map[string]*Account, userID string) (acct *Account, created bool) {
	if acct, ok := accounts[userID]; ok {
		return acct, false
	}
	acct = NewAccount()
	accounts[userID] = acct
	return acct, true
}

func loadAccounts(path string) (accounts map[string]*Account, migrated bool) {
	accounts = make(map[string]*Account)

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to read %s, starting with empty data: %v", path, err)
		}
		return accounts, false
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("Warning: %s is corrupted or empty, starting with empty data: %v", path, err)
		return accounts, false
	}

	for userID, record := range records {
		acct, upgraded, err := decodeAccount(record)
		if err != nil {
			log.Printf("Warning: skipping unreadable record for user %s: %v", userID, err)
			continue
		}
		if upgraded {
			migrated = true
		}
		accounts[userID] = acct
	}
	return accounts, migrated
}

// saveAccounts atomically rewrites the store: the new state is serialized to
// a temp file in the same directory and swapped in with a rename, so the
// previous on-disk state survives any failure.
func saveAccounts(path string, accounts map[string]*Account) error {
	data, err := json.MarshalIndent(accounts, "", "    ")
	if err != nil {
		return fmt.Errorf("serialize ledger: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp ledger file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("swap ledger file: %w", err)
	}
	return nil
}
