package cmd

import (
	"fmt"

	"github.com/corey/unitconv/internal/adapters/bbolt"
)

// withLockHint adds actionable guidance when err is a bbolt lock timeout.
// bbolt gives up on the file lock after the store's open timeout, which
// means another unitconv process (usually a batch --follow) holds it.
func withLockHint(err error, dbPath string) error {
	if !bbolt.IsLocked(err) {
		return err
	}
	return fmt.Errorf("%w\n%s", err, diagnoseDBLock(dbPath))
}

func diagnoseDBLock(dbPath string) string {
	return fmt.Sprintf("history database is locked by another process: %s\n"+
		"  → find the process:  ps aux | grep 'unitconv'\n"+
		"  → stop it (a running batch --follow holds the lock)\n"+
		"  → then retry your command", dbPath)
}
