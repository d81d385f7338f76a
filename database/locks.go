package database

import "sync"

// accountLocks serializes ledger mutations per account. Two concurrent
// requests for the same account would otherwise race on the
// load-mutate-save cycle and the last writer would win silently.
var accountLocks sync.Map

// LockAccount acquires the mutex for userID and returns the unlock
// function. Callers must defer the returned function.
func LockAccount(userID string) func() {
	value, _ := accountLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
