package commands

import "sync"

// EntryLocks serializes review decisions per submission id. The remote
// repository still arbitrates racing writers; this keeps a single process from
// issuing two decisions for one entry at once.
type EntryLocks struct {
	locks sync.Map
}

func NewEntryLocks() *EntryLocks {
	return &EntryLocks{}
}

// Lock acquires the per-entry lock and returns its release func.
// A nil receiver is a no-op, so wiring the locks stays optional.
func (l *EntryLocks) Lock(submissionID string) func() {
	if l == nil {
		return func() {}
	}
	value, _ := l.locks.LoadOrStore(submissionID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
