package usecase

import "sync"

type gameLock struct {
	mu   sync.Mutex
	refs int
}

// gameLocks hands out one mutex per game id and forgets it once nobody holds or waits for it.
type gameLocks struct {
	mu    sync.Mutex
	locks map[string]*gameLock
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[string]*gameLock),
	}
}

func (that *gameLocks) lock(id string) func() {
	that.mu.Lock()
	entry, ok := that.locks[id]
	if !ok {
		entry = &gameLock{}
		that.locks[id] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}
