package session

import (
	"sync"
	"time"

	"github.com/hassanali167/remote-desktop/internal/constants"
)

// activeSet tracks which sessions recently produced stream or input
// activity. It is process-local even when sessions live in Redis: an open
// stream belongs to the process serving it.
type activeSet struct {
	mu  sync.Mutex
	ids map[string]time.Time
}

func newActiveSet() *activeSet {
	return &activeSet{ids: make(map[string]time.Time)}
}

func (a *activeSet) Mark(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ids[id] = time.Now()
}

func (a *activeSet) Clear(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.ids, id)
}

func (a *activeSet) Any() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	cutoff := time.Now().Add(-constants.ActiveWindow)
	for id, seen := range a.ids {
		if seen.Before(cutoff) {
			delete(a.ids, id)
			continue
		}
	}
	return len(a.ids) > 0
}
