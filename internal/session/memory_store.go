package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/constants"
)

// MemoryStore keeps sessions in process memory. Everything is lost on
// restart, which matches the default no-persistence posture.
type MemoryStore struct {
	sessions sync.Map
	active   *activeSet
	logger   *zap.Logger
	done     chan struct{}
	once     sync.Once
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	store := &MemoryStore{
		active: newActiveSet(),
		logger: logger,
		done:   make(chan struct{}),
	}
	go store.cleanupLoop()
	return store
}

func (st *MemoryStore) Create() (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:            uuid.New().String(),
		Authenticated: true,
		CreatedAt:     now,
		LastActiveAt:  now,
	}
	st.sessions.Store(sess.ID, sess)
	return sess, nil
}

func (st *MemoryStore) Get(id string) (*Session, bool) {
	val, ok := st.sessions.Load(id)
	if !ok {
		return nil, false
	}
	sess := val.(*Session)
	if sess.Expired() {
		st.Delete(id)
		return nil, false
	}
	return sess, true
}

func (st *MemoryStore) Delete(id string) {
	st.active.Clear(id)
	st.sessions.Delete(id)
}

// Touch replaces the stored session with an updated copy so concurrent
// readers never observe a partial write.
func (st *MemoryStore) Touch(id string) {
	if val, ok := st.sessions.Load(id); ok {
		sess := *val.(*Session)
		sess.LastActiveAt = time.Now()
		st.sessions.Store(id, &sess)
	}
}

func (st *MemoryStore) MarkActive(id string)  { st.active.Mark(id) }
func (st *MemoryStore) ClearActive(id string) { st.active.Clear(id) }
func (st *MemoryStore) AnyActive() bool       { return st.active.Any() }

func (st *MemoryStore) Close() error {
	st.once.Do(func() { close(st.done) })
	return nil
}

func (st *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(constants.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-st.done:
			return
		case <-ticker.C:
			st.sessions.Range(func(key, value interface{}) bool {
				if value.(*Session).Expired() {
					st.Delete(key.(string))
					st.logger.Debug("expired session cleaned up", zap.String("session", key.(string)))
				}
				return true
			})
		}
	}
}
