package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/constants"
)

const redisKeyPrefix = "remote-desktop:session:"

// RedisStore keeps sessions in Redis so they survive a gateway restart.
// Active markers stay process-local: an open stream belongs to the
// process serving it, not to the deployment.
type RedisStore struct {
	client *redis.Client
	active *activeSet
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewRedisStore(host, port, username, password string, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Username: username,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithCancel(context.Background())

	if err := client.Ping(ctx).Err(); err != nil {
		cancel()
		return nil, err
	}

	return &RedisStore{
		client: client,
		active: newActiveSet(),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

func (st *RedisStore) Create() (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:            uuid.New().String(),
		Authenticated: true,
		CreatedAt:     now,
		LastActiveAt:  now,
	}
	if err := st.save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (st *RedisStore) save(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return st.client.Set(st.ctx, redisKeyPrefix+sess.ID, data, constants.SessionTTL).Err()
}

func (st *RedisStore) Get(id string) (*Session, bool) {
	data, err := st.client.Get(st.ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		st.logger.Warn("corrupt session record", zap.String("session", id), zap.Error(err))
		return nil, false
	}
	if sess.Expired() {
		st.Delete(id)
		return nil, false
	}
	return &sess, true
}

func (st *RedisStore) Delete(id string) {
	st.active.Clear(id)
	if err := st.client.Del(st.ctx, redisKeyPrefix+id).Err(); err != nil {
		st.logger.Warn("failed to delete session", zap.String("session", id), zap.Error(err))
	}
}

// Touch refreshes the activity timestamp and extends the key TTL. The
// redis expiry is the backstop for sessions this process never reads
// again.
func (st *RedisStore) Touch(id string) {
	sess, ok := st.Get(id)
	if !ok {
		return
	}
	sess.LastActiveAt = time.Now()
	if err := st.save(sess); err != nil {
		st.logger.Warn("failed to touch session", zap.String("session", id), zap.Error(err))
	}
}

func (st *RedisStore) MarkActive(id string)  { st.active.Mark(id) }
func (st *RedisStore) ClearActive(id string) { st.active.Clear(id) }
func (st *RedisStore) AnyActive() bool       { return st.active.Any() }

func (st *RedisStore) Close() error {
	st.cancel()
	return st.client.Close()
}
