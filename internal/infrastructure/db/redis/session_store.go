package redis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	defaultIdleTimeout = 30 * time.Minute
	defaultMaxLifetime = 12 * time.Hour

	// expiresField holds the absolute deadline (unix seconds) inside the
	// session hash. Session values may not use this name.
	expiresField = "_exp"
)

var ErrUnsupportedValue = errors.New("session values must be string keys and string values")

// Private Values keys carried between New and Save. They never reach Redis.
type (
	deadlineKey struct{}
	loadedIDKey struct{}
)

// SessionStoreConfig configures a SessionStore. Zero durations fall back to a
// 30 minute idle timeout and a 12 hour lifetime.
type SessionStoreConfig struct {
	Secret      []byte
	IdleTimeout time.Duration
	MaxLifetime time.Duration
	Cookie      sessions.Options
}

// SessionStore is a gorilla sessions.Store keeping session values in Redis.
//
// Key format: session:<uuid>, a hash of string values plus the deadline.
// The cookie holds an HS256 token whose jti is the session id and whose exp is
// the absolute deadline. Every load slides the idle expiry forward without
// passing the deadline.
type SessionStore struct {
	client  redis.UniversalClient
	secret  []byte
	idle    time.Duration
	maxLife time.Duration
	Options *sessions.Options

	now func() time.Time
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client redis.UniversalClient, cfg SessionStoreConfig) *SessionStore {
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	maxLife := cfg.MaxLifetime
	if maxLife <= 0 {
		maxLife = defaultMaxLifetime
	}
	opts := cfg.Cookie
	if opts.Path == "" {
		opts.Path = "/"
	}

	return &SessionStore{
		client:  client,
		secret:  cfg.Secret,
		idle:    idle,
		maxLife: maxLife,
		Options: &opts,
		now:     time.Now,
	}
}

// Get returns the session registered for this request, loading it once.
func (s *SessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. A missing, forged or
// expired cookie yields a fresh session and no error; only a Redis failure is
// reported, alongside a usable fresh session.
func (s *SessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	id, err := s.parseToken(c.Value)
	if err != nil {
		return session, nil
	}

	values, deadline, found, err := s.load(r.Context(), id)
	if err != nil {
		return session, err
	}
	if !found {
		return session, nil
	}

	for k, v := range values {
		session.Values[k] = v
	}
	session.Values[deadlineKey{}] = deadline
	session.Values[loadedIDKey{}] = id
	session.ID = id
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes its cookie. A negative MaxAge deletes
// the session and expires the cookie. Clearing session.ID before saving moves
// the values to a new id and drops the old one.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	ctx := r.Context()
	previous, _ := session.Values[loadedIDKey{}].(string)
	if session.Options == nil {
		opts := *s.Options
		session.Options = &opts
	}

	if session.Options.MaxAge < 0 {
		if err := s.erase(ctx, previous, session.ID); err != nil {
			return err
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	fields, err := encodeValues(session.Values)
	if err != nil {
		return err
	}

	now := s.now()
	deadline, ok := session.Values[deadlineKey{}].(time.Time)
	if session.ID == "" || !ok {
		session.ID = uuid.NewString()
		deadline = now.Add(s.maxLife)
	}
	ttl := s.ttl(now, deadline)
	if ttl <= 0 {
		// past the absolute lifetime; the next request starts over
		session.Options.MaxAge = -1
		return s.Save(r, w, session)
	}
	fields[expiresField] = strconv.FormatInt(deadline.Unix(), 10)

	key := sessionKey(session.ID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if previous != "" && previous != session.ID {
			pipe.Del(ctx, sessionKey(previous))
		}
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	token, err := s.signToken(session.ID, now, deadline)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), token, session.Options))

	session.Values[deadlineKey{}] = deadline
	session.Values[loadedIDKey{}] = session.ID
	session.IsNew = false
	return nil
}

func (s *SessionStore) load(ctx context.Context, id string) (map[string]string, time.Time, bool, error) {
	key := sessionKey(id)
	raw, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("session load: %w", err)
	}
	if len(raw) == 0 {
		return nil, time.Time{}, false, nil
	}

	unix, err := strconv.ParseInt(raw[expiresField], 10, 64)
	if err != nil {
		return nil, time.Time{}, false, nil
	}
	deadline := time.Unix(unix, 0)

	ttl := s.ttl(s.now(), deadline)
	if ttl <= 0 {
		return nil, time.Time{}, false, nil
	}
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("session touch: %w", err)
	}

	delete(raw, expiresField)
	return raw, deadline, true, nil
}

func (s *SessionStore) erase(ctx context.Context, ids ...string) error {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			keys = append(keys, sessionKey(id))
		}
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

// ttl is the idle timeout, capped by the time left before the deadline.
func (s *SessionStore) ttl(now, deadline time.Time) time.Duration {
	left := deadline.Sub(now)
	if left < s.idle {
		return left
	}
	return s.idle
}

func (s *SessionStore) signToken(id string, now, deadline time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(deadline),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("session sign: %w", err)
	}
	return signed, nil
}

func (s *SessionStore) parseToken(value string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return claims.ID, nil
}

func encodeValues(values map[any]any) (map[string]any, error) {
	fields := make(map[string]any, len(values)+1)
	for k, v := range values {
		switch k.(type) {
		case deadlineKey, loadedIDKey:
			continue
		}
		key, ok := k.(string)
		if !ok || key == expiresField {
			return nil, fmt.Errorf("%w: key %v", ErrUnsupportedValue, k)
		}
		val, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: value of %q", ErrUnsupportedValue, key)
		}
		fields[key] = val
	}
	return fields, nil
}

func sessionKey(id string) string {
	return "session:" + id
}
