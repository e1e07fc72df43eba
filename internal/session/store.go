// Package session is the single source of truth for "who is logged in" and
// with what privileges. Token and role are persisted durably in Redis under
// fixed keys; the profile is cached in memory and refetched on bootstrap.
package session

import (
	"context"
	"sync"
	"time"

	"jobportal-gateway/internal/common/database"
	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/logger"
	"jobportal-gateway/internal/common/metrics"
	"jobportal-gateway/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "session:"
	tokenKeySuffix = ":token"
	roleKeySuffix  = ":role"
)

func tokenKey(id string) string { return tokenKeyPrefix + id + tokenKeySuffix }
func roleKey(id string) string  { return tokenKeyPrefix + id + roleKeySuffix }

// ProfileFetcher is the slice of the upstream client the store depends on.
type ProfileFetcher interface {
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
}

// Snapshot is the resolved session state handed to page handlers.
// User is non-nil only if Token is non-empty and the last profile fetch
// succeeded.
type Snapshot struct {
	Token   string          `json:"-"`
	Role    models.Role     `json:"role,omitempty"`
	User    *models.Profile `json:"user,omitempty"`
	Loading bool            `json:"loading"`
}

// LoggedIn reports whether the snapshot represents an authenticated session.
func (s *Snapshot) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

// Store manages session persistence and the cached profile per session.
type Store struct {
	redis    *database.RedisClient
	profiles ProfileFetcher
	ttl      time.Duration
	log      logger.Logger

	mu      sync.RWMutex
	cache   map[string]*models.Profile
	loading map[string]bool
}

func NewStore(rdb *database.RedisClient, profiles ProfileFetcher, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		redis:    rdb,
		profiles: profiles,
		ttl:      ttl,
		log:      log.WithFields(map[string]interface{}{"component": "session"}),
		cache:    make(map[string]*models.Profile),
		loading:  make(map[string]bool),
	}
}

// Login persists token and role under a fresh session id and fetches the
// profile. A failed profile fetch invalidates the session immediately: the
// caller never receives a session whose token the upstream rejects.
func (s *Store) Login(ctx context.Context, token string, role models.Role) (string, *Snapshot, error) {
	if !role.Valid() {
		return "", nil, apperrors.NewValidationFailedError("unknown role: " + string(role))
	}

	id := uuid.NewString()
	if err := s.redis.Set(ctx, tokenKey(id), token, s.ttl); err != nil {
		return "", nil, apperrors.NewSessionStoreFailedError(err)
	}
	if err := s.redis.Set(ctx, roleKey(id), string(role), s.ttl); err != nil {
		// Keys are cleared together; a half-written session must not survive.
		_ = s.redis.Del(ctx, tokenKey(id))
		return "", nil, apperrors.NewSessionStoreFailedError(err)
	}

	snap, err := s.fetchProfile(ctx, id, token, role)
	if err != nil {
		s.Logout(ctx, id)
		return "", nil, err
	}

	metrics.SessionsActive.Inc()
	return id, snap, nil
}

// Logout clears durable storage and the in-memory cache synchronously.
// It requires no upstream call to succeed; a Redis failure is logged and the
// local state is dropped regardless.
func (s *Store) Logout(ctx context.Context, id string) {
	if err := s.redis.Del(ctx, tokenKey(id), roleKey(id)); err != nil {
		s.log.Warn("failed to clear session keys", map[string]interface{}{
			"sessionId": id,
			"error":     err.Error(),
		})
	}

	s.mu.Lock()
	if _, ok := s.cache[id]; ok {
		metrics.SessionsActive.Dec()
	}
	delete(s.cache, id)
	delete(s.loading, id)
	s.mu.Unlock()
}

// UpdateUser replaces the cached profile without touching the token.
func (s *Store) UpdateUser(id string, profile *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache[id]; ok {
		s.cache[id] = profile
	}
}

// Bootstrap rehydrates a session from durable storage. Any failure along the
// way (missing keys, expired token, rejected profile fetch) silently degrades
// to the logged-out snapshot; pages react by redirecting to login.
func (s *Store) Bootstrap(ctx context.Context, id string) *Snapshot {
	if id == "" {
		return &Snapshot{}
	}

	token, err := s.redis.Get(ctx, tokenKey(id))
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("session token read failed", map[string]interface{}{
				"sessionId": id,
				"error":     err.Error(),
			})
		}
		return &Snapshot{}
	}
	roleStr, err := s.redis.Get(ctx, roleKey(id))
	if err != nil {
		// Token without role means a torn write; discard the whole session.
		s.Logout(ctx, id)
		return &Snapshot{}
	}
	role := models.Role(roleStr)

	// A structurally expired JWT cannot authenticate; skip the round trip.
	if tokenExpired(token) {
		s.log.Debug("stored token expired, forcing logout", map[string]interface{}{"sessionId": id})
		s.Logout(ctx, id)
		return &Snapshot{}
	}

	s.mu.RLock()
	cached := s.cache[id]
	s.mu.RUnlock()
	if cached != nil {
		return &Snapshot{Token: token, Role: role, User: cached}
	}

	snap, err := s.fetchProfile(ctx, id, token, role)
	if err != nil {
		// Invalid session: silent logout, no error surfaced to the user.
		s.Logout(ctx, id)
		return &Snapshot{}
	}
	metrics.SessionsActive.Inc()
	return snap
}

// Loading reports whether a bootstrap/login profile fetch is in flight for id.
func (s *Store) Loading(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[id]
}

func (s *Store) fetchProfile(ctx context.Context, id, token string, role models.Role) (*Snapshot, error) {
	s.mu.Lock()
	s.loading[id] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.loading, id)
		s.mu.Unlock()
	}()

	profile, err := s.profiles.GetProfile(ctx, token)
	if err != nil {
		return nil, apperrors.NewSessionExpiredError(err.Error())
	}

	s.mu.Lock()
	s.cache[id] = profile
	s.mu.Unlock()

	return &Snapshot{Token: token, Role: role, User: profile}, nil
}
