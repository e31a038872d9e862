package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"alfredoptarigan/studybuddy/internal/models"
)

// SessionRepository stores per-visitor state keyed by an opaque token.
type SessionRepository interface {
	Create(ctx context.Context) (*models.Session, error)
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}

func newSession() *models.Session {
	now := time.Now()
	return &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create implements SessionRepository.
func (m *memorySessionRepository) Create(ctx context.Context) (*models.Session, error) {
	s := newSession()
	if err := m.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FindByID implements SessionRepository.
func (m *memorySessionRepository) FindByID(_ context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || m.expired(entry) {
		return nil, models.ErrSessionNotFound
	}

	var s models.Session
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

// Save implements SessionRepository. Stored sessions are snapshots, so
// later changes to the caller's struct are not visible until saved again.
func (m *memorySessionRepository) Save(_ context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	entry := memoryEntry{data: data}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.sessions[session.ID] = entry
	return nil
}

// Delete implements SessionRepository.
func (m *memorySessionRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

func (m *memorySessionRepository) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && m.now().After(e.expiresAt)
}

func (m *memorySessionRepository) pruneLocked() {
	for id, e := range m.sessions {
		if m.expired(e) {
			delete(m.sessions, id)
		}
	}
}

const sessionKeyPrefix = "studybuddy:session:"

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create implements SessionRepository.
func (r *redisSessionRepository) Create(ctx context.Context) (*models.Session, error) {
	s := newSession()
	if err := r.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FindByID implements SessionRepository.
func (r *redisSessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	b, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s models.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

// Save implements SessionRepository.
func (r *redisSessionRepository) Save(ctx context.Context, session *models.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete implements SessionRepository.
func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
