package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/studybuddy/internal/models"
	"alfredoptarigan/studybuddy/internal/repositories"
)

const SessionCookieName = "studybuddy_session"

// SessionManager ties a SessionRepository to the session cookie.
type SessionManager struct {
	repo   repositories.SessionRepository
	ttl    time.Duration
	secure bool
}

func NewSessionManager(repo repositories.SessionRepository, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		repo:   repo,
		ttl:    ttl,
		secure: secure,
	}
}

// Load returns the caller's session or models.ErrSessionNotFound.
func (m *SessionManager) Load(c *fiber.Ctx) (*models.Session, error) {
	id := c.Cookies(SessionCookieName)
	if id == "" {
		return nil, models.ErrSessionNotFound
	}
	return m.repo.FindByID(c.UserContext(), id)
}

// LoadOrStart reuses the caller's session when there is one.
func (m *SessionManager) LoadOrStart(c *fiber.Ctx) (*models.Session, error) {
	s, err := m.Load(c)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, models.ErrSessionNotFound) {
		return nil, err
	}
	return m.Start(c)
}

// Start creates a fresh session and hands its token to the client.
func (m *SessionManager) Start(c *fiber.Ctx) (*models.Session, error) {
	s, err := m.repo.Create(c.UserContext())
	if err != nil {
		return nil, err
	}

	cookie := &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if m.ttl > 0 {
		cookie.Expires = time.Now().Add(m.ttl)
	}
	c.Cookie(cookie)

	return s, nil
}

func (m *SessionManager) Save(ctx context.Context, s *models.Session) error {
	return m.repo.Save(ctx, s)
}

// Clear forgets the caller's session on both sides.
func (m *SessionManager) Clear(c *fiber.Ctx) error {
	id := c.Cookies(SessionCookieName)
	if id == "" {
		return nil
	}

	c.ClearCookie(SessionCookieName)
	return m.repo.Delete(c.UserContext(), id)
}
