package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/studybuddy/internal/models"
	"alfredoptarigan/studybuddy/internal/services"
)

type MatchHandler struct {
	sessions   *SessionManager
	studyBuddy services.StudyBuddyService
}

func NewMatchHandler(sessions *SessionManager, studyBuddy services.StudyBuddyService) *MatchHandler {
	return &MatchHandler{
		sessions:   sessions,
		studyBuddy: studyBuddy,
	}
}

// HandleGetMatch works without a session too; the matcher then falls back
// to the first roster entry.
func (h *MatchHandler) HandleGetMatch(c *fiber.Ctx) error {
	session, err := h.sessions.Load(c)
	if err != nil && !errors.Is(err, models.ErrSessionNotFound) {
		return err
	}

	return c.JSON(h.studyBuddy.FindPartner(session))
}
