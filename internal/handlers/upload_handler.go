package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/studybuddy/internal/models"
	"alfredoptarigan/studybuddy/internal/services"
)

type UploadHandler struct {
	sessions       *SessionManager
	storageService services.StorageService
	studyBuddy     services.StudyBuddyService
}

func NewUploadHandler(
	sessions *SessionManager,
	storageService services.StorageService,
	studyBuddy services.StudyBuddyService,
) *UploadHandler {
	return &UploadHandler{
		sessions:       sessions,
		storageService: storageService,
		studyBuddy:     studyBuddy,
	}
}

// HandleLanding starts every visit from a clean slate.
func (h *UploadHandler) HandleLanding(c *fiber.Ctx) error {
	if err := h.sessions.Clear(c); err != nil {
		log.Warn().Err(err).Msg("Failed to clear session")
	}

	return c.JSON(fiber.Map{
		"message": "StudyBuddy API",
		"version": "1.0.0",
		"upload":  "POST / (multipart field 'resume', PDF or DOCX)",
		"endpoints": []string{
			"POST /",
			"GET /quiz",
			"POST /quiz",
			"GET /studybuddy_result",
			"GET /health",
		},
	})
}

func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return reject(c, models.ErrNoFileUploaded)
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return reject(c, err)
	}
	log.Info().Str("file", filename).Int64("size", file.Size).Msg("Resume stored")

	profile, err := h.studyBuddy.ProcessResume(c.UserContext(), filePath)
	if err != nil {
		return reject(c, err)
	}

	session, err := h.sessions.LoadOrStart(c)
	if err != nil {
		return err
	}

	session.Reset()
	session.UserEmail = profile.Email
	session.UserName = profile.Name
	session.Skills = profile.Skills
	session.Questions = profile.Questions
	session.UpdatedAt = time.Now()

	if err := h.sessions.Save(c.UserContext(), session); err != nil {
		return err
	}

	c.Location("/quiz")
	return c.Status(fiber.StatusSeeOther).JSON(models.UploadResponse{
		Email:         profile.Email,
		Name:          profile.Name,
		Skills:        profile.Skills,
		QuestionCount: len(profile.Questions),
		Next:          "/quiz",
	})
}
