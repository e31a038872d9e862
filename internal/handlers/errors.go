package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/studybuddy/internal/models"
)

type rejection struct {
	err    error
	kind   string
	status int
}

var rejections = []rejection{
	{models.ErrNoFileUploaded, "no_file_uploaded", fiber.StatusBadRequest},
	{models.ErrFileTooLarge, "file_too_large", fiber.StatusRequestEntityTooLarge},
	{models.ErrUnreadableResume, "unreadable_resume", fiber.StatusUnprocessableEntity},
	{models.ErrNoEmailFound, "no_email_found", fiber.StatusUnprocessableEntity},
	{models.ErrEmailDomainRejected, "email_domain_rejected", fiber.StatusForbidden},
	{models.ErrNoSkillsDetected, "no_skills_detected", fiber.StatusUnprocessableEntity},
	{models.ErrQuizGenerationFailed, "quiz_generation_failed", fiber.StatusBadGateway},
}

// reject sends the visitor back to the upload step. Errors outside the
// user-facing set go to the app's error handler.
func reject(c *fiber.Ctx, err error) error {
	for _, r := range rejections {
		if !errors.Is(err, r.err) {
			continue
		}

		message := r.err.Error()
		if r.err == models.ErrEmailDomainRejected {
			message = err.Error()
		}

		log.Warn().Err(err).Str("kind", r.kind).Msg("Upload rejected")
		return c.Status(r.status).JSON(models.RejectionResponse{
			Error:    message,
			Kind:     r.kind,
			Redirect: "/",
		})
	}

	return err
}
