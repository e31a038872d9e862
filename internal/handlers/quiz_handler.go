package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/studybuddy/internal/models"
	"alfredoptarigan/studybuddy/internal/services"
)

type QuizHandler struct {
	sessions   *SessionManager
	studyBuddy services.StudyBuddyService
}

func NewQuizHandler(sessions *SessionManager, studyBuddy services.StudyBuddyService) *QuizHandler {
	return &QuizHandler{
		sessions:   sessions,
		studyBuddy: studyBuddy,
	}
}

func answerField(i int) string {
	return fmt.Sprintf("q%d", i)
}

// activeQuiz returns nil with no error when the visitor must upload first.
func (h *QuizHandler) activeQuiz(c *fiber.Ctx) (*models.Session, error) {
	session, err := h.sessions.Load(c)
	if errors.Is(err, models.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !session.HasQuiz() {
		return nil, nil
	}
	return session, nil
}

// HandleGetQuiz lists the questions without their answers.
func (h *QuizHandler) HandleGetQuiz(c *fiber.Ctx) error {
	session, err := h.activeQuiz(c)
	if err != nil {
		return err
	}
	if session == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	views := make([]models.QuizQuestionView, 0, len(session.Questions))
	for i, q := range session.Questions {
		views = append(views, models.QuizQuestionView{
			Field:    answerField(i),
			Question: q.Question,
			Options:  q.Options,
			Skill:    q.Skill,
		})
	}

	return c.JSON(models.QuizResponse{
		Email:     session.UserEmail,
		Skills:    session.Skills,
		Questions: views,
	})
}

// HandleSubmitQuiz reads answers from fields q0..qN-1.
func (h *QuizHandler) HandleSubmitQuiz(c *fiber.Ctx) error {
	session, err := h.activeQuiz(c)
	if err != nil {
		return err
	}
	if session == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	answers := make([]string, len(session.Questions))
	for i := range session.Questions {
		answers[i] = c.FormValue(answerField(i))
	}

	score, total, results, err := h.studyBuddy.SubmitQuiz(c.UserContext(), session, answers)
	if err != nil {
		return err
	}

	if err := h.sessions.Save(c.UserContext(), session); err != nil {
		return err
	}

	return c.JSON(models.QuizResultResponse{
		Score:   score,
		Total:   total,
		Results: results,
		Next:    "/studybuddy_result",
	})
}
