package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/studybuddy/internal/models"
)

// Profile is what a successful resume upload yields.
type Profile struct {
	Email     string
	Name      string
	Skills    []string
	Questions []models.QuizQuestion
}

type StudyBuddyOptions struct {
	SkillLimit         int
	QuestionCount      int
	AllowedEmailDomain string
}

// StudyBuddyService runs the upload, quiz and match steps of one user journey.
type StudyBuddyService interface {
	ProcessResume(ctx context.Context, filePath string) (*Profile, error)
	SubmitQuiz(ctx context.Context, session *models.Session, answers []string) (int, int, []models.QuizResult, error)
	FindPartner(session *models.Session) models.MatchResult
}

type studyBuddyService struct {
	parser    ResumeParser
	detector  SkillDetector
	generator QuizGenerator
	evaluator QuizEvaluator
	matcher   PartnerMatcher
	opts      StudyBuddyOptions
}

func NewStudyBuddyService(
	parser ResumeParser,
	detector SkillDetector,
	generator QuizGenerator,
	evaluator QuizEvaluator,
	matcher PartnerMatcher,
	opts StudyBuddyOptions,
) StudyBuddyService {
	return &studyBuddyService{
		parser:    parser,
		detector:  detector,
		generator: generator,
		evaluator: evaluator,
		matcher:   matcher,
		opts:      opts,
	}
}

// ProcessResume stops at the first failing step and returns the matching
// user-facing error from models.
func (s *studyBuddyService) ProcessResume(ctx context.Context, filePath string) (*Profile, error) {
	text := s.parser.ExtractText(filePath)
	if strings.TrimSpace(text) == "" {
		return nil, models.ErrUnreadableResume
	}

	email, ok := FindEmail(text)
	if !ok {
		return nil, models.ErrNoEmailFound
	}

	if !EmailAllowed(email, s.opts.AllowedEmailDomain) {
		return nil, fmt.Errorf("%w: only %s addresses are accepted, found %s",
			models.ErrEmailDomainRejected, s.opts.AllowedEmailDomain, email)
	}

	skills := FirstSkills(s.detector.Detect(text), s.opts.SkillLimit)
	if len(skills) == 0 {
		return nil, models.ErrNoSkillsDetected
	}

	questions, err := s.generator.Generate(ctx, skills, s.opts.QuestionCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrQuizGenerationFailed, err)
	}

	profile := &Profile{
		Email:     email,
		Name:      FindName(text),
		Skills:    skills,
		Questions: questions,
	}

	log.Info().
		Str("email", profile.Email).
		Strs("skills", profile.Skills).
		Int("questions", len(profile.Questions)).
		Msg("Resume processed")

	return profile, nil
}

// SubmitQuiz scores answers against the session's quiz and records the result on it.
func (s *studyBuddyService) SubmitQuiz(ctx context.Context, session *models.Session, answers []string) (int, int, []models.QuizResult, error) {
	if !session.HasQuiz() {
		return 0, 0, nil, models.ErrNoActiveQuiz
	}

	score, total, results := s.evaluator.Evaluate(ctx, session.Questions, answers)
	session.RecordResults(score, results)
	return score, total, results, nil
}

// FindPartner matches on whatever the session holds. A nil session behaves
// like a visitor who has not uploaded anything.
func (s *studyBuddyService) FindPartner(session *models.Session) models.MatchResult {
	if session == nil {
		return s.matcher.Match(nil, nil, "")
	}
	return s.matcher.Match(session.Score, session.Skills, session.UserEmail)
}
