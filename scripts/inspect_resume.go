package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"alfredoptarigan/studybuddy/internal/config"
	"alfredoptarigan/studybuddy/internal/repositories"
	"alfredoptarigan/studybuddy/internal/services"
)

var (
	skillLimit    int
	questionCount int
	withQuiz      bool
	withMatch     bool
)

type report struct {
	File         string   `json:"file"`
	Characters   int      `json:"characters"`
	Email        string   `json:"email"`
	EmailAllowed bool     `json:"email_allowed"`
	Name         string   `json:"name"`
	Skills       []string `json:"skills"`
	AllSkills    []string `json:"all_skills"`
	Quiz         any      `json:"quiz,omitempty"`
	QuizError    string   `json:"quiz_error,omitempty"`
	Match        any      `json:"match,omitempty"`
	Scorer       string   `json:"scorer,omitempty"`
}

var rootCmd = &cobra.Command{
	Use:   "inspect_resume <resume.pdf|resume.docx>",
	Short: "Run resume extraction and skill detection on a local file",
	Long: `Extracts text from a resume, finds the email and name, detects skills and
optionally asks the configured LLM for a quiz.

Example:
  go run ./scripts/inspect_resume.go resume.pdf
  go run ./scripts/inspect_resume.go resume.docx --quiz --questions 3
  go run ./scripts/inspect_resume.go resume.pdf --match`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.Flags().IntVar(&skillLimit, "skills", 3, "Number of detected skills to keep")
	rootCmd.Flags().IntVar(&questionCount, "questions", 5, "Number of quiz questions to request")
	rootCmd.Flags().BoolVar(&withQuiz, "quiz", false, "Also generate a quiz with the configured LLM provider")
	rootCmd.Flags().BoolVar(&withMatch, "match", false, "Also suggest a study partner from the roster")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	path := args[0]

	text := services.NewResumeParser().ExtractText(path)
	if text == "" {
		return fmt.Errorf("no text could be extracted from %s", path)
	}

	all := services.NewSkillDetector().Detect(text)
	email, _ := services.FindEmail(text)

	out := report{
		File:         path,
		Characters:   len(text),
		Email:        email,
		EmailAllowed: email != "" && services.EmailAllowed(email, cfg.Quiz.AllowedEmailDomain),
		Name:         services.FindName(text),
		Skills:       services.FirstSkills(all, skillLimit),
		AllSkills:    all,
	}

	if withQuiz && len(out.Skills) > 0 {
		chat, err := services.NewChatClient(cmd.Context(), cfg.LLM)
		if err != nil {
			return fmt.Errorf("failed to initialize LLM client: %w", err)
		}

		questions, err := services.NewQuizGenerator(chat).Generate(cmd.Context(), out.Skills, questionCount)
		if err != nil {
			out.QuizError = err.Error()
		} else {
			out.Quiz = questions
		}
	}

	if withMatch {
		roster, err := repositories.NewRosterRepository(cfg.Matcher.RosterPath)
		if err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		scorer, err := services.NewSimilarityScorer(cfg.Matcher.SimilarityMode)
		if err != nil {
			return err
		}
		out.Scorer = scorer.Name()
		out.Match = services.NewPartnerMatcher(roster, scorer).Match(nil, out.Skills, email)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
