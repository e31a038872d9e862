package models

import "errors"

// User-facing failures of the upload and quiz flow. Each one sends the
// visitor back to the upload step.
var (
	ErrNoFileUploaded       = errors.New("please upload a PDF or DOCX resume")
	ErrFileTooLarge         = errors.New("resume file is too large")
	ErrUnreadableResume     = errors.New("could not extract text from resume")
	ErrNoEmailFound         = errors.New("no email found in resume")
	ErrEmailDomainRejected  = errors.New("email domain not allowed")
	ErrNoSkillsDetected     = errors.New("no skills detected in resume")
	ErrQuizGenerationFailed = errors.New("could not generate quiz questions")
	ErrNoActiveQuiz         = errors.New("upload your resume first")

	ErrSessionNotFound = errors.New("session not found")
)
