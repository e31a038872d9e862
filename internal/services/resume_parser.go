package services

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
)

// ResumeParser turns an uploaded resume into plain text. ExtractText never
// fails: unsupported or broken files yield an empty string.
type ResumeParser interface {
	ExtractText(filePath string) string
}

var SupportedResumeExtensions = []string{".pdf", ".docx"}

type resumeParser struct{}

func NewResumeParser() ResumeParser {
	return &resumeParser{}
}

func (p *resumeParser) ExtractText(filePath string) string {
	if filePath == "" {
		return ""
	}

	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		text, err = extractPDFText(filePath)
	case ".docx":
		text, err = extractDocxText(filePath)
	default:
		log.Warn().Str("path", filePath).Msg("Unsupported resume type")
		return ""
	}

	if err != nil {
		log.Warn().Err(err).Str("path", filePath).Msg("Resume text extraction failed")
		return ""
	}

	return text
}

func extractPDFText(filePath string) (text string, err error) {
	// ledongthuc/pdf panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// keep going with the remaining pages
			continue
		}
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	return strings.Join(pages, " "), nil
}

var (
	xmlParagraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag          = regexp.MustCompile(`<[^>]*>`)
)

func extractDocxText(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText strips WordprocessingML markup, keeping paragraph breaks.
func docxXMLToText(content string) string {
	content = xmlParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = unescapeXML(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

var xmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescapeXML(s string) string {
	return xmlEntities.Replace(s)
}
