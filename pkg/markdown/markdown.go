package markdown

import (
	"regexp"
	"strings"
)

var (
	headerRe     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	boldRe       = regexp.MustCompile(`\*\*([^\*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^\*]+)\*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ToPlainText strips common markdown syntax from exchange descriptions so the
// client can render them as plain paragraphs. Paragraph breaks are preserved;
// everything else (headers, links, emphasis markers) is flattened.
func ToPlainText(text string) string {
	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) == 1 {
		paragraphs = strings.Split(text, "\n")
	}

	cleaned := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		p := cleanParagraph(paragraph)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}

	return strings.Join(cleaned, "\n\n")
}

func cleanParagraph(text string) string {
	cleaned := headerRe.ReplaceAllString(text, "")
	cleaned = linkRe.ReplaceAllString(cleaned, "$1")
	cleaned = boldRe.ReplaceAllString(cleaned, "$1")
	cleaned = italicRe.ReplaceAllString(cleaned, "$1")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
