package mailfile

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "p, div, li, tr, table, h1, h2, h3, h4, h5, h6, blockquote, pre, hr"

// HTMLToText converts an HTML body to plain text. Images, styles and scripts
// are dropped; links keep their text but lose the URL.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("img, style, script, head").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanLines(doc.Text()), nil
}

// cleanLines collapses runs of spaces inside each line and drops empty lines.
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
