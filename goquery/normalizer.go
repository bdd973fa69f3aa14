// Package goquery provides a goquery-based implementation of
// pagesift.Normalizer. It strips non-content markup from a page and
// returns line-trimmed plain text in reading order.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
	"golang.org/x/net/html"
)

// nonContentSelector matches elements that never contribute visible
// page text.
const nonContentSelector = "script, style, noscript, template, iframe, svg, head"

// blockTags are elements that start a new line of output.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

// Ensure Normalizer implements pagesift.Normalizer at compile time.
var _ pagesift.Normalizer = (*Normalizer)(nil)

// Normalizer extracts visible body text from raw HTML. This is the
// default normalizer; for noisy pages with heavy boilerplate see the
// trafilatura package.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the visible text of the markup, one trimmed line
// per block element, with empty lines dropped.
func (n *Normalizer) Normalize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagesift.Errorf(pagesift.EINVALID, "empty markup")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(nonContentSelector).Remove()

	root := doc.Selection
	if body := doc.Find("body"); body.Length() > 0 {
		root = body
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		collectText(&sb, node)
	}

	text := collapseLines(sb.String())
	if text == "" {
		return "", pagesift.Errorf(pagesift.EINVALID, "markup contains no text content")
	}
	return text, nil
}

// collectText walks the node tree in document order, inserting line
// breaks around block elements.
func collectText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	isBlock := n.Type == html.ElementNode && blockTags[n.Data]
	if isBlock {
		sb.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(sb, c)
	}
	if isBlock {
		sb.WriteByte('\n')
	}
}

// collapseLines trims every line, collapses runs of inline whitespace,
// and drops blank lines.
func collapseLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.Join(fields, " "))
	}
	return strings.Join(lines, "\n")
}
