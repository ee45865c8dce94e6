// Package extract pulls readable article text out of fetched HTML so
// that scan mode can classify web pages the same way as pasted text.
package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Article is the readable content of a fetched page
type Article struct {
	Title string
	Text  string
}

// ExtractArticle parses HTML and returns the page title plus the
// visible body text, with scripts, styles and embedded frames skipped
func ExtractArticle(htmlContent string) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	return &Article{
		Title: extractTitle(doc),
		Text:  extractVisibleText(doc),
	}, nil
}

// extractTitle returns the content of the first <title> element
func extractTitle(doc *html.Node) string {
	var title string

	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(doc)
	return title
}

// extractVisibleText collects text nodes, skipping elements a reader
// never sees
func extractVisibleText(doc *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String())
}
