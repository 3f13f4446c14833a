// Package htmldoc converts local HTML files into markdown suitable
// for analysis, extracting the main article body when one can be
// identified.
package htmldoc

import (
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

type Document struct {
	Markdown string
	Title    string
}

// localBase anchors relative links during article extraction; no
// network request is ever made.
var localBase = &url.URL{Scheme: "http", Host: "localhost", Path: "/"}

// FromHTML extracts the article body and title from raw HTML and
// converts the body to markdown. When readability cannot identify an
// article the whole document body is converted instead.
func FromHTML(rawHTML string) (Document, error) {
	doc := Document{
		Title: normalizeTitle(extractTitle(rawHTML)),
	}

	body := rawHTML
	if article, err := readability.FromReader(strings.NewReader(rawHTML), localBase); err == nil {
		if content := strings.TrimSpace(article.Content); content != "" {
			body = content
		}
		if title := strings.TrimSpace(article.Title); title != "" {
			doc.Title = normalizeTitle(title)
		}
	}

	markdownText, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return Document{}, fmt.Errorf("convert HTML to markdown: %w", err)
	}

	markdownText = strings.ReplaceAll(markdownText, "\r\n", "\n")
	doc.Markdown = strings.TrimSpace(markdownText)

	return doc, nil
}

func extractTitle(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var walk func(*html.Node) string
	walk = func(node *html.Node) string {
		if node.Type == html.ElementNode && node.Data == "title" {
			return strings.TrimSpace(extractNodeText(node))
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if title := walk(child); title != "" {
				return title
			}
		}
		return ""
	}

	return walk(doc)
}

func extractNodeText(node *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	walk(node)
	return b.String()
}

func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}
