package seo

import (
	"strings"

	"golang.org/x/net/html"
)

const maxDescriptionLen = 160

// DescribeHTML derives a meta description from a rendered HTML fragment:
// the text of the first paragraph, stripped of markup and clipped to meta
// description length. Used when a page carries no explicit description.
func DescribeHTML(fragment string) string {
	node, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	p := findFirst(node, "p")
	if p == nil {
		return ""
	}
	text := strings.Join(strings.Fields(textOf(p)), " ")
	return clip(text, maxDescriptionLen)
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textOf(c))
	}
	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := strings.LastIndex(s[:max], " ")
	if cut <= 0 {
		cut = max
	}
	return s[:cut] + "…"
}
