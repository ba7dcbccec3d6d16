// Package htmldoc is a small typed view over a parsed HTML document.
//
// Lookups return an explicit (Node, bool) pair instead of an empty selection,
// so callers must handle absence where it happens.
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Node is a single element of a Document.
type Node struct {
	sel *goquery.Selection
}

// Parse parses rawHTML into a Document.
func Parse(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse: %w", err)
	}
	return &Document{doc: doc}, nil
}

// FindFirst returns the first element in document order matching the CSS
// selector.
func (d *Document) FindFirst(selector string) (Node, bool, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return Node{}, false, fmt.Errorf("htmldoc: selector %q: %w", selector, err)
	}
	n, ok := first(d.doc.FindMatcher(m))
	return n, ok, nil
}

// FindFirstByClass returns the first tag element whose class list contains
// class.
func (d *Document) FindFirstByClass(tag, class string) (Node, bool) {
	return first(d.doc.FindMatcher(classMatcher(tag, class)))
}

// FindFirstByClass returns the first descendant tag element whose class
// list contains class.
func (n Node) FindFirstByClass(tag, class string) (Node, bool) {
	return first(n.sel.FindMatcher(classMatcher(tag, class)))
}

// FindFirstByTag returns the first descendant element named tag.
func (n Node) FindFirstByTag(tag string) (Node, bool) {
	return first(n.sel.FindMatcher(cascadia.MustCompile(tag)))
}

// FindAllByTag returns every descendant element named tag in document order.
func (n Node) FindAllByTag(tag string) []Node {
	found := n.sel.FindMatcher(cascadia.MustCompile(tag))
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, Node{sel: s})
	})
	return nodes
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the element's visible text: every descendant text node is
// trimmed and the pieces are joined without a separator.
func (n Node) Text() string {
	var b strings.Builder
	for _, el := range n.sel.Nodes {
		appendText(&b, el)
	}
	return b.String()
}

// Is reports whether n and other refer to the same element.
func (n Node) Is(other Node) bool {
	if n.sel == nil || other.sel == nil || len(n.sel.Nodes) == 0 || len(other.sel.Nodes) == 0 {
		return false
	}
	return n.sel.Nodes[0] == other.sel.Nodes[0]
}

// OuterHTML renders the element including its own tag.
func (n Node) OuterHTML() (string, error) {
	return goquery.OuterHtml(n.sel)
}

func first(s *goquery.Selection) (Node, bool) {
	if s.Length() == 0 {
		return Node{}, false
	}
	return Node{sel: s.First()}, true
}

func classMatcher(tag, class string) cascadia.Selector {
	return cascadia.Selector(func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "class" {
				for _, c := range strings.Fields(a.Val) {
					if c == class {
						return true
					}
				}
			}
		}
		return false
	})
}

func appendText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(strings.TrimSpace(n.Data))
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		fallthrough
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendText(b, c)
		}
	}
}
