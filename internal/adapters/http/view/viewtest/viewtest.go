// Package viewtest queries rendered contact form markup the way a user sees
// it: by label text, test id, role and visible text. It is intended for use
// in tests only.
package viewtest

import (
	"regexp"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is parsed markup.
type Document struct {
	root *html.Node
}

// Parse parses an HTML document or fragment, failing the test on error.
func Parse(t testing.TB, markup string) *Document {
	t.Helper()
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parsing markup: %v", err)
	}
	return &Document{root: root}
}

// Element wraps a matched node.
type Element struct {
	node *html.Node
}

// Attr returns the named attribute, or "" when absent.
func (e Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Tag returns the element name.
func (e Element) Tag() string {
	return e.node.Data
}

// Text returns the concatenated text content.
func (e Element) Text() string {
	var b strings.Builder
	collectText(e.node, &b)
	return b.String()
}

// Value returns an input's value attribute or a textarea's content.
func (e Element) Value() string {
	if e.node.DataAtom == atom.Textarea {
		return e.Text()
	}
	return e.Attr("value")
}

// ByTestID returns all elements with data-testid=id, in document order.
func (d *Document) ByTestID(id string) []Element {
	return d.findAll(func(n *html.Node) bool {
		return attr(n, "data-testid") == id
	})
}

// ByRole returns elements with an implicit or explicit role. Only the roles
// the component uses are recognized: button, heading, textbox.
func (d *Document) ByRole(role string) []Element {
	return d.findAll(func(n *html.Node) bool {
		if r := attr(n, "role"); r != "" {
			return r == role
		}
		switch role {
		case "button":
			return n.DataAtom == atom.Button
		case "heading":
			switch n.DataAtom {
			case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				return true
			}
		case "textbox":
			if n.DataAtom == atom.Textarea {
				return true
			}
			if n.DataAtom == atom.Input {
				t := attr(n, "type")
				return t == "" || t == "text" || t == "email"
			}
		}
		return false
	})
}

// ByLabelText returns the control associated with the first label whose text
// matches pattern (case-insensitive), through the label's for attribute.
func (d *Document) ByLabelText(pattern string) (Element, bool) {
	re := regexp.MustCompile("(?i)" + pattern)
	labels := d.findAll(func(n *html.Node) bool {
		return n.DataAtom == atom.Label
	})
	for _, l := range labels {
		if !re.MatchString(l.Text()) {
			continue
		}
		target := l.Attr("for")
		if target == "" {
			continue
		}
		controls := d.findAll(func(n *html.Node) bool {
			return attr(n, "id") == target
		})
		if len(controls) > 0 {
			return controls[0], true
		}
	}
	return Element{}, false
}

// ByText returns the innermost elements whose own text content matches
// pattern (case-insensitive).
func (d *Document) ByText(pattern string) []Element {
	re := regexp.MustCompile("(?i)" + pattern)
	return d.findAll(func(n *html.Node) bool {
		if n.DataAtom == atom.Script || n.DataAtom == atom.Title {
			return false
		}
		var b strings.Builder
		collectText(n, &b)
		if !re.MatchString(b.String()) {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			var cb strings.Builder
			collectText(c, &cb)
			if re.MatchString(cb.String()) {
				return false
			}
		}
		return true
	})
}

// ByExactText returns elements whose text content equals text after trimming.
func (d *Document) ByExactText(text string) []Element {
	return d.findAll(func(n *html.Node) bool {
		if n.DataAtom == atom.Script || n.DataAtom == atom.Title {
			return false
		}
		var b strings.Builder
		collectText(n, &b)
		return strings.TrimSpace(b.String()) == text
	})
}

func (d *Document) findAll(match func(*html.Node) bool) []Element {
	var out []Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, Element{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
