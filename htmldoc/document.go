// Package htmldoc applies the font stylesheet to HTML documents.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/fontpref/style"
)

// Document is a parsed HTML document.
type Document struct {
	doc *html.Node
}

// Open parses an HTML file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// HasStyle reports whether the font stylesheet is already present.
func (d *Document) HasStyle() bool {
	return findByID(d.doc, style.ElementID) != nil
}

// ApplyFont adds the stylesheet for family to the document head and sets
// the family inline on note-view elements and their descendants. It returns
// false without changing anything when the stylesheet is already present.
func (d *Document) ApplyFont(family string) bool {
	if d.HasStyle() {
		return false
	}

	head := findElement(d.doc, atom.Head)
	if head == nil {
		// html.Parse always creates a head; a hand-built tree may not have one.
		head = &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
		if root := findElement(d.doc, atom.Html); root != nil {
			root.InsertBefore(head, root.FirstChild)
		} else {
			d.doc.AppendChild(head)
		}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "id", Val: style.ElementID}},
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: style.Stylesheet(family)})
	head.AppendChild(el)

	for _, nv := range noteViews(d.doc) {
		setInlineFamily(nv, style.InlineValue(family))
	}
	return true
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.doc)
}

// Apply parses HTML from r, applies family and writes the result to w.
func Apply(r io.Reader, w io.Writer, family string) error {
	d, err := OpenReader(r)
	if err != nil {
		return err
	}
	d.ApplyFont(family)
	return d.Render(w)
}

// findElement finds the first element with the given tag.
func findElement(n *html.Node, tag atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tag); result != nil {
			return result
		}
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findByID(c, id); result != nil {
			return result
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// noteViews returns the outermost elements with id "note-view" or a class
// containing "note-view".
func noteViews(n *html.Node) []*html.Node {
	if n.Type == html.ElementNode &&
		(attr(n, "id") == "note-view" || strings.Contains(attr(n, "class"), "note-view")) {
		return []*html.Node{n}
	}

	var found []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, noteViews(c)...)
	}
	return found
}

// setInlineFamily appends a font-family declaration to the style attribute
// of n and every element below it.
func setInlineFamily(n *html.Node, value string) {
	if n.Type == html.ElementNode {
		decl := "font-family: " + value
		set := false
		for i, a := range n.Attr {
			if a.Key == "style" {
				if prev := strings.TrimRight(strings.TrimSpace(a.Val), ";"); prev != "" {
					n.Attr[i].Val = prev + "; " + decl
				} else {
					n.Attr[i].Val = decl
				}
				set = true
				break
			}
		}
		if !set {
			n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: decl})
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		setInlineFamily(c, value)
	}
}
