package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidSelector is returned when a selector does not compile.
var ErrInvalidSelector = errors.New("invalid CSS selector")

// Stats counts what a stage did to one page.
type Stats struct {
	Matched   int // Elements (or insertion points) found
	Rewritten int // Elements whose bytes changed
	Current   int // Elements already in enhanced form
}

// Element is a matched element with its raw bytes split in three parts.
type Element struct {
	Node  *html.Node // Start tag only: no parent, no children
	Start []byte
	Inner []byte
	End   []byte
}

// Text returns the unescaped text content of the element, markup stripped.
func (e *Element) Text() string {
	var b bytes.Buffer
	z := html.NewTokenizer(bytes.NewReader(e.Inner))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// compileSelector parses a selector group into a matcher.
func compileSelector(selector string) (cascadia.Matcher, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
	}
	return sel, nil
}

// rewriteFunc returns the new inner bytes of el and true, or false to keep
// el as is. Returning bytes equal to el.Inner counts as current.
type rewriteFunc func(el *Element) ([]byte, bool, error)

// rewriteElements copies src to a new buffer, passing every top-level
// element matched by sel to fn. Elements nested in a matched element are
// part of its inner bytes and are not matched on their own. An element
// left open at end of input is copied unchanged.
func rewriteElements(ctx context.Context, src []byte, sel cascadia.Matcher, fn rewriteFunc) ([]byte, Stats, error) {
	var stats Stats
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	out := bytes.NewBuffer(make([]byte, 0, len(src)+len(src)/4))
	z := html.NewTokenizer(bytes.NewReader(src))

	var (
		cur   *Element
		inner bytes.Buffer
		depth int
	)

	for {
		tt := z.Next()
		// TagName and Token rewrite the buffer behind Raw, so copy first.
		raw := bytes.Clone(z.Raw())

		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, stats, fmt.Errorf("tokenizing page: %w", err)
			}
			if cur != nil {
				out.Write(cur.Start)
				out.Write(inner.Bytes())
			}
			out.Write(raw)
			return out.Bytes(), stats, nil
		}

		if cur == nil {
			if tt == html.StartTagToken {
				if el := matchStart(z, sel, raw); el != nil {
					cur = el
					depth = 1
					inner.Reset()
					continue
				}
			}
			out.Write(raw)
			continue
		}

		switch tt {
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == cur.Node.Data {
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == cur.Node.Data {
				depth--
			}
		}

		if depth > 0 {
			inner.Write(raw)
			continue
		}

		cur.Inner = bytes.Clone(inner.Bytes())
		cur.End = raw
		stats.Matched++

		replacement, ok, err := fn(cur)
		if err != nil {
			return nil, stats, err
		}
		out.Write(cur.Start)
		switch {
		case !ok:
			out.Write(cur.Inner)
		case bytes.Equal(replacement, cur.Inner):
			stats.Current++
			out.Write(cur.Inner)
		default:
			stats.Rewritten++
			out.Write(replacement)
		}
		out.Write(cur.End)
		cur = nil
	}
}

// matchStart builds a detached node for the current start tag and returns
// an Element when sel matches it. Void elements never match.
func matchStart(z *html.Tokenizer, sel cascadia.Matcher, raw []byte) *Element {
	tok := z.Token()
	if isVoid(tok.DataAtom) {
		return nil
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tok.Data,
		DataAtom: tok.DataAtom,
		Attr:     tok.Attr,
	}
	if !sel.Match(n) {
		return nil
	}
	return &Element{Node: n, Start: raw}
}

func isVoid(a atom.Atom) bool {
	switch a {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}

// attr returns the value of the named attribute of n.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
