package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNavbarRender is returned when the navbar template fails to execute.
var ErrNavbarRender = errors.New("navbar template rendering failed")

var (
	relAnchorSel = cascadia.MustCompile("a[rel]")
	navbarSel    = cascadia.MustCompile("nav.navbar")
)

// NavLink is one navigation link taken from a texinfo nav panel.
type NavLink struct {
	Href      string
	Rel       string
	AccessKey string
	Label     template.HTML // Rendered children of the original anchor
}

// NavbarData feeds the navbar template. Missing links are nil.
type NavbarData struct {
	Prev  *NavLink
	Up    *NavLink
	Next  *NavLink
	Extra []NavLink // contents, index
}

// NavbarRewriter defines the contract for navigation bar rewriting.
type NavbarRewriter interface {
	Rewrite(ctx context.Context, page []byte) ([]byte, Stats, error)
}

// NavbarRewriting replaces texinfo nav panels with a three-column navbar.
type NavbarRewriting struct {
	tmpl *template.Template
	sel  cascadia.Matcher
}

// NewNavbarRewriting parses the navbar template and compiles selector.
func NewNavbarRewriting(tmplContent, selector string) (*NavbarRewriting, error) {
	tmpl, err := template.New("navbar").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing navbar template: %w", err)
	}
	sel, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	return &NavbarRewriting{tmpl: tmpl, sel: sel}, nil
}

// Rewrite replaces the content of every matched panel that has at least one
// prev, up or next link. Panels already holding a nav.navbar are current.
func (r *NavbarRewriting) Rewrite(ctx context.Context, page []byte) ([]byte, Stats, error) {
	return rewriteElements(ctx, page, r.sel, func(el *Element) ([]byte, bool, error) {
		nodes, err := html.ParseFragment(bytes.NewReader(el.Inner), &html.Node{
			Type:     html.ElementNode,
			Data:     el.Node.Data,
			DataAtom: el.Node.DataAtom,
		})
		if err != nil {
			return nil, false, nil
		}

		root := &html.Node{Type: html.DocumentNode}
		for _, n := range nodes {
			root.AppendChild(n)
		}

		if cascadia.Query(root, navbarSel) != nil {
			return el.Inner, true, nil
		}

		data, ok := extractNavLinks(root)
		if !ok {
			return nil, false, nil
		}

		var buf bytes.Buffer
		if err := r.tmpl.Execute(&buf, data); err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrNavbarRender, err)
		}
		return buf.Bytes(), true, nil
	})
}

// extractNavLinks collects rel anchors under root. ok is false when none of
// prev, up and next is present.
func extractNavLinks(root *html.Node) (*NavbarData, bool) {
	data := &NavbarData{}
	for _, a := range cascadia.QueryAll(root, relAnchorSel) {
		link := NavLink{
			Href:      attr(a, "href"),
			AccessKey: attr(a, "accesskey"),
			Label:     renderChildren(a),
		}
		for _, rel := range strings.Fields(strings.ToLower(attr(a, "rel"))) {
			link.Rel = rel
			switch rel {
			case "prev", "previous":
				data.Prev = firstLink(data.Prev, link)
			case "up":
				data.Up = firstLink(data.Up, link)
			case "next":
				data.Next = firstLink(data.Next, link)
			case "contents", "index":
				data.Extra = append(data.Extra, link)
			}
		}
	}
	return data, data.Prev != nil || data.Up != nil || data.Next != nil
}

func firstLink(cur *NavLink, link NavLink) *NavLink {
	if cur != nil {
		return cur
	}
	return &link
}

// renderChildren serializes the children of n. The markup comes from the
// parsed page, so it is trusted as template.HTML.
func renderChildren(n *html.Node) template.HTML {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Script {
			continue
		}
		_ = html.Render(&buf, c)
	}
	return template.HTML(strings.TrimSpace(buf.String())) // #nosec G203 -- markup parsed from the page itself
}
