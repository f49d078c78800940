package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead is returned when a page has no </head> end tag to insert before.
var ErrNoHead = errors.New("page has no </head> tag")

// LinkTag describes a <link> element to add to the page head.
type LinkTag struct {
	Rel  string
	Type string
	Href string
}

// String renders the tag with escaped attribute values.
func (l LinkTag) String() string {
	var b strings.Builder
	b.WriteString(`<link rel="`)
	b.WriteString(html.EscapeString(l.Rel))
	b.WriteString(`"`)
	if l.Type != "" {
		b.WriteString(` type="`)
		b.WriteString(html.EscapeString(l.Type))
		b.WriteString(`"`)
	}
	b.WriteString(` href="`)
	b.WriteString(html.EscapeString(l.Href))
	b.WriteString(`">`)
	return b.String()
}

// LinkInjector defines the contract for head link injection.
type LinkInjector interface {
	InjectLinks(ctx context.Context, page []byte, links []LinkTag) ([]byte, Stats, error)
}

// LinkInjection inserts <link> elements immediately before </head>.
type LinkInjection struct{}

// InjectLinks inserts each link whose href is not already used by a <link>
// element of the page, one per line, before the first </head>.
// Returns ErrNoHead when the page has no </head>.
func (l *LinkInjection) InjectLinks(ctx context.Context, page []byte, links []LinkTag) ([]byte, Stats, error) {
	var stats Stats
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	if len(links) == 0 {
		return page, stats, nil
	}

	headEnd, present, err := scanHead(page)
	if err != nil {
		return nil, stats, err
	}
	if headEnd < 0 {
		return page, stats, ErrNoHead
	}

	var add bytes.Buffer
	for _, link := range links {
		stats.Matched++
		if present[link.Href] {
			stats.Current++
			continue
		}
		present[link.Href] = true
		add.WriteString(link.String())
		add.WriteByte('\n')
		stats.Rewritten++
	}
	if add.Len() == 0 {
		return page, stats, nil
	}

	out := make([]byte, 0, len(page)+add.Len())
	out = append(out, page[:headEnd]...)
	out = append(out, add.Bytes()...)
	out = append(out, page[headEnd:]...)
	return out, stats, nil
}

// scanHead returns the byte offset of the first </head> end tag (-1 if
// none) and the set of hrefs used by <link> elements anywhere in page.
func scanHead(page []byte) (int, map[string]bool, error) {
	present := make(map[string]bool)
	headEnd := -1
	offset := 0

	z := html.NewTokenizer(bytes.NewReader(page))
	for {
		tt := z.Next()
		size := len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return -1, nil, fmt.Errorf("tokenizing page: %w", err)
			}
			return headEnd, present, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Link {
				for _, a := range tok.Attr {
					if a.Key == "href" {
						present[a.Val] = true
					}
				}
			}
		case html.EndTagToken:
			if headEnd < 0 {
				if name, _ := z.TagName(); atom.Lookup(name) == atom.Head {
					headEnd = offset
				}
			}
		}
		offset += size
	}
}
