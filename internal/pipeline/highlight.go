package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrLexerNotFound is returned when no chroma lexer has the requested name.
var ErrLexerNotFound = errors.New("lexer not found")

// Highlighter defines the contract for code block highlighting.
type Highlighter interface {
	Highlight(ctx context.Context, page []byte) ([]byte, Stats, error)
}

// CodeHighlighter wraps tokens of code blocks in <span class="X"> elements,
// X being the chroma short class name of the token type.
type CodeHighlighter struct {
	lexer chroma.Lexer
	sel   cascadia.Matcher
}

// NewCodeHighlighter returns a highlighter using the named chroma lexer on
// elements matched by selector.
func NewCodeHighlighter(lexerName, selector string) (*CodeHighlighter, error) {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrLexerNotFound, lexerName)
	}
	sel, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	return &CodeHighlighter{lexer: chroma.Coalesce(lexer), sel: sel}, nil
}

// Highlight rewrites the inner content of every matched code block.
// Blocks holding only whitespace are left alone.
func (h *CodeHighlighter) Highlight(ctx context.Context, page []byte) ([]byte, Stats, error) {
	return rewriteElements(ctx, page, h.sel, func(el *Element) ([]byte, bool, error) {
		code := normalizeCode(el.Text())
		if strings.TrimSpace(code) == "" {
			return nil, false, nil
		}
		out, err := h.HighlightCode(code)
		if err != nil {
			return nil, false, err
		}
		return []byte(out), true, nil
	})
}

// HighlightCode tokenises code and returns escaped HTML where each token of
// a known class sits in exactly one span. Other tokens, and whitespace of
// any class, are plain text.
func (h *CodeHighlighter) HighlightCode(code string) (string, error) {
	it, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising code: %w", err)
	}

	var b strings.Builder
	b.Grow(len(code) * 2)
	for tok := it(); tok != chroma.EOF; tok = it() {
		class := tokenClass(tok.Type)
		core := strings.TrimSpace(tok.Value)
		if class == "" || core == "" {
			b.WriteString(html.EscapeString(tok.Value))
			continue
		}
		// Surrounding whitespace stays outside the span.
		lead := strings.Index(tok.Value, core)
		b.WriteString(html.EscapeString(tok.Value[:lead]))
		b.WriteString(`<span class="`)
		b.WriteString(class)
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(core))
		b.WriteString(`</span>`)
		b.WriteString(html.EscapeString(tok.Value[lead+len(core):]))
	}
	return b.String(), nil
}

// normalizeCode converts line endings to \n and ends the text with exactly
// one newline.
func normalizeCode(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimRight(s, "\n") + "\n"
}

// tokenClass returns the short class name for token types that are
// highlighted, or "" for punctuation, operators, plain names and whitespace.
func tokenClass(tt chroma.TokenType) string {
	switch {
	case tt.InCategory(chroma.Keyword),
		tt.InCategory(chroma.Comment),
		tt.InSubCategory(chroma.LiteralString),
		tt.InSubCategory(chroma.LiteralNumber):
	case tt == chroma.NameFunction,
		tt == chroma.NameBuiltin,
		tt == chroma.NameBuiltinPseudo,
		tt == chroma.NameLabel:
	default:
		return ""
	}
	return chroma.StandardTypes[tt]
}
