package cbeautify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-cbeautify/internal/assets"
	"github.com/alnah/go-cbeautify/internal/fileutil"
)

// DefaultHighlightStyle is the chroma style used when none is given.
const DefaultHighlightStyle = "pygments"

// File permission constants for bundled assets.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// chromaScope matches the ".chroma" wrapper class chroma puts in front of
// every rule, with the token class that follows it, if any.
var chromaScope = regexp.MustCompile(`\.chroma((?: \.[\w-]+)?)`)

// HighlightStyles returns the names of the available chroma styles, sorted.
func HighlightStyles() []string {
	return styles.Names()
}

// lookupStyle returns the named chroma style or ErrStyleNotFound.
func lookupStyle(name string) (*chroma.Style, error) {
	s, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return s, nil
}

// HighlightCSS renders CSS rules for every token class of the named chroma
// style. Rules are scoped under each selector of scope, so that
// "pre.example-preformatted" yields "pre.example-preformatted .k { ... }".
// Returns ErrStyleNotFound for unknown styles.
func HighlightCSS(style, scope string) (string, error) {
	s, err := lookupStyle(style)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, s); err != nil {
		return "", fmt.Errorf("writing %s styles: %w", style, err)
	}

	scopes := splitSelectorGroup(scope)
	var out strings.Builder
	fmt.Fprintf(&out, "/* Generated from the %s chroma style. */\n", s.Name)
	for _, line := range strings.Split(buf.String(), "\n") {
		// Rules outside the .chroma wrapper (the standalone .bg class) do
		// not apply to code blocks.
		if !chromaScope.MatchString(line) {
			continue
		}
		line = chromaScope.ReplaceAllStringFunc(line, func(m string) string {
			suffix := chromaScope.FindStringSubmatch(m)[1]
			sels := make([]string, len(scopes))
			for i, sc := range scopes {
				sels[i] = sc + suffix
			}
			return strings.Join(sels, ", ")
		})
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// splitSelectorGroup splits "a, b" into its trimmed members.
func splitSelectorGroup(group string) []string {
	parts := strings.Split(group, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HighlightCSS renders the configured style scoped under the code selector.
func (b *Beautifier) HighlightCSS() (string, error) {
	return HighlightCSS(b.cfg.style, b.cfg.codeSelector)
}

// WriteHighlightCSS writes highlights.css into dir, creating dir if needed.
// Returns the path written.
func (b *Beautifier) WriteHighlightCSS(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	css, err := b.HighlightCSS()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrWriteAsset, dir, err)
	}
	return writeAsset(dir, HighlightsFile, css)
}

// BundleAssets writes the page stylesheet, highlights.css and, when the icon
// is enabled, favicon.svg into dir. Files are replaced atomically.
// Returns the paths written, in that order.
func (b *Beautifier) BundleAssets(ctx context.Context, dir string) ([]string, error) {
	type asset struct {
		file string
		load func() (string, error)
	}
	bundle := []asset{
		{StylesheetFile, func() (string, error) {
			css, err := b.assetLoader.LoadStyle(b.cfg.stylesheet)
			return css, convertAssetError(err)
		}},
		{HighlightsFile, b.HighlightCSS},
	}
	if b.cfg.icon {
		bundle = append(bundle, asset{IconFile, func() (string, error) {
			svg, err := b.assetLoader.LoadIcon(assets.DefaultIconName)
			return svg, convertAssetError(err)
		}})
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrWriteAsset, dir, err)
	}

	written := make([]string, 0, len(bundle))
	for _, a := range bundle {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		content, err := a.load()
		if err != nil {
			return written, fmt.Errorf("loading %s: %w", a.file, err)
		}
		path, err := writeAsset(dir, a.file, content)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeAsset(dir, file, content string) (string, error) {
	path := filepath.Join(dir, file)
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteAsset, path, err)
	}
	return path, nil
}
