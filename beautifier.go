package cbeautify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-cbeautify/internal/assets"
	"github.com/alnah/go-cbeautify/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.LinkInjector   = (*pipeline.LinkInjection)(nil)
	_ pipeline.Highlighter    = (*pipeline.CodeHighlighter)(nil)
	_ pipeline.NavbarRewriter = (*pipeline.NavbarRewriting)(nil)
	_ assets.AssetLoader      = (*internalAdapter)(nil)
)

// Beautifier runs the rewrite pass over pages.
// Create with NewBeautifier(); a Beautifier holds no per-page state and is
// safe for concurrent use.
type Beautifier struct {
	cfg               beautifierConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	links             pipeline.LinkInjector
	highlighter       pipeline.Highlighter
	navbar            pipeline.NavbarRewriter
	linkTags          []pipeline.LinkTag
}

// internalAdapter wraps a public AssetLoader to the internal interface.
type internalAdapter struct {
	pub AssetLoader
}

func (a *internalAdapter) LoadStyle(name string) (string, error)    { return a.pub.LoadStyle(name) }
func (a *internalAdapter) LoadTemplate(name string) (string, error) { return a.pub.LoadTemplate(name) }
func (a *internalAdapter) LoadIcon(name string) (string, error)     { return a.pub.LoadIcon(name) }

// NewBeautifier creates a Beautifier with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithNavbar, WithAssetPath).
// Returns error if the style, lexer, selectors or navbar template are invalid.
func NewBeautifier(opts ...Option) (*Beautifier, error) {
	b := &Beautifier{
		cfg:         defaultConfig(),
		assetLoader: assets.NewEmbeddedLoader(),
		links:       &pipeline.LinkInjection{},
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		b.assetLoader = resolver
	}

	if b.publicAssetLoader != nil {
		b.assetLoader = &internalAdapter{pub: b.publicAssetLoader}
	}

	if _, err := lookupStyle(b.cfg.style); err != nil {
		return nil, err
	}

	if b.cfg.highlight {
		h, err := pipeline.NewCodeHighlighter(b.cfg.lexer, b.cfg.codeSelector)
		if err != nil {
			return nil, fmt.Errorf("initializing highlighter: %w", convertPipelineError(err))
		}
		b.highlighter = h
	}

	if b.cfg.navbar {
		tmpl, err := b.assetLoader.LoadTemplate(assets.NavbarTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading navbar template: %w", convertAssetError(err))
		}
		n, err := pipeline.NewNavbarRewriting(tmpl, b.cfg.navSelector)
		if err != nil {
			return nil, fmt.Errorf("initializing navbar: %w", convertPipelineError(err))
		}
		b.navbar = n
	}

	b.linkTags = []pipeline.LinkTag{{Rel: "stylesheet", Type: "text/css", Href: StylesheetFile}}
	if b.cfg.icon {
		b.linkTags = append(b.linkTags, pipeline.LinkTag{Rel: "icon", Type: "image/svg+xml", Href: IconFile})
	}

	return b, nil
}

// Beautify runs the rewrite pass over one page.
// A stage whose expected markup is missing is skipped and recorded in the
// report; only cancellation and internal failures return an error.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Beautifier) Beautify(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.HTML) == 0 {
		return nil, ErrEmptyHTML
	}

	page := input.HTML
	var report PageReport

	if b.highlighter != nil {
		out, stats, err := b.highlighter.Highlight(ctx, page)
		if err != nil {
			return nil, b.pageError(input, "highlighting code", err)
		}
		page = out
		report.Highlight = statusFor(stats)
		report.CodeBlocks = stats.Rewritten
	}

	if b.navbar != nil {
		out, stats, err := b.navbar.Rewrite(ctx, page)
		if err != nil {
			return nil, b.pageError(input, "rewriting navbar", err)
		}
		page = out
		report.Navbar = statusFor(stats)
		report.Navbars = stats.Rewritten
	}

	out, stats, err := b.links.InjectLinks(ctx, page, b.linkTagsFor(input.AssetPrefix))
	switch {
	case errors.Is(err, pipeline.ErrNoHead):
		report.Stylesheet = StatusSkipped
	case err != nil:
		return nil, b.pageError(input, "injecting links", err)
	default:
		page = out
		report.Stylesheet = statusFor(stats)
		report.LinksAdded = stats.Rewritten
	}

	return &Result{HTML: page, Report: report}, nil
}

// linkTagsFor returns the link tags with hrefs relative to a page whose
// assets live at prefix.
func (b *Beautifier) linkTagsFor(prefix string) []pipeline.LinkTag {
	if prefix == "" {
		return b.linkTags
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	tags := make([]pipeline.LinkTag, len(b.linkTags))
	for i, tag := range b.linkTags {
		tag.Href = prefix + tag.Href
		tags[i] = tag
	}
	return tags
}

// pageError wraps err with the stage and page name.
func (b *Beautifier) pageError(input Input, stage string, err error) error {
	err = convertPipelineError(err)
	if input.Name == "" {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return fmt.Errorf("%s in %s: %w", stage, input.Name, err)
}

// statusFor derives a feature status from stage counters.
func statusFor(stats pipeline.Stats) FeatureStatus {
	switch {
	case stats.Rewritten > 0:
		return StatusApplied
	case stats.Current > 0:
		return StatusUnchanged
	default:
		return StatusSkipped
	}
}

// convertPipelineError maps internal pipeline errors to public errors.
func convertPipelineError(err error) error {
	switch {
	case errors.Is(err, pipeline.ErrInvalidSelector):
		return wrapError(ErrInvalidSelector, err)
	case errors.Is(err, pipeline.ErrLexerNotFound):
		return wrapError(ErrLexerNotFound, err)
	case errors.Is(err, pipeline.ErrNavbarRender):
		return wrapError(ErrNavbarRender, err)
	default:
		return err
	}
}
