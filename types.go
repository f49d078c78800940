package cbeautify

import (
	"strings"
)

// Default selectors match the markup emitted by makeinfo.
const (
	DefaultCodeSelector = "pre.example-preformatted"
	DefaultNavSelector  = "div.nav-panel, div.header"
	DefaultLexer        = "c"
)

// Input contains one page to beautify.
type Input struct {
	Name        string // Page path or name, used in error messages (optional)
	HTML        []byte // Page content (required)
	AssetPrefix string // Path from the page to the bundled assets, e.g. "../" (optional)
}

// Result holds the beautified page and what was done to it.
type Result struct {
	HTML   []byte
	Report PageReport
}

// FeatureStatus is the outcome of one enhancement on one page.
type FeatureStatus int

const (
	// StatusDisabled means the enhancement was turned off.
	StatusDisabled FeatureStatus = iota
	// StatusApplied means the page was changed.
	StatusApplied
	// StatusUnchanged means the enhancement was already present.
	StatusUnchanged
	// StatusSkipped means the page lacked the expected shape.
	StatusSkipped
)

// String returns the lowercase status name.
func (s FeatureStatus) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusApplied:
		return "applied"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// PageReport records the outcome of each enhancement for a page.
type PageReport struct {
	Stylesheet FeatureStatus
	Highlight  FeatureStatus
	Navbar     FeatureStatus

	LinksAdded int // <link> elements inserted
	CodeBlocks int // Code blocks highlighted
	Navbars    int // Navigation panels rewritten
}

// Skipped returns the names of the enhancements skipped on the page.
func (r PageReport) Skipped() []string {
	var names []string
	for _, f := range r.features() {
		if f.status == StatusSkipped {
			names = append(names, f.name)
		}
	}
	return names
}

// Changed reports whether any enhancement modified the page.
func (r PageReport) Changed() bool {
	for _, f := range r.features() {
		if f.status == StatusApplied {
			return true
		}
	}
	return false
}

// String summarizes the report as "stylesheet=applied highlight=skipped ...".
func (r PageReport) String() string {
	parts := make([]string, 0, 3)
	for _, f := range r.features() {
		parts = append(parts, f.name+"="+f.status.String())
	}
	return strings.Join(parts, " ")
}

type namedStatus struct {
	name   string
	status FeatureStatus
}

func (r PageReport) features() []namedStatus {
	return []namedStatus{
		{"stylesheet", r.Stylesheet},
		{"highlight", r.Highlight},
		{"navbar", r.Navbar},
	}
}

// Option configures a Beautifier.
type Option func(*Beautifier)

// beautifierConfig holds internal configuration for Beautifier.
type beautifierConfig struct {
	style        string // chroma style for highlights.css
	lexer        string
	codeSelector string
	navSelector  string
	stylesheet   string // bundled page stylesheet name
	assetPath    string
	highlight    bool
	navbar       bool
	icon         bool
}

func defaultConfig() beautifierConfig {
	return beautifierConfig{
		style:        DefaultHighlightStyle,
		lexer:        DefaultLexer,
		codeSelector: DefaultCodeSelector,
		navSelector:  DefaultNavSelector,
		stylesheet:   DefaultStylesheet,
		highlight:    true,
		navbar:       true,
		icon:         true,
	}
}

// WithStyle sets the chroma style used for highlights.css.
func WithStyle(name string) Option {
	return func(b *Beautifier) {
		if name != "" {
			b.cfg.style = name
		}
	}
}

// WithLexer sets the chroma lexer used on code blocks.
func WithLexer(name string) Option {
	return func(b *Beautifier) {
		if name != "" {
			b.cfg.lexer = name
		}
	}
}

// WithCodeSelector sets the selector of code blocks to highlight.
func WithCodeSelector(selector string) Option {
	return func(b *Beautifier) {
		if selector != "" {
			b.cfg.codeSelector = selector
		}
	}
}

// WithNavSelector sets the selector of navigation panels to rewrite.
func WithNavSelector(selector string) Option {
	return func(b *Beautifier) {
		if selector != "" {
			b.cfg.navSelector = selector
		}
	}
}

// WithStylesheet sets the name of the bundled page stylesheet.
func WithStylesheet(name string) Option {
	return func(b *Beautifier) {
		if name != "" {
			b.cfg.stylesheet = name
		}
	}
}

// WithAssetPath loads assets from a directory, falling back to embedded ones.
func WithAssetPath(path string) Option {
	return func(b *Beautifier) {
		b.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(b *Beautifier) {
		b.publicAssetLoader = loader
	}
}

// WithHighlight turns code highlighting on or off.
func WithHighlight(enabled bool) Option {
	return func(b *Beautifier) {
		b.cfg.highlight = enabled
	}
}

// WithNavbar turns navigation bar rewriting on or off.
func WithNavbar(enabled bool) Option {
	return func(b *Beautifier) {
		b.cfg.navbar = enabled
	}
}

// WithIcon turns favicon linking and bundling on or off.
func WithIcon(enabled bool) Option {
	return func(b *Beautifier) {
		b.cfg.icon = enabled
	}
}
