// Package cbeautify post-processes the HTML pages that makeinfo generates
// for the GNU C Language manual.
//
// # Quick Start
//
// Create a beautifier and run it over a page:
//
//	b, err := cbeautify.NewBeautifier()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Beautify(ctx, cbeautify.Input{
//	    Name: "Hello.html",
//	    HTML: page,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("docs/Hello.html", result.HTML, 0644)
//
// Result.Report tells which enhancements were applied, already present or
// skipped because the page lacked the expected shape.
//
// # Rewrite Pass
//
// Each page goes through these stages:
//
//  1. C code highlighting of pre.example-preformatted blocks (chroma)
//  2. Navigation panel rewriting into a three-column navbar
//  3. Stylesheet and favicon <link> injection before </head>
//
// Bytes outside the rewritten regions are copied unchanged, and running the
// pass twice gives the same page as running it once.
//
// # Stylesheets
//
// HighlightCSS renders the rules of a chroma style scoped under the code
// selector. BundleAssets writes styles.css, highlights.css and favicon.svg
// next to the pages:
//
//	written, err := b.BundleAssets(ctx, "docs")
//
// # Configuration
//
// Use functional options to customize the beautifier:
//
//	b, err := cbeautify.NewBeautifier(
//	    cbeautify.WithStyle("monokai"),
//	    cbeautify.WithNavbar(false),
//	    cbeautify.WithAssetPath("/path/to/custom/assets"),
//	)
//
// # Custom Assets
//
// Override the bundled stylesheet, navbar template or icon with a directory:
//
//	assets/
//	├── styles/
//	│   └── gnu-c.css
//	├── templates/
//	│   └── navbar.html
//	└── icons/
//	    └── favicon.svg
//
// Missing files fall back to the embedded defaults.
package cbeautify
