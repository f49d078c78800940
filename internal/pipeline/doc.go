// Package pipeline implements the HTML rewrite pass applied to each page
// of a makeinfo-generated manual.
//
// Pages are streamed through the golang.org/x/net/html tokenizer and every
// byte outside a rewritten region is copied verbatim, so the stages below
// never reformat markup they do not own:
//   - Link injection before </head> (stylesheet, favicon)
//   - C code highlighting inside matching <pre> elements via chroma
//   - Navigation bar rewriting of texinfo nav panels via html/template
//
// Elements are selected with cascadia selectors evaluated against the
// element's own tag and attributes. All stages are idempotent: running a
// stage over its own output yields identical bytes.
package pipeline
