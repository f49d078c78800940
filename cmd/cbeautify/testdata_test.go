package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// chapterPage is a chapter page as generated by makeinfo.
const chapterPage = `<!DOCTYPE html>
<html>
<head>
<title>Hello (GNU C Language Manual)</title>
</head>
<body lang="en">
<div class="nav-panel">
<p>
Next: <a href="Lexical-Syntax.html" accesskey="n" rel="next">Lexical Syntax</a>, Up: <a href="index.html" accesskey="u" rel="up">GNU C Manual</a></p>
</div>
<pre class="example-preformatted">int main(void) { return 0; }
</pre>
</body>
</html>
`

// indexPage has a head but neither navigation nor code.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<title>GNU C Language Manual</title>
</head>
<body>
<p>Top</p>
</body>
</html>
`

// writeSite creates a generated manual under a temp dir and returns its path.
func writeSite(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "c.html.d")
	files := map[string]string{
		"index.html":            indexPage,
		"Hello.html":            chapterPage,
		"sub/Lexical.html":      chapterPage,
		"images/ignored.png":    "PNG",
		"sub/notes-not-html.md": "# md",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return dir
}

// linkHref returns the href of the first <link> whose href ends in asset.
func linkHref(page, asset string) (string, bool) {
	for _, part := range strings.Split(page, "<link ")[1:] {
		_, rest, ok := strings.Cut(part, `href="`)
		if !ok {
			continue
		}
		href, _, _ := strings.Cut(rest, `"`)
		if strings.HasSuffix(href, asset) {
			return href, true
		}
	}
	return "", false
}

// testEnv returns an Environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}
