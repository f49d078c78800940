package cbeautify_test

// manualPage is a chapter page as generated by makeinfo.
const manualPage = `<!DOCTYPE html>
<html>
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8">
<title>Hello (GNU C Language Manual)</title>
</head>

<body lang="en">
<div class="nav-panel">
<p>
Next: <a href="Lexical-Syntax.html" accesskey="n" rel="next">Lexical Syntax</a>, Previous: <a href="Preface.html" accesskey="p" rel="prev">Preface</a>, Up: <a href="index.html" accesskey="u" rel="up">GNU C Manual</a> &nbsp; [<a href="index.html#SEC_Contents" title="Table of contents" rel="contents">Contents</a>]</p>
</div>
<h2 class="chapter" id="Hello-1">1 The First Example</h2>
<pre class="example-preformatted">int main(void) { return 0; }
</pre>
</body>
</html>
`

// bareHead has a head but neither navigation nor code.
const bareHead = `<!DOCTYPE html>
<html>
<head>
<title>Index</title>
</head>
<body>
<p>Nothing to enhance &amp; nothing to move.</p>
</body>
</html>
`
