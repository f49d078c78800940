package pipeline

// samplePage is a page as emitted by makeinfo for the GNU C manual.
const samplePage = `<!DOCTYPE html>
<html>
<!-- Created by GNU Texinfo 7.1, https://www.gnu.org/software/texinfo/ -->
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8">
<title>Hello (GNU C Language Manual)</title>
<meta name="generator" content="makeinfo">
<link href="index.html" rel="start" title="Top">
</head>

<body lang="en">
<div class="chapter-level-extent" id="Hello">
<div class="nav-panel">
<p>
Next: <a href="Lexical-Syntax.html" accesskey="n" rel="next">Lexical Syntax</a>, Previous: <a href="Preface.html" accesskey="p" rel="prev">Preface</a>, Up: <a href="index.html" accesskey="u" rel="up">GNU C Manual</a> &nbsp; [<a href="index.html#SEC_Contents" title="Table of contents" rel="contents">Contents</a>][<a href="Index.html" title="Index" rel="index">Index</a>]</p>
</div>
<hr>
<h2 class="chapter" id="Hello-1"><span>1 The First Example<a class="copiable-link" href="#Hello-1"> &para;</a></span></h2>

<div class="example">
<pre class="example-preformatted">int
main (void)
{
  printf (&quot;hello, world\n&quot;);
  return 0;
}
</pre></div>

<p>Compare <code class="code">a &lt; b</code> in prose.
</p>
</div>
</body>
</html>
`

// plainPage has neither navigation nor code blocks.
const plainPage = `<!DOCTYPE html>
<HTML>
<Head>
<TITLE>Plain</TITLE>
<script>var s = "</pre>";</script>
</HEAD>
<body>
<p class=lead>Unquoted attributes &amp; entities&nbsp;stay as written.</p>
<pre class="verbatim">not C</pre>
<!-- <div class="nav-panel"> -->
</body>
</HTML>
`
