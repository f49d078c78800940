package main

import (
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cbeautify/internal/fileutil"
)

// PageToBeautify represents a single page to process.
type PageToBeautify struct {
	InputPath   string
	OutputPath  string
	AssetPrefix string // "../" per directory level below the output root
}

// isPage reports whether path names an HTML page.
func isPage(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ".html") || strings.EqualFold(ext, ".htm")
}

// discoverPages finds all HTML pages under inputDir, in lexical order.
// Each output path keeps the page's location relative to inputDir. When
// outputDir lies inside inputDir it is not walked.
func discoverPages(inputDir, outputDir string) ([]PageToBeautify, error) {
	inPlace := fileutil.SamePath(inputDir, outputDir)

	var pages []PageToBeautify
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputDir && !inPlace && fileutil.SamePath(path, outputDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isPage(path) {
			return nil
		}
		pages = append(pages, PageToBeautify{
			InputPath:   path,
			OutputPath:  resolveOutputPath(path, inputDir, outputDir),
			AssetPrefix: assetPrefix(path, inputDir),
		})
		return nil
	})

	return pages, err
}

// resolveOutputPath maps a page under inputDir to the same place under outputDir.
func resolveOutputPath(path, inputDir, outputDir string) string {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil {
		return filepath.Join(outputDir, filepath.Base(path))
	}
	return filepath.Join(outputDir, rel)
}

// assetPrefix returns the relative path from a page under inputDir back to
// the root, where the bundled assets are written.
func assetPrefix(path, inputDir string) string {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil {
		return ""
	}
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		return ""
	}
	return strings.Repeat("../", strings.Count(dir, "/")+1)
}

// indexURI returns the file:// URI of the index page in outputDir.
func indexURI(outputDir string) string {
	index := filepath.Join(outputDir, "index.html")
	if abs, err := filepath.Abs(index); err == nil {
		index = abs
	}
	p := filepath.ToSlash(index)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letter
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
