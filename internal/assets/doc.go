// Package assets provides the stylesheet, HTML templates and icons that are
// bundled into a beautified manual.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (defaults)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the beautifier. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is not
// found. This allows overriding a single asset (for example the navbar
// template) while keeping the other defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # page stylesheet (e.g., gnu-c.css)
//	├── templates/
//	│   └── {name}.html          # HTML fragments (e.g., navbar.html)
//	└── icons/
//	    └── {name}.svg           # site icons (e.g., favicon.svg)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
