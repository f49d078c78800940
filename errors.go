package cbeautify

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyHTML       = errors.New("HTML content cannot be empty")
	ErrInvalidSelector = errors.New("invalid CSS selector")
	ErrLexerNotFound   = errors.New("lexer not found")
	ErrNavbarRender    = errors.New("navbar template rendering failed")
	ErrWriteAsset      = errors.New("failed to write asset")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrIconNotFound     = errors.New("icon not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
