// Package cli provides the command-line interface for meme-catalog.
// This file re-exports internal packages for embedding in other tools.
package cli

import (
	"github.com/jinjiao007/meme-catalog/internal/catalog"
	"github.com/jinjiao007/meme-catalog/internal/meme"
	"github.com/jinjiao007/meme-catalog/internal/preview"
	"github.com/jinjiao007/meme-catalog/internal/render"
)

// Re-export pipeline types
type (
	MemeInfo    = meme.Info
	MemeModule  = meme.Module
	TableEntry  = render.Entry
	TableOption = render.Options
)

// Re-export pipeline functions
var (
	Generate = catalog.Generate
	Scan     = catalog.Scan

	Extract = meme.Extract

	FindPreview = preview.Find
	RawURL      = preview.RawURL
	TreeURL     = preview.TreeURL

	RenderDocument = render.Document
	RenderTable    = render.Table
	RenderHTML     = render.HTML
	SortByDate     = render.SortByDate
)
