package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewRenderer mirrors GitHub's treatment of the catalog: GFM tables plus
// the raw HTML the cells embed, so the preview needs the unsafe option.
var previewRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// HTML renders the generated markdown document to a standalone HTML page
// for local inspection of how the catalog will look when rendered.
func HTML(markdown []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := previewRenderer.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Meme Keywords</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
