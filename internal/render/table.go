// Package render produces the markdown catalog table and its HTML preview.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinjiao007/meme-catalog/internal/meme"
)

const (
	// nbsp keeps empty cells non-empty so rendered row heights stay uniform.
	nbsp = "&nbsp;"
	// lineBreak separates values within a single table cell.
	lineBreak = "</br>"

	dateFormat = "2006-01-02"
)

// Entry pairs a module with its pre-built remote URLs.
type Entry struct {
	Module  meme.Module
	Preview string // raw image URL, empty when the module has no preview
	Link    string // browse URL of the module's source directory
}

// Options holds table rendering settings.
type Options struct {
	ImageHeight int // preview display height in pixels
}

// styleBlock pins column widths so the rendered table stays legible.
const styleBlock = `<style>
table th:nth-of-type(1) { width: 40px; }
table th:nth-of-type(2) { width: 130px; }
table th:nth-of-type(3) { width: 130px; }
table th:nth-of-type(4) { width: 60px; }
table th:nth-of-type(5) { width: 60px; }
table th:nth-of-type(6) { width: 150px; }
table th:nth-of-type(7) { width: 150px; }
table th:nth-of-type(8) { width: 90px; }
</style>`

// SortByDate orders entries by creation date, newest first. Undated entries
// sort as the zero time, placing them at the bottom. The sort is stable so
// identical input always renders identically.
func SortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return dateOf(entries[i]).After(dateOf(entries[j]))
	})
}

func dateOf(e Entry) time.Time {
	if e.Module.Info.DateCreated != nil {
		return *e.Module.Info.DateCreated
	}
	return time.Time{}
}

// Document renders the complete catalog: title, total count, the column
// width style block, and the table. Entries are sorted before rendering.
func Document(entries []Entry, opts Options) string {
	SortByDate(entries)

	var b strings.Builder
	b.WriteString("# Meme Keywords\n\n")
	fmt.Fprintf(&b, "**Total memes: %d**\n\n", len(entries))
	b.WriteString(styleBlock)
	b.WriteString("\n\n")
	b.WriteString(Table(entries, opts))
	b.WriteString("\n")
	return b.String()
}

// Table renders the GFM table body: header row, separator row with centered
// alignment markers, then one data row per entry with a 1-based index.
func Table(entries []Entry, opts Options) string {
	if opts.ImageHeight <= 0 {
		opts.ImageHeight = 50
	}

	lines := []string{
		"| # | Preview | Keywords | Images | Texts | Default Texts | Module | Created |",
		"|:--:|:----:|:------:|:---------:|:------:|:------:|:----------:|:----:|",
	}
	for i, e := range entries {
		lines = append(lines, row(i+1, e, opts))
	}
	return strings.Join(lines, "\n")
}

func row(index int, e Entry, opts Options) string {
	info := e.Module.Info

	preview := nbsp
	if e.Preview != "" {
		preview = fmt.Sprintf(`<div style="text-align:center"><img src="%s" height="%d"></div>`,
			e.Preview, opts.ImageHeight)
	}

	keywords := nbsp
	if len(info.Keywords) > 0 {
		keywords = strings.Join(info.Keywords, lineBreak)
	}

	defaults := nbsp
	if len(info.DefaultTexts) > 0 {
		texts := make([]string, len(info.DefaultTexts))
		for i, t := range info.DefaultTexts {
			texts[i] = strings.ReplaceAll(t, "\n", lineBreak)
		}
		defaults = strings.Join(texts, lineBreak)
	}

	date := nbsp
	if info.DateCreated != nil {
		date = info.DateCreated.Format(dateFormat)
	}

	return fmt.Sprintf("| %d | %s | %s | %s | %s | %s | [%s](%s) | %s |",
		index, preview, keywords,
		count(info.MinImages), count(info.MinTexts),
		defaults, e.Module.Name, e.Link, date)
}

func count(n *int) string {
	if n == nil {
		return nbsp
	}
	return fmt.Sprintf("%d", *n)
}
