// Package catalog orchestrates the scan-extract-render pipeline.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinjiao007/meme-catalog/internal/config"
	"github.com/jinjiao007/meme-catalog/internal/meme"
	"github.com/jinjiao007/meme-catalog/internal/preview"
	"github.com/jinjiao007/meme-catalog/internal/render"
)

// declFile is the declaration file expected in each module directory.
const declFile = "init.lua"

// Generate scans the configured memes directory, extracts each module's
// metadata, and writes the rendered catalog to the configured output file.
// A module that fails to parse is logged and skipped; a missing or
// unreadable memes directory is fatal.
func Generate(cfg *config.Config) error {
	entries, err := Scan(cfg)
	if err != nil {
		return err
	}

	doc := render.Document(entries, render.Options{ImageHeight: cfg.Render.ImageHeight})

	if dir := filepath.Dir(cfg.Paths.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Paths.Output, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Paths.Output, err)
	}
	cfg.Log(1, "wrote %s (%d memes)", cfg.Paths.Output, len(entries))

	if cfg.Render.HTML {
		page, err := render.HTML([]byte(doc))
		if err != nil {
			return err
		}
		htmlPath := previewPath(cfg.Paths.Output)
		if err := os.WriteFile(htmlPath, page, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", htmlPath, err)
		}
		cfg.Log(1, "wrote %s", htmlPath)
	}

	return nil
}

// Scan lists the memes directory and builds one render entry per module
// whose declaration file parses and contains a registration call.
func Scan(cfg *config.Config) ([]render.Entry, error) {
	dirs, err := os.ReadDir(cfg.Paths.MemesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read memes directory %s: %w", cfg.Paths.MemesDir, err)
	}

	entries := []render.Entry{}
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		name := dir.Name()
		moduleDir := filepath.Join(cfg.Paths.MemesDir, name)

		source, err := os.ReadFile(filepath.Join(moduleDir, declFile))
		if errors.Is(err, fs.ErrNotExist) {
			cfg.Log(2, "skipping %s: no %s", name, declFile)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("failed to read declaration of %s: %w", name, err)
		}

		info, err := meme.Extract(name, source)
		if err != nil {
			cfg.Log(0, "skipping %s: %v", name, err)
			continue
		}
		if info == nil {
			cfg.Log(2, "skipping %s: no add_meme call", name)
			continue
		}

		entry := render.Entry{
			Module: meme.Module{Name: name, Info: *info},
			Link:   preview.TreeURL(cfg.Repo.Name, cfg.Repo.Branch, moduleDir),
		}
		if img, ok := preview.Find(moduleDir); ok {
			entry.Preview = preview.RawURL(cfg.Repo.Name, cfg.Repo.Branch, img)
		}
		entries = append(entries, entry)
		cfg.Log(2, "extracted %s (%d keywords)", name, len(info.Keywords))
	}
	return entries, nil
}

// previewPath derives the HTML preview path from the markdown output path.
func previewPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".html"
}
