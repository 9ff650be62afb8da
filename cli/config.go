// Package cli provides the command-line interface for meme-catalog.
// This file re-exports config types from internal/config for public API.
package cli

import (
	"github.com/jinjiao007/meme-catalog/internal/config"
)

// Re-export config types for public API
type (
	Config        = config.Config
	RepoConfig    = config.RepoConfig
	PathsConfig   = config.PathsConfig
	RenderConfig  = config.RenderConfig
	LoggingConfig = config.LoggingConfig
)

// Re-export config functions for public API
var (
	DefaultConfig = config.DefaultConfig
	Load          = config.Load
)
