// Package config handles configuration loading from CLI flags, environment variables, and TOML files.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration settings for the catalog generator.
type Config struct {
	Repo    RepoConfig    `toml:"repo"`
	Paths   PathsConfig   `toml:"paths"`
	Render  RenderConfig  `toml:"render"`
	Logging LoggingConfig `toml:"logging"`
}

// RepoConfig identifies the remote repository used to build source links and
// raw image URLs. URLs are constructed strings only; nothing is ever fetched.
type RepoConfig struct {
	Name   string `toml:"name"`   // "owner/repository"
	Branch string `toml:"branch"` // branch segment of constructed URLs
}

// PathsConfig holds filesystem locations.
type PathsConfig struct {
	MemesDir string `toml:"memes"`  // root directory of meme modules
	Output   string `toml:"output"` // markdown output file
}

// RenderConfig holds table rendering settings.
type RenderConfig struct {
	HTML        bool `toml:"html"`         // also write an HTML preview next to the markdown
	ImageHeight int  `toml:"image_height"` // preview image display height in pixels
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Verbosity int `toml:"verbosity"` // 0=diagnostics only, 1=progress, 2=per-module detail
}

// verbosityCounter implements flag.Value for counting -v flags.
type verbosityCounter int

func (v *verbosityCounter) String() string {
	return fmt.Sprintf("%d", *v)
}

func (v *verbosityCounter) Set(string) error {
	*v++
	return nil
}

func (v *verbosityCounter) IsBoolFlag() bool {
	return true
}

// expandVerbosityFlags preprocesses args to expand -vvv into -v -v -v.
// This allows both "-v -v -v" and "-vvv" styles to work.
func expandVerbosityFlags(args []string) []string {
	result := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' && arg[1] == 'v' {
			allV := true
			for _, c := range arg[1:] {
				if c != 'v' {
					allV = false
					break
				}
			}
			if allV {
				for range arg[1:] {
					result = append(result, "-v")
				}
				continue
			}
		}
		result = append(result, arg)
	}
	return result
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Repo: RepoConfig{
			Name:   "jinjiao007/meme-generator-jj",
			Branch: "master",
		},
		Paths: PathsConfig{
			MemesDir: "./memes",
			Output:   "docs/meme_keywords.md",
		},
		Render: RenderConfig{
			HTML:        false,
			ImageHeight: 50,
		},
		Logging: LoggingConfig{
			Verbosity: 0,
		},
	}
}

// Load loads configuration from CLI flags, environment variables, and TOML file.
// Priority: CLI flags > env vars > TOML file > defaults
func Load(args []string) (*Config, error) {
	cfg := DefaultConfig()

	// Preprocess args to expand -vvv into -v -v -v
	args = expandVerbosityFlags(args)

	fs := flag.NewFlagSet("meme-catalog", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file path")

	// Repository flags
	repo := fs.String("repo", "", "Remote repository as owner/name")
	branch := fs.String("branch", "", "Branch segment for constructed URLs")

	// Path flags
	memesDir := fs.String("memes", "", "Root directory of meme modules")
	output := fs.String("output", "", "Markdown output file")

	// Render flags
	htmlPreview := fs.Bool("html", false, "Also write an HTML preview of the table")
	imageHeight := fs.Int("image-height", 0, "Preview image display height in pixels")

	var verbosity verbosityCounter
	fs.Var(&verbosity, "v", "Verbosity level (use -v, -vv, or -vvv)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Load TOML config if exists
	path := "config/catalog.toml"
	if *configPath != "" {
		path = *configPath
	}
	if err := cfg.loadTOML(path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	// Apply environment variables
	cfg.applyEnv()

	// Apply CLI flags (highest priority)
	if *repo != "" {
		cfg.Repo.Name = *repo
	}
	if *branch != "" {
		cfg.Repo.Branch = *branch
	}
	if *memesDir != "" {
		cfg.Paths.MemesDir = *memesDir
	}
	if *output != "" {
		cfg.Paths.Output = *output
	}
	if *htmlPreview {
		cfg.Render.HTML = true
	}
	if *imageHeight != 0 {
		cfg.Render.ImageHeight = *imageHeight
	}
	if verbosity > 0 {
		cfg.Logging.Verbosity = int(verbosity)
	}

	return cfg, nil
}

// loadTOML loads configuration from a TOML file.
func (c *Config) loadTOML(path string) error {
	_, err := toml.DecodeFile(path, c)
	return err
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("GITHUB_REPOSITORY"); v != "" {
		c.Repo.Name = v
	}
	if v := os.Getenv("CATALOG_BRANCH"); v != "" {
		c.Repo.Branch = v
	}
	if v := os.Getenv("CATALOG_MEMES_DIR"); v != "" {
		c.Paths.MemesDir = v
	}
	if v := os.Getenv("CATALOG_OUTPUT"); v != "" {
		c.Paths.Output = v
	}
	if v := os.Getenv("CATALOG_HTML"); v != "" {
		c.Render.HTML = v == "true" || v == "1"
	}
	if v := os.Getenv("CATALOG_VERBOSITY"); v != "" {
		if verbosity, err := strconv.Atoi(v); err == nil {
			c.Logging.Verbosity = verbosity
		}
	}
}

// Log writes a message to stderr if the configured verbosity is at least
// level. Level 0 messages are always written.
func (c *Config) Log(level int, format string, args ...interface{}) {
	if level <= c.Logging.Verbosity {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Verbosity returns the configured verbosity level.
func (c *Config) Verbosity() int {
	return c.Logging.Verbosity
}
