// Package cli provides the command-line interface for meme-catalog.
// It exports Run() and RunWithHooks() to allow extension by wrapper projects.
package cli

import (
	"fmt"
	"os"

	"github.com/jinjiao007/meme-catalog/internal/catalog"
	"github.com/jinjiao007/meme-catalog/internal/config"
)

// Hooks allows extending the CLI with additional commands.
type Hooks struct {
	// BeforeDispatch is called before command dispatch.
	// Return (handled=true, exitCode) to skip normal dispatch.
	BeforeDispatch func(command string, args []string) (handled bool, exitCode int)

	// CustomHelp returns additional help text to append.
	CustomHelp func() string

	// CustomVersion returns version info to append (optional).
	CustomVersion func() string
}

// Run executes the CLI with the given arguments.
// Returns exit code (0 = success, non-zero = error).
func Run(args []string) int {
	return RunWithHooks(args, nil)
}

// RunWithHooks executes CLI with extension hooks.
func RunWithHooks(args []string, hooks *Hooks) int {
	if len(args) < 1 {
		return runGenerate(args)
	}

	command := args[0]
	cmdArgs := args[1:]

	// Let hooks intercept first
	if hooks != nil && hooks.BeforeDispatch != nil {
		if handled, code := hooks.BeforeDispatch(command, cmdArgs); handled {
			return code
		}
	}

	switch command {
	case "generate":
		return runGenerate(cmdArgs)
	case "help", "-h", "--help":
		printHelp(hooks)
		return 0
	case "version", "--version":
		printVersion(hooks)
		return 0
	default:
		// Check if it's a flag (starts with -)
		if len(command) > 0 && command[0] == '-' {
			return runGenerate(args)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printHelp(hooks)
		return 1
	}
}

// runGenerate loads configuration and runs the catalog pipeline.
func runGenerate(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := catalog.Generate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printHelp(hooks *Hooks) {
	fmt.Println(`Meme Catalog Generator

Usage: meme-catalog [command] [options]

Commands:
  generate        Scan meme modules and write the catalog table (default)

Options:
  --repo          Remote repository as owner/name
  --branch        Branch segment for constructed URLs (default: master)
  --memes         Root directory of meme modules (default: ./memes)
  --output        Markdown output file (default: docs/meme_keywords.md)
  --html          Also write an HTML preview of the table
  --image-height  Preview image display height in pixels (default: 50)
  --config        TOML config file path (default: config/catalog.toml)
  -v              Verbosity level (use -v, -vv, or -vvv)

Environment:
  GITHUB_REPOSITORY, CATALOG_BRANCH, CATALOG_MEMES_DIR,
  CATALOG_OUTPUT, CATALOG_HTML, CATALOG_VERBOSITY

Examples:
  meme-catalog generate
  meme-catalog generate --memes memes/ --output docs/meme_keywords.md
  meme-catalog generate --html -vv`)

	if hooks != nil && hooks.CustomHelp != nil {
		fmt.Println(hooks.CustomHelp())
	}
}

func printVersion(hooks *Hooks) {
	fmt.Println("meme-catalog v0.1.0")
	if hooks != nil && hooks.CustomVersion != nil {
		fmt.Println(hooks.CustomVersion())
	}
}
