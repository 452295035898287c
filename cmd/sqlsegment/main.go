package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/shibukawa/sqlsegment"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// guards Stderr, status lines come from extract workers
	mu sync.Mutex
}

// loadConfig loads the configuration and applies its output settings
func (ctx *Context) loadConfig() (*sqlsegment.Config, error) {
	config, err := sqlsegment.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if !config.Output.ColorEnabled() {
		color.NoColor = true
	}

	return config, nil
}

func (ctx *Context) info(format string, args ...any) {
	if ctx.Verbose && !ctx.Quiet {
		ctx.mu.Lock()
		defer ctx.mu.Unlock()
		color.New(color.FgBlue).Fprintf(ctx.Stderr, format+"\n", args...)
	}
}

func (ctx *Context) success(format string, args ...any) {
	if !ctx.Quiet {
		ctx.mu.Lock()
		defer ctx.mu.Unlock()
		color.New(color.FgGreen).Fprintf(ctx.Stderr, format+"\n", args...)
	}
}

func (ctx *Context) failure(format string, args ...any) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	color.New(color.FgRed).Fprintf(ctx.Stderr, format+"\n", args...)
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path" default:"sqlsegment.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Extract ExtractCmd `cmd:"" help:"Extract GROUP BY, ORDER BY and LIMIT segments from SELECT statements"`
	Tree    TreeCmd    `cmd:"" help:"Print the syntax tree of a SELECT statement"`
	Tokens  TokensCmd  `cmd:"" help:"Print the tokens of a SQL statement"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "sqlsegment v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sqlsegment"),
		kong.Description("Extract clause segments from SQL SELECT statements"),
		kong.UsageOnError(),
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
