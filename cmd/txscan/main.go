package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/txscan/pkg/config"
)

// cliOptions holds the parsed command line
type cliOptions struct {
	configPath    string
	baseDir       string
	format        string
	logLevel      string
	signatures    []string
	trim          bool
	help          bool
	transmissions []string

	// set records which flags were given explicitly
	set map[string]bool
}

func newFlagSet(opts *cliOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("txscan", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.baseDir, "dir", "", "Base directory for relative input paths")
	fs.StringVar(&opts.format, "format", "", "Output format: text, json or yaml")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringArrayVarP(&opts.signatures, "signature", "s", nil, "Signature file to search for (repeatable)")
	fs.BoolVar(&opts.trim, "trim", false, "Trim surrounding whitespace of every input")
	fs.BoolVar(&opts.help, "help", false, "Show help message")
	return fs
}

// parseArgs parses args (without the program name)
func parseArgs(args []string, stderr io.Writer) (*cliOptions, *flag.FlagSet, error) {
	opts := &cliOptions{set: map[string]bool{}}
	fs := newFlagSet(opts)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	opts.transmissions = fs.Args()
	return opts, fs, nil
}

// applyOptions overrides configuration with explicitly given flags
func applyOptions(cfg *config.Config, opts *cliOptions) error {
	if opts.set["dir"] {
		cfg.BaseDir = opts.baseDir
	}
	if opts.set["format"] {
		cfg.Format = opts.format
	}
	if opts.set["log-level"] {
		cfg.LogLevel = opts.logLevel
	}
	if opts.set["signature"] {
		cfg.Signatures = opts.signatures
	}
	if opts.set["trim"] {
		cfg.TrimWhitespace = opts.trim
	}
	if len(opts.transmissions) > 0 {
		cfg.Transmissions = opts.transmissions
	}
	return config.Validate(cfg)
}

func main() {
	opts, fs, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.help {
		printUsage(os.Stdout, fs)
		os.Exit(0)
	}

	// The config path must be known before loading
	if opts.configPath != "" {
		if err := os.Setenv("TXSCAN_CONFIG", opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := applyOptions(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error in arguments: %v\n", err)
		os.Exit(1)
	}

	deps, err := NewDependencies(cfg, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dependencies: %v\n", err)
		os.Exit(1)
	}

	app := NewApplication(deps)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			// Exit with standard interrupt code
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "txscan - signature, palindrome and common substring analysis of transmissions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: txscan [OPTIONS] [TRANSMISSION_FILES...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Files ending in .gz or .zst are decompressed before analysis.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  TXSCAN_CONFIG           Path to config file")
	fmt.Fprintln(w, "  TXSCAN_BASE_DIR         Base directory for relative input paths")
	fmt.Fprintln(w, "  TXSCAN_TRANSMISSIONS    Transmission files (comma-separated)")
	fmt.Fprintln(w, "  TXSCAN_SIGNATURES       Signature files (comma-separated)")
	fmt.Fprintln(w, "  TXSCAN_FORMAT           Output format (default: text)")
	fmt.Fprintln(w, "  TXSCAN_TRIM             Trim input whitespace (true/false)")
	fmt.Fprintln(w, "  TXSCAN_MAX_INPUT_BYTES  Size limit per decoded input (default: 16MiB)")
	fmt.Fprintln(w, "  TXSCAN_PARALLELISM      Concurrent file loads (default: 4)")
	fmt.Fprintln(w, "  TXSCAN_LOG_LEVEL        Log level (default: warn)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/txscan/config.yaml")
}
