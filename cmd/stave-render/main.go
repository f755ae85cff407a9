// Command stave-render loads a host page, runs the stave bootstrap on it
// and writes the musicCanvas element to a PNG or SVG file.
//
//	stave-render --output stave.png
//	stave-render --page index.html --backend svg --output stave.svg
//	stave-render --page index.html --watch
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	notation "github.com/gogpu/gg-notation"
	"github.com/gogpu/gg-notation/bootstrap"
	"github.com/gogpu/gg-notation/page"
)

const appName = "stave-render"

type options struct {
	pagePath   string
	backend    string
	output     string
	configPath string
	logLevel   string
	watch      bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render the page's music stave",
		Long: `stave-render loads a host page (the built-in page unless --page is
given), fires its ready event so the stave bootstrap draws into the
musicCanvas element, and writes the result as PNG or SVG.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("backend") {
				opts.backend = ""
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.pagePath, "page", "p", "", "HTML page to load (default: built-in page)")
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "canvas", "Rendering backend (canvas, svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stave.png or stave.svg)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Bootstrap config file (YAML)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-render whenever --page changes")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, notation.Version)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the default bootstrap config as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := bootstrap.DefaultConfig().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}

func run(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	setupLogging(opts.logLevel)
	if opts.watch && opts.pagePath == "" {
		return errors.New("--watch requires --page")
	}

	cfg := bootstrap.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := bootstrap.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	backend, err := notation.ParseBackend(cfg.Backend)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = "stave." + extension(backend)
	}

	doc := page.Default()
	if opts.pagePath != "" {
		if doc, err = page.Load(opts.pagePath); err != nil {
			return err
		}
	}
	if err := render(doc, cfg, backend, output); err != nil {
		return err
	}

	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return page.Watch(ctx, opts.pagePath, page.DefaultDebounce, func(doc *page.Document) error {
		return render(doc, cfg, backend, output)
	})
}

// render fires doc's ready event with the bootstrap installed and writes
// the drawn canvas to output.
func render(doc *page.Document, cfg bootstrap.Config, backend notation.Backend, output string) error {
	bootstrap.Install(doc, cfg)
	if err := doc.DispatchReady(); err != nil {
		return err
	}
	canvas, err := doc.GetElementByID(cfg.CanvasID)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if backend == notation.BackendSVG {
		err = canvas.WriteSVG(f)
	} else {
		err = canvas.EncodePNG(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	slog.Info("stave rendered", "output", output, "backend", backend,
		"width", canvas.Width(), "height", canvas.Height())
	return nil
}

func extension(b notation.Backend) string {
	if b == notation.BackendSVG {
		return "svg"
	}
	return "png"
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	notation.SetLogger(logger)
}
