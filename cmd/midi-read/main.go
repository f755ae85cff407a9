// Command midi-read prints the notes played on a USB-MIDI keyboard.
//
//	midi-read                       # default device 0a67:2114
//	midi-read --vid 0x0a67 --pid 0x2114 --interface 1 --endpoint 1
//	midi-read --input capture.bin   # raw USB-MIDI packets from a file
//
// Reading from a device needs libusb and a build with -tags usb.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	notation "github.com/gogpu/gg-notation"
	"github.com/gogpu/gg-notation/midi"
)

const appName = "midi-read"

type options struct {
	vid, pid uint16
	config   int
	iface    int
	alt      int
	endpoint int
	input    string
	logLevel string
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
		Use:          appName,
		Short:        "Print the notes played on a USB-MIDI keyboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Uint16Var(&opts.vid, "vid", 0x0a67, "USB vendor id")
	cmd.Flags().Uint16Var(&opts.pid, "pid", 0x2114, "USB product id")
	cmd.Flags().IntVar(&opts.config, "config", 1, "USB configuration number")
	cmd.Flags().IntVar(&opts.iface, "interface", 1, "USB interface number")
	cmd.Flags().IntVar(&opts.alt, "alt", 0, "USB interface alternate setting")
	cmd.Flags().IntVar(&opts.endpoint, "endpoint", 1, "bulk IN endpoint number")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Read raw packets from a file instead of a device")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, notation.Version)
		},
	})

	return cmd
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	setupLogging(opts.logLevel)

	var src io.ReadCloser
	var err error
	if opts.input != "" {
		src, err = os.Open(opts.input)
	} else {
		src, err = openUSB(opts)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	slog.Info("waiting for MIDI data")
	return midi.Listen(ctx, src, func(ev midi.Event) error {
		slog.Debug("midi event", "kind", ev.Kind, "note", ev.Note, "velocity", ev.Velocity,
			"channel", ev.Channel, "cable", ev.Cable)
		_, err := fmt.Fprintln(out, ev)
		return err
	})
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
