package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/deskclock/internal/app"
	"github.com/1broseidon/deskclock/internal/config"
	"github.com/1broseidon/deskclock/internal/geometry"
	"github.com/1broseidon/deskclock/internal/platform"
	"github.com/1broseidon/deskclock/internal/statepath"
	"github.com/1broseidon/deskclock/internal/store"
	"github.com/1broseidon/deskclock/internal/tui"
	"github.com/1broseidon/deskclock/internal/x11"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		runClock(nil)
		return
	}

	switch os.Args[1] {
	case "run":
		runClock(os.Args[2:])
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "version":
		fmt.Println("deskclock " + version)
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
	default:
		// Bare flags go to the clock itself.
		if os.Args[1][0] == '-' {
			runClock(os.Args[1:])
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deskclock [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Start the clock window (default)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config path         Print config and state file locations")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  tui                 Open interactive settings editor")
	fmt.Fprintln(w, "  version             Print version")
	fmt.Fprintln(w, "  help                Show this help")
}

func runClock(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file path (default: ~/.config/deskclock/config.yaml)")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	logger := newLogger(*logLevel)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	spans, err := cfg.Spans()
	if err != nil {
		log.Fatalf("Invalid clock format: %v", err)
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		log.Fatalf("Invalid background color: %v", err)
	}

	geomPath, err := statepath.GeometryPath()
	if err != nil {
		log.Fatalf("Failed to resolve state directory: %v", err)
	}
	st := store.New(geomPath)

	saved, err := st.Load()
	switch {
	case errors.Is(err, store.ErrNotFound):
		saved = geometry.FirstRun()
		logger.Info("no saved geometry, using defaults")
	case err != nil:
		log.Fatalf("Failed to read saved geometry %s: %v", geomPath, err)
	}

	conn, err := x11.NewConnection()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer conn.Close()

	win, err := x11.CreateWindow(conn, "deskclock", saved.Width, saved.Height)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	backend, err := platform.NewX11Backend(conn, win)
	if err != nil {
		log.Fatalf("Failed to enumerate monitors: %v", err)
	}

	geo := geometry.NewController(backend, cfg.ChromeHeight)
	saver := store.NewSaver(
		time.Duration(cfg.SaveDebounceMS)*time.Millisecond,
		func() error { return st.Save(geo.Geometry()) },
		logger,
	)

	a := app.New(app.Options{
		Backend:     backend,
		Surface:     win,
		Geometry:    geo,
		Saver:       saver,
		Spans:       spans,
		Background:  background,
		FrameRate:   cfg.FrameRate,
		AlwaysOnTop: cfg.OnTop(),
		Resizable:   cfg.CanResize(),
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Start(saved, time.Now())
	a.Run(ctx)
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  deskclock config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  deskclock config print [--path PATH] [--defaults]")
		fmt.Fprintln(os.Stderr, "  deskclock config path")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/deskclock/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if _, err := loadConfig(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/deskclock/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			var err error
			cfg, err = loadConfig(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	case "path":
		configPath, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		geomPath, err := statepath.GeometryPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config:   " + configPath)
		fmt.Println("geometry: " + geomPath)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/deskclock/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := tui.Run(*path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}
