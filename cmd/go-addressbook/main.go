package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"syscall"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/cli"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/server"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// main delegates to runMain so deferred calls (like closing the log file)
// run before the process terminates; os.Exit() skips defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	bookFile := flag.String(config.FlagFile, config.DefaultBookFile, config.FlagDescFile)
	viewKind := flag.String(config.FlagView, config.ViewSimple, config.FlagDescView)
	lang := flag.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	port := flag.String(config.FlagPort, "", config.FlagDescPort)
	reminder := flag.String(config.FlagReminder, "", config.FlagDescReminder)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// Configure structured logging early to capture startup issues. Stdout
	// belongs to the command loop, so logs go to a file and, with -debug,
	// to stderr.
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, options{
		bookFile: *bookFile,
		viewKind: *viewKind,
		lang:     *lang,
		port:     *port,
		reminder: *reminder,
	}); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

type options struct {
	bookFile string
	viewKind string
	lang     string
	port     string
	reminder string
}

// run wires the collaborators together and starts the command loop.
func run(ctx context.Context, opts options) error {
	if opts.port != "" {
		if err := validatePort(opts.port); err != nil {
			return err
		}
	}

	store := storage.NewFileStore(opts.bookFile)
	b, err := store.Load()
	if err != nil {
		return err
	}

	msgs := cli.NewMessages(opts.lang)
	view, err := cli.NewView(opts.viewKind, os.Stdout, msgs)
	if err != nil {
		return err
	}

	app := &cli.App{
		Book:     b,
		Store:    store,
		Fetcher:  storage.NewHTTPFetcher(),
		View:     view,
		Msgs:     msgs,
		Clock:    book.RealClock{},
		Reminder: opts.reminder,
		In:       os.Stdin,
		Out:      os.Stdout,
	}

	if opts.port != "" {
		feed := server.NewFeedServer(opts.port)
		app.Feed = feed
		go func() {
			if err := feed.Start(ctx); err != nil {
				slog.Error(config.ErrServerStartup,
					config.LogKeyComponent, config.CompMain,
					config.LogKeyError, err,
				)
			}
		}()
	}

	return app.Run(ctx)
}

// validatePort ensures the feed port is a usable TCP port number.
func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(config.ErrPortNumber)
	}
	if n < config.MinPort || n > config.MaxPort {
		return errors.New(config.ErrPortRange)
	}
	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	// 1. Attempt to set up a file writer in the user's cache directory.
	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	// 2. With -debug, mirror logs to stderr. Stdout stays clean for the
	// interactive prompt.
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
