package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/internal/app"
	"github.com/boolean-maybe/kiss/internal/bootstrap"
)

func main() {
	if wantsVersion(os.Args[1:]) {
		fmt.Printf("kiss version %s\ncommit: %s\nbuilt: %s\n",
			config.Version, config.GitCommit, config.BuildDate)
		return
	}

	if err := run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run bootstraps the flow tree and blocks until the root flow finishes or a signal arrives
func run() error {
	if err := config.InitPaths(); err != nil {
		return err
	}

	result, err := bootstrap.Bootstrap()
	if err != nil {
		return err
	}
	if result == nil {
		// first-run setup declined
		return nil
	}
	defer result.CloseLog()
	defer result.RootLayout.Cleanup()

	err = app.Run(result.App, result.RootLayout)
	result.CloseScheduler()
	if err != nil {
		slog.Error("application error", "error", err)
		return err
	}

	slog.Info("application exited",
		"favourites", len(result.Store.GetAll()),
		"log_level", result.LogLevel.Level().String())
	return nil
}

func wantsVersion(args []string) bool {
	return len(args) > 0 && (args[0] == "--version" || args[0] == "-v")
}
