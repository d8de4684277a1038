package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/view"
)

// NewApp creates a tview application.
func NewApp() *tview.Application {
	return tview.NewApplication()
}

// Run runs the tview application.
// Returns an error if the application fails to run.
func Run(app *tview.Application, rootLayout *view.RootLayout) error {
	app.SetRoot(rootLayout.GetPrimitive(), true).EnableMouse(false)
	if err := app.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

// InstallGlobalInputCapture routes every key event through the input router first.
// Events the router handles are consumed; the rest reach the focused primitive.
func InstallGlobalInputCapture(app *tview.Application, inputRouter *controller.InputRouter) {
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if inputRouter.HandleInput(event) {
			return nil
		}
		return event
	})
}

// SetupSignalHandler stops the application on SIGINT or SIGTERM.
func SetupSignalHandler(app *tview.Application) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, stopping", "signal", sig.String())
		app.Stop()
	}()
}
