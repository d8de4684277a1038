package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/internal/app"
	"github.com/boolean-maybe/kiss/store/assetstore"
	"github.com/boolean-maybe/kiss/util/sysinfo"
	"github.com/boolean-maybe/kiss/view"
	"github.com/boolean-maybe/kiss/view/header"
)

// Options customizes Bootstrap; the zero value is the interactive terminal setup.
type Options struct {
	// Args is the command line without the program name; nil means os.Args[1:]
	Args []string
	// Prompt replaces the first-run favourites form
	Prompt InitialAssetsPrompt
	// Screen replaces the terminal, e.g. a tcell.SimulationScreen
	Screen tcell.Screen
	// Scheduler runs dismiss completions; nil queues them on the app's event loop
	Scheduler controller.Scheduler
}

// BootstrapResult contains all initialized application components.
type BootstrapResult struct {
	Cfg      *config.Config
	LogLevel *slog.LevelVar
	CloseLog func()
	// CloseScheduler stops posting dismiss completions; call it after the event loop returns
	CloseScheduler func()
	// SystemInfo is collected before the app starts (terminfo lookup, no screen needed)
	SystemInfo   *sysinfo.SystemInfo
	Store        *assetstore.FileStore
	App          *tview.Application
	Navigation   *Navigation
	HeaderWidget *header.HeaderWidget
	RootLayout   *view.RootLayout
}

// Bootstrap orchestrates the complete application initialization sequence.
// Returns (nil, nil) when the user declines the first-run setup.
func Bootstrap() (*BootstrapResult, error) {
	return BootstrapWithOptions(Options{})
}

// BootstrapWithOptions is Bootstrap with injectable command line, prompt and screen.
func BootstrapWithOptions(opts Options) (*BootstrapResult, error) {
	// Phase 1: Configuration and logging
	args := opts.Args
	if args == nil {
		args = os.Args[1:]
	}
	cfg, err := LoadConfig(args)
	if err != nil {
		return nil, err
	}
	logLevel, closeLog := InitLogging(cfg)

	// Phase 2: System information
	systemInfo := sysinfo.NewSystemInfo()
	slog.Debug("collected system information", systemInfo.LogAttrs()...)

	// Phase 3: First-run favourites
	initialIDs, proceed, err := EnsureFavouritesInitialized(cfg.DataFile(), opts.Prompt)
	if err != nil {
		closeLog()
		return nil, err
	}
	if !proceed {
		slog.Info("first-run setup cancelled")
		closeLog()
		return nil, nil
	}

	// Phase 4: Store
	fileStore, err := InitStore(cfg.DataFile(), initialIDs)
	if err != nil {
		closeLog()
		return nil, err
	}

	// Phase 5: Application
	application := app.NewApp()
	if opts.Screen != nil {
		application.SetScreen(opts.Screen)
	} else {
		app.SetupSignalHandler(application)
	}

	// Phase 6: Flow engine, views and route validation
	schedule := opts.Scheduler
	closeScheduler := func() {}
	if schedule == nil {
		ui := app.NewUIScheduler(application)
		schedule, closeScheduler = ui.Schedule, ui.Close
	}
	nav, err := BuildNavigation(cfg, fileStore, fileStore, schedule, systemInfo)
	if err != nil {
		closeLog()
		return nil, err
	}

	// Phase 7: Header and layout
	headerWidget := header.NewHeaderWidget()
	InitHeaderBaseStats(headerWidget, fileStore, systemInfo)
	rootLayout := view.NewRootLayout(
		headerWidget,
		nav.RootNav,
		nav.InputRouter.GlobalActions(),
		nav.Router.Depth,
		fileStore,
		application,
	)

	// Phase 8: Input and lifecycle wiring
	wireOnViewActivated(rootLayout, application)
	nav.InputRouter.SetHeaderToggle(rootLayout.ToggleHeader)
	app.InstallGlobalInputCapture(application, nav.InputRouter)
	nav.Router.SetOnFinished(application.Stop)

	// Phase 9: Root flow
	if err := nav.Router.Start(nav.Root); err != nil {
		rootLayout.Cleanup()
		closeLog()
		return nil, fmt.Errorf("start root flow: %w", err)
	}

	return &BootstrapResult{
		Cfg:            cfg,
		LogLevel:       logLevel,
		CloseLog:       closeLog,
		CloseScheduler: closeScheduler,
		SystemInfo:     systemInfo,
		Store:          fileStore,
		App:            application,
		Navigation:     nav,
		HeaderWidget:   headerWidget,
		RootLayout:     rootLayout,
	}, nil
}

// wireOnViewActivated wires focus setters into views as they become active.
func wireOnViewActivated(rootLayout *view.RootLayout, app *tview.Application) {
	rootLayout.SetOnViewActivated(func(v controller.View) {
		if focusSettable, ok := v.(controller.FocusSettable); ok {
			focusSettable.SetFocusSetter(func(p tview.Primitive) {
				app.SetFocus(p)
			})
		}
	})
}
