package testutil

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/boolean-maybe/kiss/asset"
	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/internal/bootstrap"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/view"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TestApp wraps the fully bootstrapped application for integration testing with SimulationScreen
type TestApp struct {
	*bootstrap.BootstrapResult

	Screen   tcell.SimulationScreen
	DataFile string
	Finished bool

	t       *testing.T
	mu      sync.Mutex
	pending []func()
}

// TestAppOption adjusts a TestApp before bootstrap
type TestAppOption func(*testAppConfig)

type testAppConfig struct {
	favourites []asset.Asset
	firstRun   []string
	args       []string
}

// WithFavourites writes an existing favourites file before bootstrap
func WithFavourites(assets ...asset.Asset) TestAppOption {
	return func(c *testAppConfig) {
		c.favourites = assets
	}
}

// WithFirstRunSelection leaves the favourites file missing and answers the first-run prompt
func WithFirstRunSelection(ids ...string) TestAppOption {
	return func(c *testAppConfig) {
		c.favourites = nil
		c.firstRun = append([]string{}, ids...)
	}
}

// WithArgs passes command line flags to the config loader
func WithArgs(args ...string) TestAppOption {
	return func(c *testAppConfig) {
		c.args = args
	}
}

// NewTestApp bootstraps the application the way main does, on an 80x40 simulation screen.
// Dismiss completions are queued and run by Flush, mirroring later event-loop turns.
// Do NOT call App.Run() - Draw renders synchronously.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	cfg := testAppConfig{
		favourites: []asset.Asset{
			{ID: "AU", Name: "Gold", ColorCode: "#FFD700"},
			{ID: "PT", Name: "Platinum", ColorCode: "#E5E4E2"},
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// isolate config paths so tests don't read the real user config
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	config.ResetPathManager()
	t.Cleanup(config.ResetPathManager)
	if err := config.InitPaths(); err != nil {
		t.Fatalf("InitPaths() error = %v", err)
	}

	dataFile := filepath.Join(dir, "favourites.yaml")
	if cfg.firstRun == nil {
		if err := WriteFavourites(dataFile, cfg.favourites...); err != nil {
			t.Fatalf("failed to write favourites: %v", err)
		}
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 40)
	screen.Clear()

	ta := &TestApp{Screen: screen, DataFile: dataFile, t: t}
	args := append([]string{"--data-file", dataFile}, cfg.args...)
	result, err := bootstrap.BootstrapWithOptions(bootstrap.Options{
		Args:      args,
		Screen:    screen,
		Scheduler: ta.schedule,
		Prompt: func([]asset.Asset) ([]string, bool, error) {
			return cfg.firstRun, true, nil
		},
	})
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if result == nil {
		t.Fatal("Bootstrap() returned no application")
	}
	ta.BootstrapResult = result
	t.Cleanup(ta.Cleanup)

	// app.Stop would tear down the simulation screen mid-test
	result.Navigation.Router.SetOnFinished(func() { ta.Finished = true })

	ta.App.SetRoot(ta.RootLayout.GetPrimitive(), true).EnableMouse(false)
	ta.Draw()
	return ta
}

func (ta *TestApp) schedule(fn func()) {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.pending = append(ta.pending, fn)
}

// Flush runs queued completions, including ones they queue, then redraws
func (ta *TestApp) Flush() {
	for {
		ta.mu.Lock()
		if len(ta.pending) == 0 {
			ta.mu.Unlock()
			break
		}
		next := ta.pending[0]
		ta.pending = ta.pending[1:]
		ta.mu.Unlock()
		next()
	}
	ta.Draw()
}

// Pending returns the number of queued completions
func (ta *TestApp) Pending() int {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	return len(ta.pending)
}

// Router returns the application router
func (ta *TestApp) Router() *controller.Router {
	return ta.Navigation.Router
}

// VisibleRoute returns the short name of the screen the user sees, "" when none
func (ta *TestApp) VisibleRoute() string {
	screen := ta.Router().VisibleScreen()
	if screen == nil {
		return ""
	}
	return model.ShortName(screen.Route)
}

// ContentView returns the view that has focus in the root layout
func (ta *TestApp) ContentView() controller.View {
	return ta.RootLayout.GetContentView()
}

// Draw forces a synchronous draw without running the app event loop
func (ta *TestApp) Draw() {
	width, height := ta.Screen.Size()
	ta.RootLayout.GetPrimitive().SetRect(0, 0, width, height)
	ta.RootLayout.GetPrimitive().Draw(ta.Screen)
	ta.Screen.Show()
}

// SendKey simulates a key press through the app's input capture, then the focused primitive.
// Queued completions are not run; call Flush for that.
func (ta *TestApp) SendKey(key tcell.Key, ch rune, mod tcell.ModMask) {
	event := tcell.NewEventKey(key, ch, mod)
	consumed := false
	if capture := ta.App.GetInputCapture(); capture != nil {
		consumed = capture(event) == nil
	}

	if !consumed {
		if focused := ta.App.GetFocus(); focused != nil {
			if handler := focused.InputHandler(); handler != nil {
				handler(event, func(p tview.Primitive) { ta.App.SetFocus(p) })
			}
		}
	}
	ta.Draw()
}

// SendRune presses a printable key and runs queued completions
func (ta *TestApp) SendRune(ch rune) {
	ta.SendKey(tcell.KeyRune, ch, tcell.ModNone)
	ta.Flush()
}

// SendText types a string of characters into the focused primitive
func (ta *TestApp) SendText(text string) {
	for _, ch := range text {
		ta.SendKey(tcell.KeyRune, ch, tcell.ModNone)
	}
}

// GetTextAt extracts text from a screen region starting at (x, y) with given width
func (ta *TestApp) GetTextAt(x, y, width int) string {
	contents, screenWidth, _ := ta.Screen.GetContents()
	var result strings.Builder

	for i := 0; i < width; i++ {
		cellIdx := y*screenWidth + (x + i)
		if cellIdx >= len(contents) {
			break
		}
		cell := contents[cellIdx]
		if len(cell.Runes) > 0 {
			result.WriteRune(cell.Runes[0])
		} else {
			result.WriteRune(' ')
		}
	}

	return strings.TrimSpace(result.String())
}

// FindText searches for a text string anywhere on the screen.
// Returns (found, x, y) where x, y are the coordinates of the first match.
func (ta *TestApp) FindText(needle string) (bool, int, int) {
	width, height := ta.Screen.Size()
	for y := 0; y < height; y++ {
		rowText := ta.GetTextAt(0, y, width)
		if x := strings.Index(rowText, needle); x >= 0 {
			return true, x, y
		}
	}
	return false, 0, 0
}

// DumpScreen prints the current screen content for debugging
func (ta *TestApp) DumpScreen() {
	width, height := ta.Screen.Size()
	ta.t.Logf("Screen size: %dx%d", width, height)
	for y := 0; y < height; y++ {
		if line := ta.GetTextAt(0, y, width); line != "" {
			ta.t.Logf("Row %2d: %s", y, line)
		}
	}
}

// Cleanup tears down the test app and releases resources
func (ta *TestApp) Cleanup() {
	if ta.BootstrapResult == nil {
		return
	}
	ta.RootLayout.Cleanup()
	ta.CloseLog()
	ta.Screen.Fini()
	ta.BootstrapResult = nil
}

// AssetsListView returns the visible view as the favourites list, failing the test otherwise
func (ta *TestApp) AssetsListView() *view.AssetsListView {
	ta.t.Helper()
	v, ok := ta.ContentView().(*view.AssetsListView)
	if !ok {
		ta.t.Fatalf("content view = %T, want *view.AssetsListView", ta.ContentView())
	}
	return v
}
