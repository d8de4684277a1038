package controller

import (
	"github.com/boolean-maybe/kiss/model"

	"github.com/rivo/tview"
)

// Test utilities for controller unit tests

// fakeView is a View recording the actions it receives
type fakeView struct {
	route     model.Route
	registry  *ActionRegistry
	handled   []ActionID
	capturing bool
	focused   int
}

func newFakeView(route model.Route) *fakeView {
	r := NewActionRegistry()
	r.Merge(AssetsListActions())
	return &fakeView{route: route, registry: r}
}

func (v *fakeView) GetPrimitive() tview.Primitive          { return tview.NewBox() }
func (v *fakeView) GetActionRegistry() *ActionRegistry     { return v.registry }
func (v *fakeView) OnFocus()                               { v.focused++ }
func (v *fakeView) OnBlur()                                {}
func (v *fakeView) IsCapturingInput() bool                 { return v.capturing }
func (v *fakeView) HandleAction(id ActionID) bool          { v.handled = append(v.handled, id); return true }
func (v *fakeView) String() string                         { return v.route.String() }
func (v *fakeView) withCapturing(capturing bool) *fakeView { v.capturing = capturing; return v }

// manualScheduler holds dismiss completions until run is called, like an event loop turn
type manualScheduler struct {
	queue []func()
}

func (m *manualScheduler) schedule(fn func()) {
	m.queue = append(m.queue, fn)
}

func (m *manualScheduler) run() {
	for len(m.queue) > 0 {
		fn := m.queue[0]
		m.queue = m.queue[1:]
		fn()
	}
}

// recordingNavigator is a ScreenStack that logs present/dismiss calls to a shared log
type recordingNavigator struct {
	*ScreenStack
	log *[]string
}

func (n *recordingNavigator) Present(p Navigator, onExternalDismiss func()) error {
	*n.log = append(*n.log, "present")
	return n.ScreenStack.Present(p, onExternalDismiss)
}

func (n *recordingNavigator) Dismiss(completion func()) {
	*n.log = append(*n.log, "dismiss")
	n.ScreenStack.Dismiss(completion)
}

// harness builds a coordinator tree over recording navigators
type harness struct {
	log     []string
	sched   *manualScheduler // nil: completions run immediately
	rootNav *recordingNavigator
	opts    []CoordinatorOption
}

func newHarness() *harness {
	h := &harness{}
	h.rootNav = h.newNav(model.PopupNone)
	return h
}

func newAsyncHarness() *harness {
	h := &harness{sched: &manualScheduler{}}
	h.rootNav = h.newNav(model.PopupNone)
	return h
}

func (h *harness) newNav(style model.PopupStyle) *recordingNavigator {
	opts := []StackOption{WithStyle(style)}
	if h.sched != nil {
		opts = append(opts, WithScheduler(h.sched.schedule))
	}
	return &recordingNavigator{ScreenStack: NewScreenStack(opts...), log: &h.log}
}

func (h *harness) factory() NavigatorFactory {
	return func(style model.PopupStyle) Navigator {
		return h.newNav(style)
	}
}

// flush runs pending dismiss completions
func (h *harness) flush() {
	if h.sched != nil {
		h.sched.run()
	}
}

func (h *harness) resetLog() {
	h.log = nil
}

// root creates and starts a main flow on the root navigator
func (h *harness) root() *Coordinator {
	opts := append([]CoordinatorOption{WithNavigatorFactory(h.factory())}, h.opts...)
	c := NewCoordinator(newMainDomain(), h.rootNav, opts...)
	if err := c.Start(); err != nil {
		panic(err)
	}
	return c
}

// testDomain is a Domain configured with route lists and flow builders
type testDomain struct {
	name    string
	initial model.Route
	routes  []model.Route
	batches map[string]func(route model.Route) []model.Route
	flows   map[string]func() Domain
}

func (d *testDomain) Name() string              { return d.name }
func (d *testDomain) InitialRoute() model.Route { return d.initial }

func (d *testDomain) CanShow(route model.Route) bool {
	for _, r := range d.routes {
		if r.Matches(route) {
			return true
		}
	}
	return false
}

func (d *testDomain) MakeScreens(route model.Route, params map[string]interface{}) ([]*Screen, error) {
	routes := []model.Route{route}
	if batch, ok := d.batches[route.Name]; ok {
		routes = batch(route)
	}
	screens := make([]*Screen, 0, len(routes))
	for _, r := range routes {
		screens = append(screens, NewScreen(r, newFakeView(r)))
	}
	return screens, nil
}

func (d *testDomain) MakeFlow(route model.Route, nav Navigator, params map[string]interface{}) (*Coordinator, error) {
	build, ok := d.flows[route.Name]
	if !ok {
		return nil, ErrUnsupportedRoute
	}
	return NewCoordinator(build(), nav), nil
}

func newMainDomain() Domain {
	return &testDomain{
		name:    "main",
		initial: model.MainAssetsList,
		routes:  model.MainRoutes(),
		batches: map[string]func(model.Route) []model.Route{
			model.MainRestoreNavigation("").Name: func(r model.Route) []model.Route {
				return []model.Route{model.MainAssetDetails(r.Arg), model.MainEditAsset(r.Arg)}
			},
			model.MainRestorePopupNavigation.Name: func(model.Route) []model.Route {
				return []model.Route{model.MainAppInfoStandalone, model.MainAppInfoStandalone}
			},
		},
		flows: map[string]func() Domain{
			model.MainAddAsset.Name:     newAddAssetDomain,
			model.MainAppInfo.Name:      newAppInfoDomain,
			model.MainEmbeddedFlow.Name: newMainDomain,
			model.MainPopupFlow.Name:    newMainDomain,
		},
	}
}

func newAddAssetDomain() Domain {
	return &testDomain{name: "addAsset", initial: model.AddAssetForm, routes: []model.Route{model.AddAssetForm}}
}

func newAppInfoDomain() Domain {
	return &testDomain{name: "appInfo", initial: model.AppInfoPage, routes: []model.Route{model.AppInfoPage}}
}

// names returns the short route names of the screens on n, bottom first
func names(n Navigator) []string {
	if n == nil {
		return nil
	}
	var out []string
	for _, s := range n.Screens() {
		name := model.ShortName(s.Route)
		if s.Route.Arg != "" {
			name += "(" + s.Route.Arg + ")"
		}
		out = append(out, name)
	}
	return out
}

func presentedNames(n Navigator) []string {
	return names(n.PresentedNavigator())
}
