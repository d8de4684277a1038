package controller

import (
	"log/slog"

	"github.com/boolean-maybe/kiss/model"
)

// Router is the single entry point for navigation requests coming from views and key input.
// It owns the root coordinator and forwards each request to the deepest live flow.
// It does NOT render anything - RootLayout observes the root navigator for that.
type Router struct {
	root           *Coordinator
	rootListenerID int
	onRouteShown   func(route model.Route)
	onFinished     func()
	lastShownID    string
}

// NewRouter creates a router with no flow
func NewRouter() *Router {
	return &Router{}
}

// SetOnRouteShown registers a callback that runs when the visible screen changes
func (r *Router) SetOnRouteShown(callback func(route model.Route)) {
	r.onRouteShown = callback
}

// SetOnFinished registers a callback that runs when the root flow stops
func (r *Router) SetOnFinished(callback func()) {
	r.onFinished = callback
}

// Start takes ownership of root and starts it. A previous root is discarded.
func (r *Router) Start(root *Coordinator) error {
	if r.root != nil {
		r.unobserveRoot()
		r.root.detach()
	}

	r.root = root
	r.lastShownID = ""
	root.SetOnFinished(r.rootFinished)
	if obs, ok := root.Navigator().(Observable); ok {
		r.rootListenerID = obs.AddListener(r.reportRouteShown)
	}

	if err := root.Start(); err != nil {
		slog.Error("failed to start root flow", "flow", root.Domain().Name(), "error", err)
		return err
	}
	r.reportRouteShown()
	return nil
}

// Root returns the root coordinator
func (r *Router) Root() *Coordinator {
	return r.root
}

// RootNavigator returns the root coordinator's navigator, nil before Start
func (r *Router) RootNavigator() Navigator {
	if r.root == nil {
		return nil
	}
	return r.root.Navigator()
}

// CurrentFlow returns the deepest live coordinator, nil when no flow is running
func (r *Router) CurrentFlow() *Coordinator {
	c := r.root
	if c == nil || c.Stopped() {
		return nil
	}
	for c.Child() != nil {
		c = c.Child()
	}
	return c
}

// Depth returns the number of live coordinators from the root to the current flow
func (r *Router) Depth() int {
	c := r.CurrentFlow()
	if c == nil {
		return 0
	}
	return c.Depth() + 1
}

// VisibleScreen returns the screen the user currently sees
func (r *Router) VisibleScreen() *Screen {
	return VisibleScreen(r.RootNavigator())
}

// Show displays route in the current flow; the flow must claim it
func (r *Router) Show(route model.Route, params map[string]interface{}) error {
	flow := r.CurrentFlow()
	if flow == nil {
		return r.fail(routeError("show", route, ErrStopped))
	}
	if !flow.CanShow(route) {
		return r.fail(routeError("show", route, ErrRouteNotInDomain))
	}
	err := flow.Show(route, params)
	r.reportRouteShown()
	return r.fail(err)
}

// Switch goes to route from the current flow, climbing to whichever flow claims it
func (r *Router) Switch(route model.Route, params map[string]interface{}) error {
	flow := r.CurrentFlow()
	if flow == nil {
		return r.fail(routeError("switch", route, ErrStopped))
	}
	err := flow.Switch(route, params)
	r.reportRouteShown()
	return r.fail(err)
}

// NavigateBack goes one step back in the current flow
func (r *Router) NavigateBack() {
	if flow := r.CurrentFlow(); flow != nil {
		flow.NavigateBack()
		r.reportRouteShown()
	}
}

// NavigateBackToRoot returns the current flow to its first screen
func (r *Router) NavigateBackToRoot() {
	if flow := r.CurrentFlow(); flow != nil {
		flow.NavigateBackToRoot()
		r.reportRouteShown()
	}
}

// NavigateBackTo returns the current flow to the topmost screen matching route
func (r *Router) NavigateBackTo(route model.Route) {
	if flow := r.CurrentFlow(); flow != nil {
		flow.NavigateBackTo(route)
		r.reportRouteShown()
	}
}

// Stop finishes the current flow; its parent reconciles the screens it leaves behind
func (r *Router) Stop() {
	if flow := r.CurrentFlow(); flow != nil {
		flow.Stop()
		r.reportRouteShown()
	}
}

// Quit finishes the whole flow tree
func (r *Router) Quit() {
	if r.root != nil {
		r.root.Stop()
	}
}

func (r *Router) rootFinished() {
	slog.Info("root flow finished")
	r.unobserveRoot()
	if r.onFinished != nil {
		r.onFinished()
	}
}

func (r *Router) unobserveRoot() {
	if r.root == nil || r.rootListenerID == 0 {
		return
	}
	if obs, ok := r.root.Navigator().(Observable); ok {
		obs.RemoveListener(r.rootListenerID)
	}
	r.rootListenerID = 0
}

// reportRouteShown fires onRouteShown when the visible screen instance changed
func (r *Router) reportRouteShown() {
	screen := r.VisibleScreen()
	if screen == nil || screen.ID == r.lastShownID {
		return
	}
	r.lastShownID = screen.ID
	slog.Debug("route shown", "route", screen.Route.String(), "screen", screen.ID, "depth", r.Depth())
	if r.onRouteShown != nil {
		r.onRouteShown(screen.Route)
	}
}

func (r *Router) fail(err error) error {
	if err != nil {
		slog.Error("navigation failed", "error", err)
	}
	return err
}
