package controller

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/model"

	"go.uber.org/atomic"
)

// Coordinator is a node of the flow tree. It owns a Navigator, at most one child
// coordinator, and a non-owning pointer to its parent. Navigation requests either
// resolve locally or climb to the parent (Switch).
//
// A child is either inline (shares this coordinator's navigator, its screens sit on top
// of ours) or on a popup (owns a navigator presented on ours).
//
// Not safe for concurrent use: all calls happen on the UI event loop.
type Coordinator struct {
	domain Domain
	nav    Navigator

	parent       *Coordinator
	child        *Coordinator
	childRoute   model.Route
	childOnPopup bool
	depth        int

	onFinished func()

	initialRoute model.Route
	hasInitial   bool
	floor        *Screen // first screen this coordinator put on nav
	anchor       *Screen // parent's top screen when this inline flow started

	newNavigator NavigatorFactory
	maxDepth     int

	queue      *presentQueue // shared by every coordinator on nav
	presentSeq uint64

	started bool
	stopped bool
}

// presentQueue sequences presents and dismissals on one navigator. An inline child
// shares its parent's queue, so a present from any flow on the navigator waits
// for a dismissal started by any other.
type presentQueue struct {
	dismissing atomic.Bool
	dismissSeq uint64
	pending    []func()
}

func (q *presentQueue) enqueue(op func()) {
	q.pending = append(q.pending, op)
}

func (q *presentQueue) completed(seq uint64) {
	if seq != q.dismissSeq || !q.dismissing.Load() {
		slog.Debug("late dismiss completion ignored")
		return
	}
	q.dismissing.Store(false)
	q.drain()
}

// drain runs queued operations until one starts another dismissal
func (q *presentQueue) drain() {
	for len(q.pending) > 0 && !q.dismissing.Load() {
		op := q.pending[0]
		q.pending = q.pending[1:]
		op()
	}
}

// CoordinatorOption configures a Coordinator
type CoordinatorOption func(*Coordinator)

// WithNavigatorFactory sets the factory used for popup navigators
func WithNavigatorFactory(f NavigatorFactory) CoordinatorOption {
	return func(c *Coordinator) {
		if f != nil {
			c.newNavigator = f
		}
	}
}

// WithMaxFlowDepth bounds the height of the coordinator tree and of switch delegation
func WithMaxFlowDepth(n int) CoordinatorOption {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// NewCoordinator creates an unstarted coordinator for domain, bound to nav.
// Children built by a Domain inherit the navigator factory and depth bound of their parent.
func NewCoordinator(domain Domain, nav Navigator, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		domain:   domain,
		nav:      nav,
		queue:    &presentQueue{},
		maxDepth: config.DefaultMaxFlowDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Domain returns the route domain of the flow
func (c *Coordinator) Domain() Domain {
	return c.domain
}

// Navigator returns the navigator the flow operates on
func (c *Coordinator) Navigator() Navigator {
	return c.nav
}

// Parent returns the parent coordinator, nil at the root
func (c *Coordinator) Parent() *Coordinator {
	return c.parent
}

// Child returns the live child coordinator or nil
func (c *Coordinator) Child() *Coordinator {
	return c.child
}

// ChildOnPopup reports whether the live child owns a presented navigator
func (c *Coordinator) ChildOnPopup() bool {
	return c.child != nil && c.childOnPopup
}

// Depth returns the distance from the root (root = 0)
func (c *Coordinator) Depth() int {
	return c.depth
}

// InitialRoute returns the first route the flow showed
func (c *Coordinator) InitialRoute() (model.Route, bool) {
	return c.initialRoute, c.hasInitial
}

// Floor returns the first screen the flow put on its navigator
func (c *Coordinator) Floor() *Screen {
	return c.floor
}

// Started reports whether Start has been called
func (c *Coordinator) Started() bool {
	return c.started
}

// Stopped reports whether the flow is finished
func (c *Coordinator) Stopped() bool {
	return c.stopped
}

// Dismissing reports whether a popup dismissal is in flight
func (c *Coordinator) Dismissing() bool {
	return c.queue.dismissing.Load()
}

// SetOnFinished registers the callback invoked once when the flow stops
func (c *Coordinator) SetOnFinished(fn func()) {
	c.onFinished = fn
}

// CanShow reports whether the route belongs to this flow
func (c *Coordinator) CanShow(route model.Route) bool {
	return c.domain.CanShow(route)
}

// Start shows the domain's initial route. Calling it again is a no-op.
func (c *Coordinator) Start() error {
	route := c.domain.InitialRoute()
	if c.stopped {
		return routeError("start", route, ErrStopped)
	}
	if c.started {
		return nil
	}
	c.started = true

	slog.Debug("flow started", "flow", c.domain.Name(), "route", route.String(), "depth", c.depth)
	if err := c.Show(route, nil); err != nil {
		return fmt.Errorf("start flow %s: %w", c.domain.Name(), err)
	}
	return nil
}

// Show displays route in this flow: a pushed screen, a popup screen, or a child flow
// (inline or on a popup) depending on the route's shape.
func (c *Coordinator) Show(route model.Route, params map[string]interface{}) error {
	if c.stopped {
		return routeError("show", route, ErrStopped)
	}
	if !c.domain.CanShow(route) {
		slog.Debug("route not in flow domain", "flow", c.domain.Name(), "route", route.String())
		return routeError("show", route, ErrRouteNotInDomain)
	}

	var err error
	switch {
	case route.Flow && route.IsPopup():
		err = c.showPopupFlow(route, params)
	case route.Flow:
		err = c.showInlineFlow(route, params)
	case route.IsPopup():
		err = c.showPopupScreens(route, params)
	default:
		err = c.showScreens(route, params)
	}
	if err != nil {
		return err
	}

	if !c.hasInitial {
		c.initialRoute = route
		c.hasInitial = true
	}
	return nil
}

func (c *Coordinator) makeScreens(route model.Route, params map[string]interface{}) ([]*Screen, error) {
	screens, err := c.domain.MakeScreens(route, params)
	if err != nil {
		return nil, routeError("show", route, err)
	}
	if len(screens) == 0 {
		return nil, routeError("show", route, ErrNoScreens)
	}
	return screens, nil
}

func (c *Coordinator) showScreens(route model.Route, params map[string]interface{}) error {
	screens, err := c.makeScreens(route, params)
	if err != nil {
		return err
	}

	// our screens go on top of the inline child's; the child is finished
	if c.child != nil && !c.childOnPopup {
		c.releaseChild()
	}

	if len(screens) == 1 {
		c.nav.Push(screens[0])
	} else {
		c.nav.SetScreens(append(c.nav.Screens(), screens...))
	}
	if c.floor == nil {
		c.floor = screens[0]
	}

	slog.Debug("route shown", "flow", c.domain.Name(), "route", route.String(), "screens", len(screens))
	return nil
}

func (c *Coordinator) showPopupScreens(route model.Route, params map[string]interface{}) error {
	screens, err := c.makeScreens(route, params)
	if err != nil {
		return err
	}

	// a popup child loses its surface to the new popup
	if c.child != nil && c.childOnPopup {
		c.releaseChild()
	}

	// only one screen is visible on a popup
	popup := c.newPopupNavigator(route.Popup)
	popup.Push(screens[len(screens)-1])

	c.presentSequenced(popup, func() {
		slog.Debug("popup dismissed externally", "flow", c.domain.Name(), "route", route.String())
	})
	slog.Debug("route shown on popup", "flow", c.domain.Name(), "route", route.String(), "style", route.Popup.String())
	return nil
}

func (c *Coordinator) showInlineFlow(route model.Route, params map[string]interface{}) error {
	if c.child != nil {
		c.releaseChild()
	}

	anchor := c.nav.Top()
	child, err := c.domain.MakeFlow(route, c.nav, params)
	if err != nil {
		return routeError("show", route, err)
	}
	if err := c.attach(child, route, false); err != nil {
		return err
	}
	child.anchor = anchor
	child.onFinished = func() {
		if c.child != child {
			return
		}
		c.child = nil
		if c.nav.PresentedNavigator() != nil {
			c.dismissPresented(nil)
		}
		if anchor != nil {
			c.nav.PopTo(anchor)
		}
	}

	if err := child.Start(); err != nil {
		c.child = nil
		child.detach()
		if anchor != nil {
			c.nav.PopTo(anchor)
		}
		return routeError("show", route, err)
	}

	slog.Debug("inline flow shown", "flow", c.domain.Name(), "child", child.domain.Name(), "route", route.String())
	return nil
}

func (c *Coordinator) showPopupFlow(route model.Route, params map[string]interface{}) error {
	if c.child != nil {
		c.releaseChild()
	}

	popup := c.newPopupNavigator(route.Popup)
	child, err := c.domain.MakeFlow(route, popup, params)
	if err != nil {
		return routeError("show", route, err)
	}
	if err := c.attach(child, route, true); err != nil {
		return err
	}
	child.onFinished = func() {
		if c.child != child {
			return
		}
		c.child = nil
		c.childOnPopup = false
		c.presentSeq++ // drop a present still queued for this child
		if c.nav.PresentedNavigator() == popup {
			c.dismissPresented(nil)
		}
	}

	if err := child.Start(); err != nil {
		c.child = nil
		c.childOnPopup = false
		child.detach()
		return routeError("show", route, err)
	}

	c.presentSequenced(popup, func() {
		if c.child != child {
			slog.Debug("stale external dismiss ignored", "flow", c.domain.Name(), "route", route.String())
			return
		}
		slog.Debug("popup flow dismissed externally", "flow", c.domain.Name(), "child", child.domain.Name())
		c.child = nil
		c.childOnPopup = false
		child.detach()
	})

	slog.Debug("popup flow shown", "flow", c.domain.Name(), "child", child.domain.Name(), "route", route.String())
	return nil
}

func (c *Coordinator) newPopupNavigator(style model.PopupStyle) Navigator {
	if c.newNavigator != nil {
		return c.newNavigator(style)
	}
	return NewScreenStack(WithStyle(style))
}

// attach links a freshly built child into the tree
func (c *Coordinator) attach(child *Coordinator, route model.Route, onPopup bool) error {
	if child == nil {
		return routeError("show", route, ErrUnsupportedRoute)
	}
	depth := c.depth + 1
	if depth >= c.maxDepth {
		slog.Error("flow depth exceeded", "flow", c.domain.Name(), "route", route.String(), "max", c.maxDepth)
		return routeError("show", route, ErrFlowDepthExceeded)
	}

	child.parent = c
	child.depth = depth
	child.maxDepth = c.maxDepth
	if child.newNavigator == nil {
		child.newNavigator = c.newNavigator
	}
	if child.nav == c.nav {
		child.queue = c.queue
	}

	c.child = child
	c.childRoute = route
	c.childOnPopup = onPopup
	return nil
}

// releaseChild drops the live child without running its onFinished, and removes
// whatever it put on screen
func (c *Coordinator) releaseChild() {
	child := c.child
	if child == nil {
		return
	}
	onPopup := c.childOnPopup
	c.child = nil
	c.childOnPopup = false
	child.detach()

	if onPopup {
		c.presentSeq++
		if c.nav.PresentedNavigator() == child.nav {
			c.dismissPresented(nil)
		}
	} else {
		if c.nav.PresentedNavigator() != nil {
			c.dismissPresented(nil)
		}
		if child.anchor != nil {
			c.nav.PopTo(child.anchor)
		}
	}
	slog.Debug("child flow released", "flow", c.domain.Name(), "child", child.domain.Name())
}

// stopChild stops the live child; its onFinished reconciles our navigator
func (c *Coordinator) stopChild() {
	child := c.child
	if child == nil {
		return
	}
	child.Stop()
	if c.child == child {
		c.child = nil
		c.childOnPopup = false
	}
}

// Stop finishes the flow: stops the child, then runs onFinished once.
// Subsequent calls are no-ops.
func (c *Coordinator) Stop() {
	if c.stopped {
		slog.Debug("stop ignored, flow already stopped", "flow", c.domain.Name())
		return
	}
	c.stopped = true

	if c.child != nil {
		c.child.Stop()
	}
	c.child = nil
	c.childOnPopup = false
	c.dropQueued()

	slog.Debug("flow stopped", "flow", c.domain.Name(), "depth", c.depth)
	if fn := c.onFinished; fn != nil {
		c.onFinished = nil
		fn()
	}
}

// detach stops the subtree without running onFinished (the parent already reconciled)
func (c *Coordinator) detach() {
	if c.stopped {
		return
	}
	c.stopped = true
	if child := c.child; child != nil {
		c.child = nil
		child.detach()
	}
	c.childOnPopup = false
	c.dropQueued()
	c.onFinished = nil
	slog.Debug("flow detached", "flow", c.domain.Name(), "depth", c.depth)
}

// dropQueued clears the navigator's queue when this flow owns it; an inline child
// leaves its parent's queue alone and its own queued operations see it stopped
func (c *Coordinator) dropQueued() {
	if c.parent == nil || c.parent.queue != c.queue {
		c.queue.pending = nil
	}
}

// navRoot returns the outermost coordinator operating on our navigator
func (c *Coordinator) navRoot() *Coordinator {
	n := c
	for n.parent != nil && n.parent.nav == n.nav {
		n = n.parent
	}
	return n
}

// NavigateBack dismisses our popup if one is presented, finishes the flow when its
// first screen is on top, and pops one screen otherwise.
func (c *Coordinator) NavigateBack() {
	if c.stopped {
		return
	}
	if c.queue.dismissing.Load() {
		slog.Debug("back ignored, dismiss in flight", "flow", c.domain.Name())
		return
	}
	if c.nav.PresentedNavigator() != nil {
		c.dismissPresented(nil)
		return
	}
	if c.atFloor() {
		c.Stop()
		return
	}
	if c.nav.Pop() == nil {
		c.Stop()
		return
	}
	c.reconcileChild()
}

// NavigateBackToRoot pops back to the flow's first screen, dismissing our popup
func (c *Coordinator) NavigateBackToRoot() {
	c.navigateBackToRoot(true)
}

// NavigateBackTo pops back to the topmost screen of this flow matching route.
// No-op when route is on the presented popup or not on this flow's stack.
func (c *Coordinator) NavigateBackTo(route model.Route) {
	c.navigateBackTo(route, true)
}

func (c *Coordinator) navigateBackTo(route model.Route, dismissPopup bool) {
	if c.stopped {
		return
	}
	if presentedTopMatches(c.nav, route) {
		slog.Debug("back-to ignored, route on presented popup", "flow", c.domain.Name(), "route", route.String())
		return
	}
	target := c.findOwn(route)
	if target == nil {
		slog.Debug("back-to ignored, route not on flow stack", "flow", c.domain.Name(), "route", route.String())
		return
	}
	c.popToScreen(target, dismissPopup)
}

func (c *Coordinator) navigateBackToRoot(dismissPopup bool) {
	if c.stopped || !c.hasInitial {
		return
	}
	if presentedTopMatches(c.nav, c.initialRoute) {
		return
	}
	target := c.floor
	if target == nil || indexOfScreen(c.nav.Screens(), target) < 0 {
		target = c.findOwn(c.initialRoute)
	}
	if target == nil {
		return
	}
	c.popToScreen(target, dismissPopup)
}

func (c *Coordinator) popToScreen(target *Screen, dismissPopup bool) {
	if dismissPopup && c.nav.PresentedNavigator() != nil {
		c.dismissPresented(nil)
	}
	c.nav.PopTo(target)
	c.reconcileChild()
}

// atFloor reports whether the top of nav is this flow's first screen (or nothing of ours is left)
func (c *Coordinator) atFloor() bool {
	top := c.nav.Top()
	if top == nil {
		return true
	}
	if c.floor != nil {
		return top == c.floor || indexOfScreen(c.nav.Screens(), c.floor) < 0
	}
	return c.hasInitial && top.Route.Matches(c.initialRoute)
}

// findOwn returns the topmost screen matching route between this flow's floor and
// the floor of its inline child
func (c *Coordinator) findOwn(route model.Route) *Screen {
	screens := c.nav.Screens()
	lo := 0
	if c.floor != nil {
		if lo = indexOfScreen(screens, c.floor); lo < 0 {
			return nil
		}
	}
	hi := len(screens) - 1
	if child := c.child; child != nil && !c.childOnPopup && child.floor != nil {
		if i := indexOfScreen(screens, child.floor); i >= 0 {
			hi = i - 1
		}
	}
	for i := hi; i >= lo; i-- {
		if screens[i].Route.Matches(route) {
			return screens[i]
		}
	}
	return nil
}

// showsOwn reports whether route is already on this flow's stack or presented popup
func (c *Coordinator) showsOwn(route model.Route) bool {
	return c.findOwn(route) != nil || presentedTopMatches(c.nav, route)
}

// reconcileChild detaches an inline child whose screens were popped away underneath it
func (c *Coordinator) reconcileChild() {
	child := c.child
	if child == nil || c.childOnPopup || child.floor == nil {
		return
	}
	if indexOfScreen(c.nav.Screens(), child.floor) >= 0 {
		return
	}
	c.child = nil
	child.detach()
	slog.Debug("inline flow removed by back navigation", "flow", c.domain.Name(), "child", child.domain.Name())
}

// Switch goes to route wherever it lives in the tree: the nearest ancestor (or self)
// that can show it either navigates back to an existing screen or shows it afresh.
// An ancestor reached by delegation drops the requesting child flow and shows the
// route on top of its own stack.
func (c *Coordinator) Switch(route model.Route, params map[string]interface{}) error {
	node := c
	for hops := 0; ; hops++ {
		if hops > c.maxDepth {
			slog.Error("switch delegation exceeded depth", "route", route.String(), "max", c.maxDepth)
			return routeError("switch", route, ErrFlowDepthExceeded)
		}
		if node.stopped {
			return routeError("switch", route, ErrStopped)
		}
		if node.domain.CanShow(route) {
			return node.switchLocal(route, params, node != c)
		}
		if node.parent == nil {
			slog.Error("no flow can show route", "route", route.String(), "from", c.domain.Name())
			return routeError("switch", route, ErrUnroutable)
		}
		node = node.parent
	}
}

func (c *Coordinator) switchLocal(route model.Route, params map[string]interface{}, delegated bool) error {
	if c.queue.dismissing.Load() {
		slog.Debug("switch queued behind dismiss", "flow", c.domain.Name(), "route", route.String())
		c.queue.enqueue(func() {
			if c.stopped {
				slog.Debug("queued switch dropped, flow stopped", "flow", c.domain.Name(), "route", route.String())
				return
			}
			if err := c.switchLocal(route, params, delegated); err != nil {
				slog.Error("queued switch failed", "flow", c.domain.Name(), "route", route.String(), "error", err)
			}
		})
		return nil
	}

	// the flow for this route is already running: bring it back to its first screen
	if c.child != nil && route.Flow && c.childRoute.Matches(route) {
		c.child.navigateBackToRoot(true)
		slog.Debug("switch reused running flow", "flow", c.domain.Name(), "route", route.String())
		return nil
	}

	if c.showsOwn(route) {
		c.noteReuse(route)
		c.stopChild()
		c.navigateBackTo(route, true)
		slog.Debug("switch navigated back", "flow", c.domain.Name(), "route", route.String())
		return nil
	}

	if delegated {
		c.stopChild()
		slog.Debug("switch delegated from child flow", "flow", c.domain.Name(), "route", route.String())
		return c.Show(route, params)
	}

	if !route.IsPopup() && c.child != nil && c.childOnPopup {
		c.stopChild()
	}
	c.navigateBackToRoot(false)
	return c.Show(route, params)
}

// noteReuse logs when the screen a switch returns to carries a different payload
// than the one requested; routes match by name, and the screen keeps its own
func (c *Coordinator) noteReuse(route model.Route) {
	screen := c.findOwn(route)
	if screen == nil {
		if p := c.nav.PresentedNavigator(); p != nil {
			screen = p.Top()
		}
	}
	if screen == nil || screen.Route.Arg == route.Arg {
		return
	}
	slog.Info("switch reused screen with a different payload",
		"flow", c.domain.Name(), "screen", screen.String(), "requested", route.Arg)
}

// dismissPresented dismisses the presented navigator and runs next once it is gone.
// Requests made while a dismissal is in flight are coalesced into it.
func (c *Coordinator) dismissPresented(next func()) {
	q := c.queue
	if next != nil {
		q.enqueue(next)
	}
	if q.dismissing.Load() {
		slog.Debug("dismiss already in flight", "flow", c.domain.Name())
		return
	}

	presented := c.nav.PresentedNavigator()
	if presented == nil {
		q.drain()
		return
	}
	c.detachPopupChild(presented)

	q.dismissing.Store(true)
	q.dismissSeq++
	seq := q.dismissSeq
	c.nav.Dismiss(func() {
		q.completed(seq)
	})
}

// detachPopupChild drops the flow living on presented, whichever coordinator on our
// navigator started it
func (c *Coordinator) detachPopupChild(presented Navigator) {
	for n := c.navRoot(); n != nil && n.child != nil; n = n.child {
		if !n.childOnPopup {
			continue
		}
		if child := n.child; child.nav == presented {
			n.child = nil
			n.childOnPopup = false
			child.detach()
		}
		return
	}
}

// presentSequenced presents n once nothing else is presented on our navigator.
// Only this flow's latest request survives; its older queued presents are dropped.
func (c *Coordinator) presentSequenced(n Navigator, onExternalDismiss func()) {
	c.presentSeq++
	seq := c.presentSeq

	var op func()
	op = func() {
		if c.stopped || seq != c.presentSeq {
			slog.Debug("queued present dropped", "flow", c.domain.Name())
			return
		}
		if c.nav.PresentedNavigator() != nil {
			c.dismissPresented(op)
			return
		}
		if err := c.nav.Present(n, onExternalDismiss); err != nil {
			slog.Error("present failed", "flow", c.domain.Name(), "error", err)
		}
	}

	if c.queue.dismissing.Load() {
		c.queue.enqueue(op)
		return
	}
	op()
}
