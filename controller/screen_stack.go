package controller

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/boolean-maybe/kiss/model"
)

// ScreenStack is the in-memory Navigator used by the terminal UI.
// Renderers observe it through listeners; changes on presented stacks are forwarded
// to the presenting stack so observing the root is enough to see the whole tree.
type ScreenStack struct {
	mu                sync.RWMutex
	screens           []*Screen
	presented         Navigator
	presentedListener int // listener ID on the presented stack, 0 if none
	onExternalDismiss func()
	style             model.PopupStyle
	schedule          Scheduler

	listeners      map[int]func()
	nextListenerID int
}

// StackOption configures a ScreenStack
type StackOption func(*ScreenStack)

// WithScheduler sets how dismiss completions are run (default: immediately)
func WithScheduler(s Scheduler) StackOption {
	return func(st *ScreenStack) {
		if s != nil {
			st.schedule = s
		}
	}
}

// WithStyle sets the presentation style of the stack
func WithStyle(style model.PopupStyle) StackOption {
	return func(st *ScreenStack) {
		st.style = style
	}
}

// NewScreenStack creates an empty stack
func NewScreenStack(opts ...StackOption) *ScreenStack {
	s := &ScreenStack{
		schedule:       Immediate,
		listeners:      make(map[int]func()),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewScreenStackFactory returns a NavigatorFactory producing stacks that share opts
func NewScreenStackFactory(opts ...StackOption) NavigatorFactory {
	return func(style model.PopupStyle) Navigator {
		withStyle := append(append([]StackOption{}, opts...), WithStyle(style))
		return NewScreenStack(withStyle...)
	}
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *ScreenStack) AddListener(listener func()) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *ScreenStack) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

func (s *ScreenStack) notifyListeners() {
	s.mu.RLock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// Push appends a screen
func (s *ScreenStack) Push(screen *Screen) {
	if screen == nil {
		return
	}
	s.mu.Lock()
	s.screens = append(s.screens, screen)
	s.mu.Unlock()
	slog.Debug("screen pushed", "screen", screen.String(), "style", s.style.String())
	s.notifyListeners()
}

// Pop removes and returns the top screen; nil when one screen or fewer remain
func (s *ScreenStack) Pop() *Screen {
	s.mu.Lock()
	if len(s.screens) <= 1 {
		s.mu.Unlock()
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	s.mu.Unlock()

	slog.Debug("screen popped", "screen", top.String())
	s.notifyListeners()
	return top
}

// PopTo removes every screen above the last occurrence of target
func (s *ScreenStack) PopTo(target *Screen) []*Screen {
	s.mu.Lock()
	i := indexOfScreen(s.screens, target)
	if i < 0 || i == len(s.screens)-1 {
		s.mu.Unlock()
		return nil
	}
	removed := s.truncateLocked(i + 1)
	s.mu.Unlock()

	slog.Debug("popped to screen", "screen", target.String(), "removed", len(removed))
	s.notifyListeners()
	return removed
}

// PopToRoot removes everything above the first screen
func (s *ScreenStack) PopToRoot() []*Screen {
	s.mu.Lock()
	if len(s.screens) <= 1 {
		s.mu.Unlock()
		return nil
	}
	removed := s.truncateLocked(1)
	s.mu.Unlock()

	slog.Debug("popped to root", "removed", len(removed))
	s.notifyListeners()
	return removed
}

func (s *ScreenStack) truncateLocked(n int) []*Screen {
	removed := make([]*Screen, len(s.screens)-n)
	copy(removed, s.screens[n:])
	for i := n; i < len(s.screens); i++ {
		s.screens[i] = nil
	}
	s.screens = s.screens[:n]
	return removed
}

// SetScreens replaces the whole sequence
func (s *ScreenStack) SetScreens(screens []*Screen) {
	s.mu.Lock()
	s.screens = make([]*Screen, 0, len(screens))
	for _, screen := range screens {
		if screen != nil {
			s.screens = append(s.screens, screen)
		}
	}
	count := len(s.screens)
	s.mu.Unlock()

	slog.Debug("screens replaced", "count", count)
	s.notifyListeners()
}

// Screens returns a copy of the sequence, bottom first
func (s *ScreenStack) Screens() []*Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Screen, len(s.screens))
	copy(out, s.screens)
	return out
}

// Top returns the last screen or nil
func (s *ScreenStack) Top() *Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of screens
func (s *ScreenStack) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.screens)
}

// Style returns the presentation style
func (s *ScreenStack) Style() model.PopupStyle {
	return s.style
}

// PresentedNavigator returns the presented navigator or nil
func (s *ScreenStack) PresentedNavigator() Navigator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presented
}

// Present shows n on top of this stack
func (s *ScreenStack) Present(n Navigator, onExternalDismiss func()) error {
	if n == nil {
		return fmt.Errorf("present: nil navigator")
	}

	s.mu.Lock()
	if s.presented != nil {
		s.mu.Unlock()
		slog.Warn("present refused, navigator already presenting", "style", n.Style().String())
		return ErrAlreadyPresenting
	}
	s.presented = n
	s.onExternalDismiss = onExternalDismiss
	s.mu.Unlock()

	// forward changes of the presented stack to our own observers
	if obs, ok := n.(Observable); ok {
		id := obs.AddListener(s.notifyListeners)
		s.mu.Lock()
		s.presentedListener = id
		s.mu.Unlock()
	}

	slog.Debug("navigator presented", "style", n.Style().String(), "top", n.Top().String())
	s.notifyListeners()
	return nil
}

// Dismiss removes the presented navigator; completion runs through the scheduler
func (s *ScreenStack) Dismiss(completion func()) {
	if s.detachPresented() != nil {
		slog.Debug("navigator dismissed")
		s.notifyListeners()
	}
	if completion != nil {
		s.schedule(completion)
	}
}

// DismissExternally removes the presented navigator the way a platform gesture would:
// no Dismiss call, the external-dismiss observer fires once. Returns false if nothing was presented.
func (s *ScreenStack) DismissExternally() bool {
	s.mu.Lock()
	observer := s.onExternalDismiss
	s.mu.Unlock()

	if s.detachPresented() == nil {
		return false
	}
	slog.Debug("navigator dismissed externally")
	if observer != nil {
		observer()
	}
	s.notifyListeners()
	return true
}

// detachPresented clears the presented slot and stops forwarding its changes
func (s *ScreenStack) detachPresented() Navigator {
	s.mu.Lock()
	presented := s.presented
	listenerID := s.presentedListener
	s.presented = nil
	s.presentedListener = 0
	s.onExternalDismiss = nil
	s.mu.Unlock()

	if presented != nil && listenerID != 0 {
		if obs, ok := presented.(Observable); ok {
			obs.RemoveListener(listenerID)
		}
	}
	return presented
}

// ensure ScreenStack implements Navigator
var _ Navigator = (*ScreenStack)(nil)
var _ Observable = (*ScreenStack)(nil)
