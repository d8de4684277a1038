package controller

import (
	"github.com/rivo/tview"
)

// View and ActionHandler interfaces decouple controllers from view implementations.

// FocusSettable is implemented by views that need focus management for their subcomponents.
// This is used to wire up tview focus changes when the view needs to transfer focus to
// different primitives (e.g., form fields).
type FocusSettable interface {
	SetFocusSetter(setter func(p tview.Primitive))
}

// View represents a renderable screen with its action registry
type View interface {
	// GetPrimitive returns the tview primitive for this view
	GetPrimitive() tview.Primitive

	// GetActionRegistry returns the actions available in this view
	GetActionRegistry() *ActionRegistry

	// OnFocus is called when the view becomes visible
	OnFocus()

	// OnBlur is called when the view is covered or removed
	OnBlur()
}

// ActionHandler is a view that handles its own actions
type ActionHandler interface {
	View

	// HandleAction runs the action; returns false if the view does not handle it
	HandleAction(id ActionID) bool
}

// InputCapturer is a view with text inputs that consume printable keys while focused
type InputCapturer interface {
	// IsCapturingInput returns whether a text input currently has focus
	IsCapturingInput() bool
}

// Reloader re-reads data from its backing storage
type Reloader interface {
	Reload() error
}

// ExternalDismisser is a navigator that can drop its presented navigator the way a
// platform gesture would
type ExternalDismisser interface {
	DismissExternally() bool
}
