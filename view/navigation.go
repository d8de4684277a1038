package view

import (
	"github.com/boolean-maybe/kiss/model"
)

// Navigation is the part of the flow engine views are allowed to drive.
// Requests go to the current flow; controller.Router implements it.
type Navigation interface {
	Show(route model.Route, params map[string]interface{}) error
	Switch(route model.Route, params map[string]interface{}) error
	NavigateBack()
	Stop()
}
