package bootstrap

import (
	"fmt"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/flow"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/store"
	"github.com/boolean-maybe/kiss/util/sysinfo"
	"github.com/boolean-maybe/kiss/view"
)

// Navigation holds the flow engine and the objects that feed it.
type Navigation struct {
	Router      *controller.Router
	Root        *controller.Coordinator
	RootNav     *controller.ScreenStack
	Views       *view.ViewFactory
	InputRouter *controller.InputRouter
}

// BuildNavigation wires the router, view factory, flow domains and the unstarted root flow.
// Every route must be claimed by a domain; an unroutable route fails the build.
// schedule runs dismiss completions; reloader may be nil.
func BuildNavigation(
	cfg *config.Config,
	st store.Store,
	reloader controller.Reloader,
	schedule controller.Scheduler,
	info *sysinfo.SystemInfo,
) (*Navigation, error) {
	router := controller.NewRouter()

	views := view.NewViewFactory(st, router)
	views.SetSystemInfo(info)

	if err := controller.ValidateRoutes(flow.Domains(views), model.AllRoutes()); err != nil {
		return nil, fmt.Errorf("validate routes: %w", err)
	}

	rootNav := controller.NewScreenStack(controller.WithScheduler(schedule))
	root := controller.NewCoordinator(
		flow.NewMainFlow(views),
		rootNav,
		controller.WithNavigatorFactory(controller.NewScreenStackFactory(controller.WithScheduler(schedule))),
		controller.WithMaxFlowDepth(cfg.Navigation.MaxFlowDepth),
	)

	return &Navigation{
		Router:      router,
		Root:        root,
		RootNav:     rootNav,
		Views:       views,
		InputRouter: controller.NewInputRouter(router, reloader),
	}, nil
}
