package view

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"
	"github.com/boolean-maybe/kiss/model"
	"github.com/boolean-maybe/kiss/util/sysinfo"

	"github.com/rivo/tview"
)

const appInfoMarkdown = `# kiss %s

Keep your favourite assets close.

| | |
|---|---|
| Screen | %s |
| Opened | %s |
| Platform | %s |
| Terminal | %s |

Flows can be nested inline or on popups: try **e** and **p** on the favourites list.
Press **Esc** to close.
`

// AppInfoView describes the application; it is shown both as a flow and as a standalone popup
type AppInfoView struct {
	text     *tview.TextView
	registry *controller.ActionRegistry
}

// NewAppInfoView renders the app info page for route; info may be nil
func NewAppInfoView(renderer MarkdownRenderer, route model.Route, info *sysinfo.SystemInfo) *AppInfoView {
	colors := config.GetColors()

	opened := "as its own flow"
	if route.Matches(model.MainAppInfoStandalone) {
		opened = "as a popup screen"
	}
	platform, terminal := "unknown", "unknown"
	if info != nil {
		platform, terminal = info.Platform(), info.Terminal()
	}
	markdown := fmt.Sprintf(appInfoMarkdown, config.Version, model.ShortName(route), opened, platform, terminal)

	rendered, err := renderer.Render(markdown)
	if err != nil {
		slog.Warn("failed to render app info, showing plain text", "error", err)
		rendered, _ = FallbackRenderer{}.Render(markdown)
	}

	text := tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetText(rendered)
	text.SetBorder(true).SetTitle(" About ")
	text.SetBorderColor(colors.PopupBorder)
	text.SetTitleColor(colors.PopupTitle)

	return &AppInfoView{
		text:     text,
		registry: controller.AppInfoActions(),
	}
}

func (v *AppInfoView) GetPrimitive() tview.Primitive {
	return v.text
}

func (v *AppInfoView) GetActionRegistry() *controller.ActionRegistry {
	return v.registry
}

func (v *AppInfoView) OnFocus() {}

func (v *AppInfoView) OnBlur() {}

// Text returns the rendered page
func (v *AppInfoView) Text() string {
	return v.text.GetText(true)
}
