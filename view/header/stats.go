package header

import (
	"slices"
	"strings"
	"sync"

	"github.com/boolean-maybe/kiss/config"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

type stat struct {
	key      string
	value    string
	priority int
}

// StatsWidget displays named values (version, favourites, flow depth), lowest priority first
type StatsWidget struct {
	*tview.TextView

	mu    sync.RWMutex
	stats []stat // kept ordered by priority, then key
}

// NewStatsWidget creates a new stats display widget
func NewStatsWidget() *StatsWidget {
	tv := tview.NewTextView()
	tv.SetDynamicColors(true)
	tv.SetTextAlign(tview.AlignLeft)
	tv.SetWrap(false)
	return &StatsWidget{TextView: tv}
}

// SetStat registers or updates a stat. Lower priority values display higher.
// Returns false when the widget already shows HeaderHeight stats and key is new.
func (sw *StatsWidget) SetStat(key, value string, priority int) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if i := sw.indexOf(key); i >= 0 {
		sw.stats = slices.Delete(sw.stats, i, i+1)
	} else if len(sw.stats) >= HeaderHeight {
		return false
	}

	next := stat{key: key, value: value, priority: priority}
	at, _ := slices.BinarySearchFunc(sw.stats, next, compareStats)
	sw.stats = slices.Insert(sw.stats, at, next)
	sw.render()
	return true
}

// Value returns a stat value
func (sw *StatsWidget) Value(key string) (string, bool) {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	if i := sw.indexOf(key); i >= 0 {
		return sw.stats[i].value, true
	}
	return "", false
}

func (sw *StatsWidget) indexOf(key string) int {
	return slices.IndexFunc(sw.stats, func(s stat) bool { return s.key == key })
}

func compareStats(a, b stat) int {
	if a.priority != b.priority {
		return a.priority - b.priority
	}
	return strings.Compare(a.key, b.key)
}

// render rewrites the text with values aligned after the widest key; caller holds the lock
func (sw *StatsWidget) render() {
	width := 0
	for _, s := range sw.stats {
		width = max(width, runewidth.StringWidth(s.key))
	}

	colors := config.GetColors()
	var b strings.Builder
	for i, s := range sw.stats {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(colors.HeaderInfoLabel + s.key + ":" + colors.HeaderInfoValue)
		b.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(s.key)+1))
		b.WriteString(tview.Escape(s.value))
	}
	sw.SetText(b.String())
}
