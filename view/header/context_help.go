package header

import (
	"strings"

	"github.com/boolean-maybe/kiss/config"
	"github.com/boolean-maybe/kiss/controller"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// cellData holds data for a single cell in the action grid
type cellData struct {
	key       string
	label     string
	keyLen    int
	labelLen  int
	colorType int
}

const (
	colorTypeGlobal = 0
	colorTypeView   = 1
)

// ContextHelpWidget displays keyboard shortcuts in a grid: global actions first, then the view's
type ContextHelpWidget struct {
	*tview.TextView
	width int // calculated visible width of content
}

// NewContextHelpWidget creates a new context help display widget
func NewContextHelpWidget() *ContextHelpWidget {
	tv := tview.NewTextView()
	tv.SetDynamicColors(true)
	tv.SetTextAlign(tview.AlignLeft)
	tv.SetWrap(false)

	return &ContextHelpWidget{TextView: tv}
}

// GetWidth returns the current calculated width of the content
func (chw *ContextHelpWidget) GetWidth() int {
	return chw.width
}

// SetActions renders global and view actions; returns the visible width
func (chw *ContextHelpWidget) SetActions(globalActions, viewActions []controller.Action) int {
	var global []controller.Action
	for _, a := range globalActions {
		if a.ShowInHeader {
			global = append(global, a)
		}
	}
	view := viewOnlyActions(viewActions, global)

	numRows := HeaderHeight
	globalCols := (len(global) + numRows - 1) / numRows
	viewCols := (len(view) + numRows - 1) / numRows
	totalCols := globalCols + viewCols
	if totalCols == 0 {
		chw.SetText("")
		chw.width = 0
		return 0
	}

	grid := make([][]cellData, numRows)
	for i := range grid {
		grid[i] = make([]cellData, totalCols)
	}
	fillGridSection(grid, global, 0, numRows, colorTypeGlobal)
	fillGridSection(grid, view, globalCols, numRows, colorTypeView)

	maxKeyLen := columnMax(grid, func(c cellData) int { return c.keyLen })
	maxLabelLen := columnMax(grid, func(c cellData) int { return c.labelLen })

	lines := make([]string, numRows)
	for row := range grid {
		lines[row] = buildGridRow(grid[row], maxKeyLen, maxLabelLen)
	}
	chw.SetText(" " + strings.Join(lines, "\n "))

	chw.width = 0
	for _, line := range lines {
		if w := tview.TaggedStringWidth(line); w > chw.width {
			chw.width = w
		}
	}
	chw.width++
	return chw.width
}

// fillGridSection fills a section of the grid column by column
func fillGridSection(grid [][]cellData, actions []controller.Action, colOffset, numRows, colorType int) {
	for i, action := range actions {
		key := FormatKeyBinding(action.Key, action.Rune, action.Modifier)
		grid[i%numRows][colOffset+i/numRows] = cellData{
			key:       key,
			label:     action.Label,
			keyLen:    runewidth.StringWidth(key) + 2,
			labelLen:  runewidth.StringWidth(action.Label),
			colorType: colorType,
		}
	}
}

// columnMax finds the maximum value for each column using the provided extractor function
func columnMax(grid [][]cellData, extractor func(cellData) int) []int {
	out := make([]int, len(grid[0]))
	for _, row := range grid {
		for col, cell := range row {
			if v := extractor(cell); v > out[col] {
				out[col] = v
			}
		}
	}
	return out
}

// buildGridRow builds a single row of the grid output
func buildGridRow(row []cellData, maxKeyLen, maxLabelLen []int) string {
	var line strings.Builder
	last := len(row) - 1

	for col, cell := range row {
		if cell.key == "" {
			if col < last {
				line.WriteString(strings.Repeat(" ", maxKeyLen[col]+1+maxLabelLen[col]+HeaderColumnSpacing))
			}
			continue
		}

		keyColor, labelColor := cellColors(cell.colorType)
		line.WriteString(keyColor + "<" + tview.Escape(cell.key) + ">" + labelColor)
		line.WriteString(strings.Repeat(" ", maxKeyLen[col]-cell.keyLen))
		line.WriteString(" ")
		line.WriteString(cell.label)

		if col < last {
			line.WriteString(strings.Repeat(" ", maxLabelLen[col]-cell.labelLen+HeaderColumnSpacing))
		}
	}
	return line.String()
}

// cellColors returns the key and label color tags; view actions stand out from global ones
func cellColors(colorType int) (string, string) {
	colors := config.GetColors()
	if colorType == colorTypeView {
		return colors.HeaderViewKeyBinding, colors.HeaderViewKeyText
	}
	return colors.HeaderKeyBinding, colors.HeaderKeyText
}
