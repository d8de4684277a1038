package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rivo/tview"
)

// MarkdownRenderer turns markdown into tview-tagged text
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer renders markdown with glamour and converts its ANSI output for tview
type GlamourRenderer struct {
	tr *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer for the given theme ("dark" or "light")
func NewGlamourRenderer(theme string, wrap int) (*GlamourRenderer, error) {
	if theme != "light" {
		theme = "dark"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStylePath(theme),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &GlamourRenderer{tr: tr}, nil
}

// Render renders markdown
func (r *GlamourRenderer) Render(markdown string) (string, error) {
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return tview.TranslateANSI(out), nil
}

// FallbackRenderer shows markdown as plain text
type FallbackRenderer struct{}

// Render escapes markdown so tview does not read brackets as tags
func (FallbackRenderer) Render(markdown string) (string, error) {
	return tview.Escape(strings.TrimSpace(markdown)), nil
}
