package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/elvisnm/tuiwin/pen"
)

// Panel colors, in the same spirit as a host application's own
// lazygit-inspired palette: a muted border for an unfocused pane, a
// brighter one for the focused pane, and a dedicated color for
// transient status/hint text.
var (
	borderColor      = lipgloss.Color("240")
	focusBorderColor = lipgloss.Color("34")
	hintColor        = lipgloss.Color("214")
	statusBgColor    = lipgloss.Color("236")
)

// PanePen is the foreground applied to an unfocused pane.
var PanePen = pen.New(lipgloss.NewStyle().Foreground(borderColor))

// FocusPanePen is PanePen's focused counterpart.
var FocusPanePen = pen.New(lipgloss.NewStyle().Foreground(focusBorderColor))

// StatusPen styles the status bar's background strip.
var StatusPen = pen.New(lipgloss.NewStyle().Background(statusBgColor))

// HintPen styles the key-hint text drawn inside the status bar.
var HintPen = pen.New(lipgloss.NewStyle().Foreground(hintColor).Background(statusBgColor))

// PopupPen styles the help popup's body.
var PopupPen = pen.New(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")))

// BorderRunes draws a simple rounded frame around a pane, one
// lipgloss.RoundedBorder glyph per side, matching the corner/edge
// characters a host application's PanelStyle border would use.
var BorderRunes = lipgloss.RoundedBorder()
