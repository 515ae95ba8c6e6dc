// Command tuidemo runs the window core's sample application against a
// real terminal: bubbletea supplies raw-mode lifecycle and delivers
// resize/key/mouse messages, term.ANSITerm translates them into the
// core's own event vocabulary, and window.Root drives the retained,
// flush-ticked repaint loop. bubbletea's own Elm-architecture
// Update/View is not where the UI lives; this program's tea.Model
// only forwards messages in and renders whatever ANSITerm already
// wrote out.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elvisnm/tuiwin/internal/demo"
	"github.com/elvisnm/tuiwin/term"
)

type model struct {
	term *term.ANSITerm
	demo *demo.Demo
}

func newModel() model {
	lines, cols := term.SizeFromFd(os.Stdout.Fd())
	at := term.NewANSI(os.Stdout, nil, lines, cols)
	d := demo.New(at)
	return model{term: at, demo: d}
}

func (m model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.WindowSizeMsg, tea.KeyMsg, tea.MouseMsg:
		m.term.Dispatch(msg)
		m.demo.Flush()
	}
	if m.demo.Quit {
		return m, tea.Quit
	}
	return m, nil
}

// View is intentionally empty: ANSITerm writes the repainted cells
// directly to os.Stdout during Flush, outside bubbletea's own
// string-diffing render cycle. Returning "" avoids bubbletea layering
// a second render pass over output the core already produced.
func (m model) View() string { return "" }

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "tuidemo:", err)
		os.Exit(1)
	}
}
