package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// importLoadedMsg carries the contents of a user-selected import file.
// gen identifies the request that issued the read.
type importLoadedMsg struct {
	err  error
	data []byte
	gen  int
}

// readImportFile reads the file off the event loop and delivers the
// result tagged with the request generation.
func readImportFile(path string, gen int) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return importLoadedMsg{gen: gen, data: data, err: err}
	}
}
