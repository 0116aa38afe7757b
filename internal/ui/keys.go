package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	AddArm      key.Binding
	RemoveArm   key.Binding
	ClearArms   key.Binding
	ToggleTrail key.Binding
	Recenter    key.Binding
	Visualizer  key.Binding
	Spectrum    key.Binding
	Import      key.Binding
	Export      key.Binding
	Scope       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		AddArm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add arm")),
		RemoveArm:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "remove arm")),
		ClearArms:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove all")),
		ToggleTrail: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "trail")),
		Recenter:    key.NewBinding(key.WithKeys("c", "f11"), key.WithHelp("c", "recenter")),
		Visualizer:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "renderer")),
		Spectrum:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "spectrum")),
		Import:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import audio")),
		Export:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "export wav")),
		Scope:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "oscilloscope")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp covers arm editing; the rest is under "?".
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddArm, k.RemoveArm, k.ClearArms, k.ToggleTrail, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddArm, k.RemoveArm, k.ClearArms},
		{k.ToggleTrail, k.Recenter, k.Visualizer, k.Spectrum},
		{k.Import, k.Export, k.Scope},
		{k.Help, k.Quit},
	}
}

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}
