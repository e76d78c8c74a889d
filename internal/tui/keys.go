package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Switch key.Binding
	Reload key.Binding
	Help   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// helpLine renders the short key legend for the status bar
func (k keyMap) helpLine() string {
	var line string
	for i, b := range []key.Binding{k.Switch, k.Reload, k.Help, k.Quit} {
		if i > 0 {
			line += "  "
		}
		h := b.Help()
		line += h.Key + " " + h.Desc
	}
	return line + "  ↑/↓ move"
}
