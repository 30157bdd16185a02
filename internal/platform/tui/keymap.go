package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a game in progress.
type KeyMap struct {
	Roll    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Roll, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Roll, k.Restart}, {k.Quit}}
}

// DefaultKeyMap returns default key bindings.
// Restart starts disabled and is enabled once someone wins.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Roll: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space/enter", "roll"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.setFinished(false)
	return k
}

// setFinished switches between the bindings usable during play and after a win.
func (k *KeyMap) setFinished(finished bool) {
	k.Roll.SetEnabled(!finished)
	k.Restart.SetEnabled(finished)
}
