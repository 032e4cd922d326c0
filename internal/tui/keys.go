package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New     key.Binding
	UpDown  key.Binding
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Refresh key.Binding
	Filter  key.Binding
	Dismiss key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		New:     key.NewBinding(key.WithKeys("n", "+"), key.WithHelp("n", "new item")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Dismiss: key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "dismiss error"), key.WithDisabled()),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.UpDown, k.Open, k.Filter, k.Refresh, k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type detailKeyMap struct {
	keyMap
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k detailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
