package models

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cats   key.Binding
	Dogs   key.Binding
	Cycle  key.Binding
	More   key.Binding
	Reset  key.Binding
	Events key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cats:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cats")),
		Dogs:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dogs")),
		Cycle:  key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "switch")),
		More:   key.NewBinding(key.WithKeys("m", "enter", " "), key.WithHelp("m", "more")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Events: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "events")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) footer() []key.Binding {
	return []key.Binding{k.Cats, k.Dogs, k.More, k.Reset, k.Events, k.Quit}
}
