package picker

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Repick  key.Binding
	History key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("Enter", "Done/Undo"),
		),
		Repick: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Pick again"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "History"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("Y", "Yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("N", "No"),
		),
	}
}
