package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Flip    key.Binding
	Correct key.Binding
	Wrong   key.Binding
	Restart key.Binding
	Review  key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Flip: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "flip"),
		),
		Correct: key.NewBinding(
			key.WithKeys("y", "right"),
			key.WithHelp("y/→", "knew it"),
		),
		Wrong: key.NewBinding(
			key.WithKeys("n", "left"),
			key.WithHelp("n/←", "missed it"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Review: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "review missed"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
