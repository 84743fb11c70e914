package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Reload key.Binding
	Write  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev table")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next table")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev month")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next month")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Write:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write totals")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Reload, k.Write, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today},
		{k.Up, k.Down},
		{k.Reload, k.Write, k.Quit},
	}
}
