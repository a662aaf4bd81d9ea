package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/edgecase"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/internal/playback"
	"github.com/mabhi256/dsaviz/internal/trace"
)

type Model struct {
	ctrl        *playback.Controller
	unsubscribe func()
	events      *mailbox
	logger      *zap.Logger

	// Data
	kind   algo.Kind
	input  []int
	class  edgecase.Class
	gen    *input.Generator
	preset input.Preset
	size   int

	// Playback snapshot, refreshed after every key and controller event
	state playback.State
	step  trace.Step

	// UI State
	width           int
	height          int
	editing         bool
	showExplanation bool
	inputErr        error
	genErr          error

	editor   textinput.Model
	progress progress.Model
	help     help.Model

	keys KeyMap
}

type KeyMap struct {
	PlayPause key.Binding
	Stop      key.Binding
	Prev      key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	Faster    key.Binding
	Slower    key.Binding
	NextAlgo  key.Binding
	PrevAlgo  key.Binding
	Edit      key.Binding
	Random    key.Binding
	Explain   key.Binding
	Help      key.Binding
	Quit      key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Prev, k.Next, k.NextAlgo, k.Edit, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Stop, k.Prev, k.Next, k.First, k.Last},
		{k.Faster, k.Slower, k.NextAlgo, k.PrevAlgo},
		{k.Edit, k.Random, k.Explain, k.Help, k.Quit},
	}
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: k([]string{" ", "space"}, "space", "play/pause"),
		Stop:      k([]string{"s"}, "s", "stop"),
		Prev:      k([]string{"left", "h"}, "←/h", "step back"),
		Next:      k([]string{"right", "l"}, "→/l", "step"),
		First:     k([]string{"home", "g"}, "home/g", "first step"),
		Last:      k([]string{"end", "G"}, "end/G", "last step"),
		Faster:    k([]string{"+", "="}, "+", "faster"),
		Slower:    k([]string{"-", "_"}, "-", "slower"),
		NextAlgo:  k([]string{"tab"}, "tab", "next algorithm"),
		PrevAlgo:  k([]string{"shift+tab"}, "shift+tab", "prev algorithm"),
		Edit:      k([]string{"i"}, "i", "edit input"),
		Random:    k([]string{"r"}, "r", "new array"),
		Explain:   k([]string{"e"}, "e", "explain"),
		Help:      k([]string{"?"}, "?", "help"),
		Quit:      k([]string{"q", "ctrl+c"}, "q", "quit"),
		Submit:    k([]string{"enter"}, "enter", "apply"),
		Cancel:    k([]string{"esc"}, "esc", "cancel"),
	}
}
