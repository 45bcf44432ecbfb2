package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/flowpomo/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
}

// CategoryKeys defines key bindings for the category list
type CategoryKeys struct {
	Clear  KeyWithTip
	Down   KeyWithTip
	Toggle KeyWithTip
	Up     KeyWithTip
}

// TimerKeys defines key bindings that drive the timer
type TimerKeys struct {
	Focus      KeyWithTip
	LongBreak  KeyWithTip
	Reset      KeyWithTip
	ShortBreak KeyWithTip
	StartPause KeyWithTip
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Categories  CategoryKeys
	Timer       TimerKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit", defaults, customKeys),
			Help:      buildBinding("help", defaults, customKeys),
			Quit:      buildBinding("quit", defaults, customKeys),
		},
		Categories: CategoryKeys{
			Clear:  buildBinding("category_clear", defaults, customKeys),
			Down:   buildBinding("category_down", defaults, customKeys),
			Toggle: buildBinding("category_toggle", defaults, customKeys),
			Up:     buildBinding("category_up", defaults, customKeys),
		},
		Timer: TimerKeys{
			Focus:      buildBinding("focus", defaults, customKeys),
			LongBreak:  buildBinding("long_break", defaults, customKeys),
			Reset:      buildBinding("reset", defaults, customKeys),
			ShortBreak: buildBinding("short_break", defaults, customKeys),
			StartPause: buildBinding("start_pause", defaults, customKeys),
		},
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.StartPause.Binding,
		k.Timer.Reset.Binding,
		k.Timer.ShortBreak.Binding,
		k.Categories.Toggle.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp returns every binding grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Timer.StartPause.Binding,
			k.Timer.Reset.Binding,
			k.Timer.Focus.Binding,
			k.Timer.ShortBreak.Binding,
			k.Timer.LongBreak.Binding,
		},
		{
			k.Categories.Up.Binding,
			k.Categories.Down.Binding,
			k.Categories.Toggle.Binding,
			k.Categories.Clear.Binding,
		},
		{
			k.Application.Help.Binding,
			k.Application.Quit.Binding,
			k.Application.ForceQuit.Binding,
		},
	}
}

// Tips returns the tips of every binding that has one
func (k KeyMap) Tips() []Tip {
	var tips []Tip
	for _, binding := range []KeyWithTip{
		k.Timer.StartPause,
		k.Timer.Reset,
		k.Timer.ShortBreak,
		k.Categories.Toggle,
		k.Application.Help,
	} {
		if binding.Tip != nil {
			tips = append(tips, *binding.Tip)
		}
	}
	return tips
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), def.Help),
		),
	}

	if def.TipFormat != "" && len(labels) > 0 {
		result.Tip = newTip(def.TipFormat, labels[0])
	}

	return result
}
