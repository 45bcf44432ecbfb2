package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// This is the single source of truth for key names, defaults, help text, and tips.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "toggle keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},

	// Timer keys
	{Name: "focus", Defaults: []string{"1", "f"}, Help: "switch to focus"},
	{Name: "long_break", Defaults: []string{"3", "l"}, Help: "switch to long break"},
	{Name: "reset", Defaults: []string{"r"}, Help: "end interval and reload", TipFormat: "press %s to log the interval and start over"},
	{Name: "short_break", Defaults: []string{"2", "b"}, Help: "switch to short break", TipFormat: "press %s to take a short break, focus time is logged"},
	{Name: "start_pause", Defaults: []string{" ", "s"}, Help: "start or pause", TipFormat: "press %s to start or pause the timer"},

	// Category keys
	{Name: "category_clear", Defaults: []string{"c"}, Help: "clear category"},
	{Name: "category_down", Defaults: []string{"down", "j"}, Help: "next category"},
	{Name: "category_toggle", Defaults: []string{"enter", "x"}, Help: "select or clear category", TipFormat: "press %s to attribute focus time to a category"},
	{Name: "category_up", Defaults: []string{"up", "k"}, Help: "previous category"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
