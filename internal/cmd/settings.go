package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/flowpomo/internal/config"
	"github.com/renato0307/flowpomo/internal/domain"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Init SettingsInitCmd `cmd:"init" help:"Write a settings file with the default values"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Every setting can also be set with a %s_<KEY> environment variable.\n", config.EnvPrefix)
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsInitCmd writes the default settings file
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings file"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()

	if !s.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("settings file already exists: %s (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check settings file: %w", err)
		}
	}

	if err := config.SaveSettings(defaultSettings()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// defaultSettings returns settings with every duration and flag spelled out
func defaultSettings() *config.Settings {
	durations := domain.DefaultDurations()
	commitOnExit := false
	soundEnabled := true
	return &config.Settings{
		CommitOnExit:      &commitOnExit,
		FocusSeconds:      &durations.Focus,
		LongBreakSeconds:  &durations.LongBreak,
		ShortBreakSeconds: &durations.ShortBreak,
		SoundEnabled:      &soundEnabled,
	}
}
