package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/renato0307/flowpomo/internal/domain"
)

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "FLOWPOMO"

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "start", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of ~/.flowpomo/settings.json
type Settings struct {
	CommitOnExit      *bool             `json:"commit_on_exit,omitempty" mapstructure:"commit_on_exit"`
	Debug             *bool             `json:"debug,omitempty" mapstructure:"debug"`
	FocusSeconds      *int              `json:"focus_seconds,omitempty" mapstructure:"focus_seconds"`
	Keys              KeyBindingsConfig `json:"keys,omitempty" mapstructure:"keys"`
	LongBreakSeconds  *int              `json:"long_break_seconds,omitempty" mapstructure:"long_break_seconds"`
	MaxLogFiles       *int              `json:"max_log_files,omitempty" mapstructure:"max_log_files"`
	Pro               *bool             `json:"pro,omitempty" mapstructure:"pro"`
	ShortBreakSeconds *int              `json:"short_break_seconds,omitempty" mapstructure:"short_break_seconds"`
	SoundEnabled      *bool             `json:"sound_enabled,omitempty" mapstructure:"sound_enabled"`
	UserID            string            `json:"user_id,omitempty" mapstructure:"user_id"`
}

// envKeys are the settings that FLOWPOMO_<KEY> environment variables override
var envKeys = []string{
	"commit_on_exit",
	"debug",
	"focus_seconds",
	"long_break_seconds",
	"max_log_files",
	"pro",
	"short_break_seconds",
	"sound_enabled",
	"user_id",
}

// Durations overlays the configured durations on the defaults
func (s *Settings) Durations() domain.Durations {
	d := domain.DefaultDurations()
	if s == nil {
		return d
	}
	if s.FocusSeconds != nil {
		d.Focus = *s.FocusSeconds
	}
	if s.ShortBreakSeconds != nil {
		d.ShortBreak = *s.ShortBreakSeconds
	}
	if s.LongBreakSeconds != nil {
		d.LongBreak = *s.LongBreakSeconds
	}
	return d
}

// IsPro reports whether the pro capability flag is set
func (s *Settings) IsPro() bool {
	return s != nil && s.Pro != nil && *s.Pro
}

// IsSoundEnabled reports whether sound cues are on; they are on unless disabled
func (s *Settings) IsSoundEnabled() bool {
	return s == nil || s.SoundEnabled == nil || *s.SoundEnabled
}

// ShouldCommitOnExit reports whether quitting commits the open interval
func (s *Settings) ShouldCommitOnExit() bool {
	return s != nil && s.CommitOnExit != nil && *s.CommitOnExit
}

// LoadSettings loads settings from $FLOWPOMO_HOME/settings.json (or ~/.flowpomo/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom reads settings from path with FLOWPOMO_* environment overrides
func LoadSettingsFrom(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("invalid settings.json: %w", err)
		}
		// Missing file is not an error, use defaults
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FLOWPOMO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo writes settings as indented JSON to path
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
