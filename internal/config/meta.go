package config

import (
	"reflect"
	"strings"

	"github.com/renato0307/flowpomo/internal/domain"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"start_pause": "p",
			"help":        []string{"H", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			switch fieldName {
			case "debug", "commit_on_exit", "pro":
				return false
			default:
				return true
			}
		case reflect.Int:
			switch fieldName {
			case "focus_seconds":
				return domain.DefaultFocusSeconds
			case "short_break_seconds":
				return domain.DefaultShortBreakSeconds
			case "long_break_seconds":
				return domain.DefaultLongBreakSeconds
			case "max_log_files":
				return 1000
			default:
				return 10
			}
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "user_id":
			return "alice"
		default:
			return "example"
		}
	}

	return nil
}
