package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/flowpomo/internal/domain"
)

var exportFixture = []domain.SessionRecord{
	{Category: "Reading", Duration: 125, ID: "a", Timestamp: 1700000000000, UserID: "u1"},
	{Category: domain.UncategorizedName, Duration: 60, ID: "b", Timestamp: 1699990000000, UserID: "u1"},
}

func TestWriteSessions_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSessions(&buf, "json", exportFixture))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Reading", decoded[0]["category"])
	assert.Equal(t, float64(125), decoded[0]["duration"])
	assert.Equal(t, "u1", decoded[0]["user_id"])
	assert.Equal(t, "2023-11-14T22:13:20Z", decoded[0]["time"])
}

func TestWriteSessions_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSessions(&buf, "yaml", exportFixture))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "b", decoded[1]["id"])
	assert.Equal(t, domain.UncategorizedName, decoded[1]["category"])
	assert.Equal(t, 60, decoded[1]["duration"])
}

func TestWriteSessions_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSessions(&buf, "json", nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestDefaultSettings(t *testing.T) {
	settings := defaultSettings()

	assert.Equal(t, domain.DefaultDurations(), settings.Durations())
	assert.True(t, settings.IsSoundEnabled())
	assert.False(t, settings.ShouldCommitOnExit())
	assert.False(t, settings.IsPro())
}
