package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, generate(options{Output: out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok, "schema has $defs")
	for _, name := range []string{"Config", "ServerConfig", "FetchConfig", "FeedConfig"} {
		assert.Contains(t, defs, name)
	}
}

func TestGenerate_BadPath(t *testing.T) {
	err := generate(options{Output: filepath.Join(t.TempDir(), "missing", "schema.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write")
}
