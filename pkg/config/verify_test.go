package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
			Fetch:  FetchConfig{Timeout: 15 * time.Second, UserAgent: "FeedReader/1.0", SnippetLength: 120},
			Feeds:  []FeedConfig{{Name: "Feed", URL: "https://example.com/rss"}},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", modify: func(c *Config) {}},
		{name: "several feeds", modify: func(c *Config) {
			c.Feeds = append(c.Feeds, FeedConfig{Name: "Other", URL: "http://example.com/atom"})
		}},
		{name: "missing listen", modify: func(c *Config) { c.Server.Listen = "" }, wantErr: true, errMsg: "server.listen is required"},
		{name: "empty user agent", modify: func(c *Config) { c.Fetch.UserAgent = "" }, wantErr: true, errMsg: "fetch.user_agent is required"},
		{name: "snippet length below minimum", modify: func(c *Config) {
			c.Fetch.SnippetLength = -5
			c.Feeds = []FeedConfig{{Name: "x", URL: "http://"}}
		}, wantErr: true, errMsg: "fetch.snippet_length must be at least 1"},
		{name: "zero snippet length", modify: func(c *Config) { c.Fetch.SnippetLength = 0 }, wantErr: true,
			errMsg: "fetch.snippet_length must be at least 1"},
		{name: "no feeds", modify: func(c *Config) { c.Feeds = nil }, wantErr: true, errMsg: "feeds is required"},
		{name: "feed without name", modify: func(c *Config) { c.Feeds[0].Name = "" }, wantErr: true, errMsg: "feeds[0].name is required"},
		{name: "feed with bad url", modify: func(c *Config) { c.Feeds[0].URL = "example.com" }, wantErr: true,
			errMsg: "feeds[0].url must match ^https?://"},
		{name: "second feed with bad url", modify: func(c *Config) {
			c.Feeds = append(c.Feeds, FeedConfig{Name: "Other", URL: "ftp://example.com/feed"})
		}, wantErr: true, errMsg: "feeds[1].url must match"},
		{name: "upper case scheme is outside schema pattern", modify: func(c *Config) { c.Feeds[0].URL = "HTTPS://example.com/rss" },
			wantErr: true, errMsg: "feeds[0].url must match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "snippet_length")
	assert.Contains(t, string(data), "FeedConfig")
}

func TestEmbeddedSchemaIsValidJSON(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &schema))
	assert.Contains(t, schema, "$defs")
}

func TestSchemaVerifier_Keywords(t *testing.T) {
	v := schemaVerifier{defs: map[string]any{
		"Item": map[string]any{
			"type":       "object",
			"required":   []any{"id"},
			"properties": map[string]any{"id": map[string]any{"type": "integer", "minimum": float64(0)}},
		},
	}}
	schema := map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/Item"}}

	tests := []struct {
		name   string
		doc    any
		errMsg string
	}{
		{name: "valid", doc: []any{map[string]any{"id": float64(1)}}},
		{name: "not an array", doc: "x", errMsg: "config must be an array"},
		{name: "item not an object", doc: []any{"x"}, errMsg: "[0] must be an object"},
		{name: "missing id", doc: []any{map[string]any{}}, errMsg: "[0].id is required"},
		{name: "fractional id", doc: []any{map[string]any{"id": 1.5}}, errMsg: "[0].id must be an integer"},
		{name: "negative id", doc: []any{map[string]any{"id": float64(-1)}}, errMsg: "[0].id must be at least 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.check(schema, tt.doc, "")
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("unknown ref", func(t *testing.T) {
		err := v.check(map[string]any{"$ref": "#/$defs/Missing"}, nil, "feeds")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `feeds: unknown schema ref "#/$defs/Missing"`)
	})
}

func TestVerifyAgainstEmbeddedSchema_Defaults(t *testing.T) {
	require.NoError(t, VerifyAgainstEmbeddedSchema(Default()))
}
