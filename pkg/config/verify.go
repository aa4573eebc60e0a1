package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Supported keywords are $ref to $defs, type, required, properties, items, minimum and pattern.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	v := schemaVerifier{defs: defs}
	if err := v.check(schema, doc, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

type schemaVerifier struct {
	defs map[string]any
}

func (v schemaVerifier) check(node map[string]any, val any, path string) error {
	if ref, ok := node["$ref"].(string); ok {
		def, ok := v.defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any)
		if !ok {
			return fmt.Errorf("%s: unknown schema ref %q", pathName(path), ref)
		}
		return v.check(def, val, path)
	}

	switch node["type"] {
	case "object":
		obj, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%s must be an object", pathName(path))
		}
		return v.checkObject(node, obj, path)

	case "array":
		arr, ok := val.([]any)
		if !ok {
			return fmt.Errorf("%s must be an array", pathName(path))
		}
		items, ok := node["items"].(map[string]any)
		if !ok {
			return nil
		}
		for i, item := range arr {
			if err := v.check(items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}

	case "string":
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", pathName(path))
		}
		if pattern, ok := node["pattern"].(string); ok {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return fmt.Errorf("%s: bad schema pattern %q: %w", pathName(path), pattern, err)
			}
			if !re.MatchString(s) {
				return fmt.Errorf("%s must match %s", pathName(path), pattern)
			}
		}

	case "integer":
		n, ok := val.(float64)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("%s must be an integer", pathName(path))
		}
		if minimum, ok := node["minimum"].(float64); ok && n < minimum {
			return fmt.Errorf("%s must be at least %v", pathName(path), minimum)
		}
	}
	return nil
}

// checkObject verifies required keys first, then each declared property in name order.
// Empty strings and nulls count as missing.
func (v schemaVerifier) checkObject(node, obj map[string]any, path string) error {
	required, _ := node["required"].([]any)
	for _, r := range required {
		name, _ := r.(string)
		if fv, ok := obj[name]; !ok || fv == nil || fv == "" {
			return fmt.Errorf("%s is required", join(path, name))
		}
	}

	props, _ := node["properties"].(map[string]any)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fv, ok := obj[name]
		if !ok {
			continue
		}
		sub, ok := props[name].(map[string]any)
		if !ok {
			continue
		}
		if err := v.check(sub, fv, join(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func pathName(path string) string {
	if path == "" {
		return "config"
	}
	return path
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
