package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// defaultEnvMapping maps environment variables to the field they override.
var defaultEnvMapping = map[string]func(*Config, string){
	"FACTORCALC_LOG_LEVEL":    func(c *Config, v string) { c.Application.LogLevel = v },
	"FACTORCALC_THEME":        func(c *Config, v string) { c.GUI.Theme = v },
	"FACTORCALC_DEFAULT_MODE": func(c *Config, v string) { c.Calculator.DefaultMode = strings.ToUpper(v) },
}

// validate converts the YAML document to JSON and checks it against the
// embedded JSON Schema.
func validate(yb []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(yb, &doc); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	jsonCompatible, err := toJSONCompatible(doc)
	if err != nil {
		return fmt.Errorf("convert yaml->json compatible: %w", err)
	}
	jb, err := json.Marshal(jsonCompatible)
	if err != nil {
		return fmt.Errorf("marshal to json: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(jb)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, e := range result.Errors() {
			sb.WriteString("- ")
			sb.WriteString(e.String())
			sb.WriteString("\n")
		}
		return fmt.Errorf("config validation failed:\n%s", sb.String())
	}

	return nil
}

// applyEnvOverrides reads environment variables per mapping and sets the
// matching fields. Empty values are ignored. It reports whether any field
// was overridden.
func applyEnvOverrides(cfg *Config, mapping map[string]func(*Config, string)) bool {
	applied := false
	for env, set := range mapping {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			set(cfg, strings.TrimSpace(v))
			applied = true
		}
	}
	return applied
}

// toJSONCompatible converts yaml-parsed structures into map[string]interface{} recursively.
func toJSONCompatible(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			ks := fmt.Sprintf("%v", k)
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			m[ks] = conv
		}
		return m, nil
	case []interface{}:
		arr := make([]interface{}, len(val))
		for i, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			arr[i] = conv
		}
		return arr, nil
	default:
		return val, nil
	}
}
