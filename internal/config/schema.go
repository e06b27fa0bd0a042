package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "priotasks.schema.json"

// configSchema compiles the embedded schema on first use.
var configSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// validateDefined checks the keys a config file set, as already decoded
// into cfg, against the embedded schema and reports the first offending key.
func validateDefined(cfg *Config, md toml.MetaData) error {
	schema, err := configSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(definedDocument(cfg, md)); err != nil {
		return schemaError(err)
	}
	return nil
}

// definedDocument rebuilds the keys md saw as a nested document holding the
// values decoded into cfg.
func definedDocument(cfg *Config, md toml.MetaData) map[string]interface{} {
	doc := make(map[string]interface{})
	for _, field := range configFields() {
		key := strings.Split(field, ".")
		if !md.IsDefined(key...) {
			continue
		}
		parent := doc
		for _, part := range key[:len(key)-1] {
			child, ok := parent[part].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				parent[part] = child
			}
			parent = child
		}
		parent[key[len(key)-1]] = cfg.fieldValue(field)
	}
	return doc
}

// schemaError reduces a validation error tree to its first leaf.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if path := pointerToKey(ve.InstanceLocation); path != "" {
		return fmt.Errorf("%s: %s", path, ve.Message)
	}
	return fmt.Errorf("invalid config: %s", ve.Message)
}

// pointerToKey converts a JSON pointer such as "/colors/high" to the TOML
// key "colors.high".
func pointerToKey(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}
	parts := strings.Split(ptr, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}
