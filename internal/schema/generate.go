// Package schema generates JSON Schema from the please config types.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/pleaselabs/please/pkg/config"
)

const (
	schemaURI = "http://json-schema.org/draft-07/schema#"
	title     = "please configuration"
)

// ID returns the stable document identifier of the exported schema,
// versioned with the config schema version.
func ID() string {
	return fmt.Sprintf(
		"https://pleaselabs.github.io/please/config-schema-v%d.json",
		config.SchemaVersion,
	)
}

// Filename returns the schema file name used by cmd/schema-gen.
func Filename() string {
	return fmt.Sprintf("please-config-v%d.schema.json", config.SchemaVersion)
}

// Directive returns the editor schema directive prepended to generated
// config files.
func Directive() string {
	return "# yaml-language-server: $schema=" + ID()
}

// Generate produces a JSON Schema from the config.Config struct.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.ID = jsonschema.ID(ID())
	s.Title = title

	return s
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	// Append trailing newline for file output.
	return append(data, '\n'), nil
}
