package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/BhaskerGarudadri/Physical/dimension"
	"github.com/BhaskerGarudadri/Physical/errors"
	"github.com/BhaskerGarudadri/Physical/number"
	"github.com/BhaskerGarudadri/Physical/unit"
)

// catalogSchema is the JSON Schema every user catalog must satisfy. The YAML
// document is converted to JSON for validation, so the schema sees exactly
// the structure the loader will decode.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["units"],
  "additionalProperties": false,
  "properties": {
    "units": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "symbol", "dimension", "scale"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "symbol": {"type": "string", "minLength": 1},
          "dimension": {
            "type": "object",
            "additionalProperties": {"type": "string", "minLength": 1}
          },
          "scale": {"type": "number"},
          "offset": {"type": "number"}
        }
      }
    }
  }
}`

// File is a YAML unit catalog document.
type File struct {
	Units []Entry `yaml:"units" json:"units"`
}

// Entry is one user-defined unit. Dimension exponents are written as exact
// strings ("1", "-2", "1/2") keyed by base dimension name.
type Entry struct {
	Name      string            `yaml:"name" json:"name"`
	Symbol    string            `yaml:"symbol" json:"symbol"`
	Dimension map[string]string `yaml:"dimension" json:"dimension"`
	Scale     float64           `yaml:"scale" json:"scale"`
	Offset    float64           `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// Parse validates and decodes a YAML catalog into unit definitions.
func Parse(data []byte) ([]unit.Definition, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapFatal(
			fmt.Errorf("%w: %v", errors.ErrInvalidCatalog, err),
			"Catalog", "Parse", "YAML decoding")
	}

	defs := make([]unit.Definition, 0, len(file.Units))
	for _, entry := range file.Units {
		def, err := entry.definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Load parses a catalog file and registers its units.
func Load(path string, reg *unit.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapFatal(err, "Catalog", "Load", "catalog file read")
	}
	defs, err := Parse(data)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// validate checks the document against catalogSchema. YAML is re-marshaled
// through JSON so gojsonschema can see it.
func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.WrapFatal(
			fmt.Errorf("%w: %v", errors.ErrInvalidCatalog, err),
			"Catalog", "validate", "YAML parsing")
	}
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return errors.WrapFatal(
			fmt.Errorf("%w: %v", errors.ErrInvalidCatalog, err),
			"Catalog", "validate", "JSON conversion")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(jsonDoc))
	if err != nil {
		return errors.WrapFatal(
			fmt.Errorf("%w: %v", errors.ErrInvalidCatalog, err),
			"Catalog", "validate", "schema validation")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return errors.WrapFatal(
			fmt.Errorf("%w: %s", errors.ErrInvalidCatalog, strings.Join(msgs, "; ")),
			"Catalog", "validate", "schema validation")
	}
	return nil
}

// definition converts a catalog entry into a unit definition.
func (e Entry) definition() (unit.Definition, error) {
	dim := dimension.Dimensionless()
	for name, expStr := range e.Dimension {
		base, ok := baseByName[name]
		if !ok {
			return unit.Definition{}, errors.WrapFatal(
				fmt.Errorf("%w: unit %q references unknown dimension %q",
					errors.ErrInvalidCatalog, e.Name, name),
				"Catalog", "definition", "dimension resolution")
		}
		exp, err := number.Parse(expStr)
		if err != nil {
			return unit.Definition{}, errors.WrapFatal(
				fmt.Errorf("%w: unit %q has bad exponent %q for %s",
					errors.ErrInvalidCatalog, e.Name, expStr, name),
				"Catalog", "definition", "exponent parsing")
		}
		dim = dim.With(base, exp)
	}
	return unit.Definition{
		Name:      e.Name,
		Symbol:    e.Symbol,
		Dimension: dim,
		Scale:     e.Scale,
		Offset:    e.Offset,
	}, nil
}

// baseByName maps catalog dimension names to base dimensions.
var baseByName = func() map[string]dimension.Base {
	m := make(map[string]dimension.Base)
	for _, b := range dimension.Bases() {
		m[b.String()] = b
	}
	return m
}()
