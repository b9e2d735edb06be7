package jsonschema

import (
	"slices"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Draft is the dialect declared by object schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	Dialect string `json:"$schema,omitempty" yaml:"$schema,omitempty"`

	// Core
	Type   string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format string   `json:"format,omitempty" yaml:"format,omitempty"`
	Const  *string  `json:"const,omitempty" yaml:"const,omitempty"`
	Enum   []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// String
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty" yaml:"propertyNames,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
}

// JSON renders the schema as indented JSON.
func (s *Schema) JSON() ([]byte, error) { return json.MarshalIndent(s.Document(), "", "  ") }

// YAML renders the schema as YAML.
func (s *Schema) YAML() ([]byte, error) { return yaml.Marshal(s.Document()) }

// MarshalJSON encodes the schema through Document.
func (s *Schema) MarshalJSON() ([]byte, error) { return json.Marshal(s.Document()) }

// MarshalYAML encodes the schema through Document.
func (s *Schema) MarshalYAML() (any, error) { return s.Document(), nil }

// Document converts the schema into plain maps and slices keyed by the JSON
// Schema keywords. Unset keywords are left out.
func (s *Schema) Document() map[string]any {
	if s == nil {
		return nil
	}
	doc := map[string]any{}
	putString := func(k, v string) {
		if v != "" {
			doc[k] = v
		}
	}
	putInt := func(k string, v *int) {
		if v != nil {
			doc[k] = *v
		}
	}
	putFloat := func(k string, v *float64) {
		if v != nil {
			doc[k] = *v
		}
	}
	putString("$schema", s.Dialect)
	putString("type", s.Type)
	putString("format", s.Format)
	if s.Const != nil {
		doc["const"] = *s.Const
	}
	if len(s.Enum) > 0 {
		doc["enum"] = slices.Clone(s.Enum)
	}
	putString("pattern", s.Pattern)
	putInt("minLength", s.MinLength)
	putInt("maxLength", s.MaxLength)
	putFloat("minimum", s.Minimum)
	putFloat("maximum", s.Maximum)
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for k, p := range s.Properties {
			props[k] = p.Document()
		}
		doc["properties"] = props
	}
	if len(s.Required) > 0 {
		doc["required"] = slices.Clone(s.Required)
	}
	switch ap := s.AdditionalProperties.(type) {
	case nil:
	case *Schema:
		if ap != nil {
			doc["additionalProperties"] = ap.Document()
		}
	default:
		doc["additionalProperties"] = ap
	}
	if s.PropertyNames != nil {
		doc["propertyNames"] = s.PropertyNames.Document()
	}
	if s.Items != nil {
		doc["items"] = s.Items.Document()
	}
	putInt("minItems", s.MinItems)
	putInt("maxItems", s.MaxItems)
	if len(s.OneOf) > 0 {
		alts := make([]any, len(s.OneOf))
		for i, a := range s.OneOf {
			alts[i] = a.Document()
		}
		doc["oneOf"] = alts
	}
	return doc
}

// Int returns a pointer to n, for MinLength/MaxLength/MinItems/MaxItems.
func Int(n int) *int { return &n }

// String returns a pointer to v, for Const.
func String(v string) *string { return &v }

// Float returns a pointer to f, for Minimum/Maximum.
func Float(f float64) *float64 { return &f }
