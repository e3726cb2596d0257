package ir

import (
	"fmt"

	"github.com/dropbox/babelapi/ast"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// BuildJSONSchema synthesizes a JSON Schema document describing s's
// AllFields, used as a second, independent check on example fixtures
// alongside the resolver's own structural walk (phase 12). It is not a
// generator output — nothing in the module writes it to disk — it exists
// purely to cross-validate examples against a representation built a
// different way than the manual field-by-field check in validateExamples.
func BuildJSONSchema(s *Struct) map[string]interface{} {
	props := map[string]interface{}{}

	var required []string

	for _, f := range s.AllFields {
		props[f.Name] = jsonSchemaType(f.Type)

		if !f.HasDefault && !f.Optional {
			required = append(required, f.Name)
		}
	}

	schema := map[string]interface{}{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

func jsonSchemaType(dt *DataType) map[string]interface{} {
	if dt.IsNullable() {
		inner := jsonSchemaType(dt.Elem)

		return map[string]interface{}{"anyOf": []interface{}{inner, map[string]interface{}{"type": "null"}}}
	}

	switch dt.Kind {
	case KindBoolean:
		return map[string]interface{}{"type": "boolean"}
	case KindInt32, KindInt64:
		return applyNumericAttrs(map[string]interface{}{"type": "integer"}, dt)
	case KindUInt32, KindUInt64:
		return applyNumericAttrs(map[string]interface{}{"type": "integer", "minimum": 0}, dt)
	case KindFloat32, KindFloat64:
		return applyNumericAttrs(map[string]interface{}{"type": "number"}, dt)
	case KindString, KindBinary, KindTimestamp:
		m := map[string]interface{}{"type": "string"}

		if n, ok := dt.Attrs["min_length"].(int64); ok {
			m["minLength"] = n
		}

		if n, ok := dt.Attrs["max_length"].(int64); ok {
			m["maxLength"] = n
		}

		if p, ok := dt.Attrs["pattern"].(string); ok {
			m["pattern"] = p
		}

		return m
	case KindSymbol:
		return map[string]interface{}{"type": "string"}
	case KindAny:
		return map[string]interface{}{}
	case KindVoid:
		return map[string]interface{}{"type": "null"}
	case KindList:
		return map[string]interface{}{"type": "array", "items": jsonSchemaType(dt.Elem)}
	case KindStruct:
		return BuildJSONSchema(dt.Struct)
	case KindUnion:
		return map[string]interface{}{"type": "object"}
	default:
		return map[string]interface{}{}
	}
}

func applyNumericAttrs(m map[string]interface{}, dt *DataType) map[string]interface{} {
	if n, ok := attrFloat(dt.Attrs["min_value"]); ok {
		m["minimum"] = n
	}

	if n, ok := attrFloat(dt.Attrs["max_value"]); ok {
		m["maximum"] = n
	}

	return m
}

// ValidateExampleJSON compiles s's synthesized schema and checks ex's
// fields against it, converting *ast.TagRef values to their tag name so
// the schema sees a plain string.
func ValidateExampleJSON(s *Struct, ex *Example) error {
	schemaDoc := BuildJSONSchema(s)

	url := "mem://" + s.Namespace.Name + "." + s.Name + "." + ex.Label

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, schemaDoc); err != nil {
		return fmt.Errorf("building schema for %s: %w", s.Name, err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return fmt.Errorf("compiling schema for %s: %w", s.Name, err)
	}

	instance := map[string]interface{}{}

	for name, val := range ex.Fields {
		instance[name] = jsonValue(val)
	}

	if err := compiled.Validate(instance); err != nil {
		return err
	}

	return nil
}

func jsonValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case int64:
		return float64(tv)
	case *ast.TagRef:
		return tv.Name
	default:
		return tv
	}
}
