package gemini

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Shuflduf/gemini-rs/types"
)

// GenerateSchema derives a types.Schema from the Go type T via reflection,
// for use as a structured-output response schema. Struct fields map to object
// properties named by their json tags; non-pointer fields without omitempty
// are required. The jsonschema struct tag customizes the result:
//
//	type Review struct {
//	    Product string `json:"product" jsonschema:"description=Product name,required"`
//	    Verdict string `json:"verdict" jsonschema:"enum=good,enum=bad"`
//	    Rating  *int   `json:"rating,omitempty"`
//	}
//
// The service accepts only a select schema subset with no references, so
// types it cannot express return an error: maps, interfaces, channels,
// functions, and recursive structures (schemas are trees).
func GenerateSchema[T any]() (*types.Schema, error) {
	return generateSchema(reflect.TypeFor[T](), nil)
}

// generateSchema walks t. path holds the struct types currently being
// expanded, for cycle detection.
func generateSchema(t reflect.Type, path []reflect.Type) (*types.Schema, error) {
	switch t.Kind() {
	case reflect.Ptr:
		return generateSchema(t.Elem(), path)

	case reflect.String:
		return &types.Schema{Type: types.TypeString}, nil

	case reflect.Bool:
		return &types.Schema{Type: types.TypeBoolean}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &types.Schema{Type: types.TypeInteger}, nil

	case reflect.Float32, reflect.Float64:
		return &types.Schema{Type: types.TypeNumber}, nil

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			// []byte travels as a base64 string.
			return &types.Schema{Type: types.TypeString, Format: "byte"}, nil
		}
		items, err := generateSchema(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &types.Schema{Type: types.TypeArray, Items: items}, nil

	case reflect.Struct:
		return generateStructSchema(t, path)

	default:
		return nil, fmt.Errorf("cannot express %s in the response schema subset", t)
	}
}

func generateStructSchema(t reflect.Type, path []reflect.Type) (*types.Schema, error) {
	for _, seen := range path {
		if seen == t {
			return nil, fmt.Errorf("cannot express recursive type %s: response schemas are trees", t)
		}
	}
	path = append(path, t)

	schema := &types.Schema{
		Type:       types.TypeObject,
		Properties: make(map[string]*types.Schema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		fieldName := field.Name
		isOmitEmpty := false
		if jsonTag != "" {
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				if jsonTag[:commaIdx] != "" {
					fieldName = jsonTag[:commaIdx]
				}
				isOmitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				fieldName = jsonTag
			}
		}

		fieldSchema, err := generateSchema(field.Type, path)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		isRequiredByTag, err := applySchemaTag(field, fieldSchema)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		schema.Properties[fieldName] = fieldSchema
		if (field.Type.Kind() != reflect.Ptr && !isOmitEmpty) || isRequiredByTag {
			schema.Required = append(schema.Required, fieldName)
		}
	}

	return schema, nil
}

// applySchemaTag applies the jsonschema struct tag to a field's schema.
// Supported entries: "description=...", "enum=..." (string fields only,
// repeatable), and "required".
func applySchemaTag(field reflect.StructField, schema *types.Schema) (bool, error) {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false, nil
	}

	isRequired := false
	for _, item := range strings.Split(tag, ",") {
		kv := strings.SplitN(item, "=", 2)
		switch {
		case len(kv) == 2 && kv[0] == "description":
			schema.Description = kv[1]
		case len(kv) == 2 && kv[0] == "enum":
			if schema.Type != types.TypeString {
				return false, fmt.Errorf("enum tag is only valid on string fields, not %s", schema.Type)
			}
			schema.Enum = append(schema.Enum, kv[1])
		case len(kv) == 1 && kv[0] == "required":
			isRequired = true
		}
	}
	return isRequired, nil
}
