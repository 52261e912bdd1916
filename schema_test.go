package gemini

import (
	"reflect"
	"sort"
	"testing"

	"github.com/Shuflduf/gemini-rs/types"
)

func TestGenerateSchemaStruct(t *testing.T) {
	type cityInfo struct {
		City       string   `json:"city" jsonschema:"description=City name"`
		Country    string   `json:"country"`
		Population int      `json:"population"`
		Rating     float64  `json:"rating"`
		Capital    bool     `json:"capital"`
		FamousFor  []string `json:"famous_for"`
	}

	schema, err := GenerateSchema[cityInfo]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if schema.Type != types.TypeObject {
		t.Fatalf("got type %s", schema.Type)
	}

	wantTypes := map[string]types.Type{
		"city":       types.TypeString,
		"country":    types.TypeString,
		"population": types.TypeInteger,
		"rating":     types.TypeNumber,
		"capital":    types.TypeBoolean,
		"famous_for": types.TypeArray,
	}
	for name, wantType := range wantTypes {
		property := schema.Properties[name]
		if property == nil {
			t.Errorf("missing property %s", name)
			continue
		}
		if property.Type != wantType {
			t.Errorf("property %s: got type %s, want %s", name, property.Type, wantType)
		}
	}

	if schema.Properties["city"].Description != "City name" {
		t.Errorf("description: %q", schema.Properties["city"].Description)
	}
	if items := schema.Properties["famous_for"].Items; items == nil || items.Type != types.TypeString {
		t.Errorf("array items: %+v", items)
	}

	// All fields are non-pointer without omitempty, so all are required.
	required := append([]string(nil), schema.Required...)
	sort.Strings(required)
	want := []string{"capital", "city", "country", "famous_for", "population", "rating"}
	if !reflect.DeepEqual(required, want) {
		t.Errorf("required: got %v, want %v", required, want)
	}
}

func TestGenerateSchemaOptionalFields(t *testing.T) {
	type record struct {
		Name     string  `json:"name"`
		Nickname string  `json:"nickname,omitempty"`
		Age      *int    `json:"age"`
		Score    *int    `json:"score" jsonschema:"required"`
		Ignored  string  `json:"-"`
		Hidden   float64 `json:"hidden,omitempty" jsonschema:"required"`
	}

	schema, err := GenerateSchema[record]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := schema.Properties["Ignored"]; ok {
		t.Error("json:\"-\" field must be skipped")
	}
	if len(schema.Properties) != 5 {
		t.Errorf("got %d properties", len(schema.Properties))
	}
	// Pointer fields map to their element type.
	if schema.Properties["age"].Type != types.TypeInteger {
		t.Errorf("age: %s", schema.Properties["age"].Type)
	}

	required := append([]string(nil), schema.Required...)
	sort.Strings(required)
	want := []string{"hidden", "name", "score"}
	if !reflect.DeepEqual(required, want) {
		t.Errorf("required: got %v, want %v", required, want)
	}
}

func TestGenerateSchemaEnum(t *testing.T) {
	type verdict struct {
		Sentiment string `json:"sentiment" jsonschema:"enum=positive,enum=negative,enum=neutral"`
	}

	schema, err := GenerateSchema[verdict]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"positive", "negative", "neutral"}
	if !reflect.DeepEqual(schema.Properties["sentiment"].Enum, want) {
		t.Errorf("got enum %v", schema.Properties["sentiment"].Enum)
	}
}

func TestGenerateSchemaEnumOnNonString(t *testing.T) {
	type bad struct {
		Count int `json:"count" jsonschema:"enum=1,enum=2"`
	}

	if _, err := GenerateSchema[bad](); err == nil {
		t.Fatal("expected error for enum on an integer field")
	}
}

func TestGenerateSchemaNested(t *testing.T) {
	type address struct {
		Street string `json:"street"`
		City   string `json:"city"`
	}
	type person struct {
		Name      string    `json:"name"`
		Addresses []address `json:"addresses"`
	}

	schema, err := GenerateSchema[person]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addresses := schema.Properties["addresses"]
	if addresses.Type != types.TypeArray || addresses.Items == nil || addresses.Items.Type != types.TypeObject {
		t.Fatalf("got %+v", addresses)
	}
	if addresses.Items.Properties["street"].Type != types.TypeString {
		t.Errorf("nested property: %+v", addresses.Items.Properties)
	}
}

func TestGenerateSchemaRejectsUnsupported(t *testing.T) {
	type withMap struct {
		Labels map[string]string `json:"labels"`
	}
	if _, err := GenerateSchema[withMap](); err == nil {
		t.Error("expected error for map field")
	}

	type node struct {
		Value    int     `json:"value"`
		Children []*node `json:"children"`
	}
	if _, err := GenerateSchema[node](); err == nil {
		t.Error("expected error for recursive type")
	}

	if _, err := GenerateSchema[map[string]any](); err == nil {
		t.Error("expected error for top-level map")
	}
}
