package types

// Type enumerates the data types a Schema node can describe.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// Schema describes a desired JSON output shape as a recursive tree, using the
// select subset of the OpenAPI schema vocabulary the API accepts. Object
// nodes populate Properties (and optionally Required, which must be a subset
// of the property names); array nodes populate Items with the schema of every
// element; Enum is valid only on string nodes.
//
// The encoder serializes a Schema exactly as given and never mutates it, so
// one instance may be shared across concurrent requests. Consistency between
// a node's type and its populated fields is the caller's responsibility;
// ill-formed trees are rejected by the service, not by this layer.
type Schema struct {
	Type             Type               `json:"type,omitempty"`
	Format           string             `json:"format,omitempty"`
	Title            string             `json:"title,omitempty"`
	Description      string             `json:"description,omitempty"`
	Nullable         *bool              `json:"nullable,omitempty"`
	Enum             []string           `json:"enum,omitempty"`
	MaxItems         string             `json:"maxItems,omitempty"`
	MinItems         string             `json:"minItems,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Required         []string           `json:"required,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
}
