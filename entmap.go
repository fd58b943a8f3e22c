// Package entmap derives a storage-agnostic entity-relationship model from
// annotated schema definitions.
//
// Schemas are declared with the builders in [schema] and [schema/field],
// tagged with structural metadata (primary key, uniqueness, references,
// embeddable value types), and handed to [compiler/gen] which produces two
// artifacts: a flat list of entity definitions describing the semantic role
// of every field, and a bidirectional relation graph describing which
// entities point at which.
//
// The derived model is descriptive only. It is the input a storage layer,
// migration tool, or API generator would consume; entmap itself performs no
// code generation and no I/O.
package entmap

// PropertyType discriminates the variants of a [Property].
//
// The four primitive values double as the wire names of the scalar kinds,
// so a marshaled property reads `"propertyType": "string"` for plain
// scalars and `"propertyType": "ReferencedObject"` for foreign-key style
// pointers.
type PropertyType string

const (
	// PropertyPrimaryKey marks the identifying field of an entity.
	PropertyPrimaryKey PropertyType = "PrimaryKey"
	// PropertyReference marks a pointer to another entity by name.
	PropertyReference PropertyType = "ReferencedObject"
	// PropertyEmbedded marks an embedded reusable value type.
	PropertyEmbedded PropertyType = "TypedEmbeddedValue"

	// Primitive scalar kinds.
	PropertyBool   PropertyType = "boolean"
	PropertyNumber PropertyType = "number"
	PropertyString PropertyType = "string"
	PropertyDate   PropertyType = "Date"
)

// Primitive reports whether t is one of the scalar kinds.
func (t PropertyType) Primitive() bool {
	switch t {
	case PropertyBool, PropertyNumber, PropertyString, PropertyDate:
		return true
	}
	return false
}

// Valid reports whether t is a known property type.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyPrimaryKey, PropertyReference, PropertyEmbedded:
		return true
	}
	return t.Primitive()
}

// Property describes the semantic role of a single entity field. Exactly one
// variant applies per field; which struct members are meaningful depends on
// Type:
//
//	PrimaryKey          Name only.
//	ReferencedObject    Name, Target, Unique, Nillable.
//	TypedEmbeddedValue  Name, StructType, Unique, Nillable, Array.
//	primitive kinds     Name, Unique, Nillable, Array, Values (enums only).
type Property struct {
	// Name is the field name as declared in the schema.
	Name string `json:"name" yaml:"name" msgpack:"name"`
	// Type discriminates the property variant.
	Type PropertyType `json:"propertyType" yaml:"propertyType" msgpack:"propertyType"`
	// Target holds the referenced entity name for ReferencedObject
	// properties.
	Target string `json:"targetEntityDefinitionName,omitempty" yaml:"targetEntityDefinitionName,omitempty" msgpack:"targetEntityDefinitionName,omitempty"`
	// StructType holds the declared name of the embedded value type for
	// TypedEmbeddedValue properties.
	StructType string `json:"structTypeName,omitempty" yaml:"structTypeName,omitempty" msgpack:"structTypeName,omitempty"`
	// Unique indicates a uniqueness constraint on the field.
	Unique bool `json:"isUnique,omitempty" yaml:"isUnique,omitempty" msgpack:"isUnique,omitempty"`
	// Nillable indicates the field was wrapped in a nillable or optional
	// modifier at any layer.
	Nillable bool `json:"isNullable,omitempty" yaml:"isNullable,omitempty" msgpack:"isNullable,omitempty"`
	// Array indicates the field was wrapped in an array modifier at any
	// layer.
	Array bool `json:"isArray,omitempty" yaml:"isArray,omitempty" msgpack:"isArray,omitempty"`
	// Values holds the literal values of closed string enumerations, in
	// declaration order. Nil for every other property.
	Values []string `json:"acceptableValues,omitempty" yaml:"acceptableValues,omitempty" msgpack:"acceptableValues,omitempty"`
}

// IsReference reports whether the property points at another entity.
func (p *Property) IsReference() bool {
	return p.Type == PropertyReference
}

// Definition is the normalized description of one entity. Definitions are
// created fresh on every generation call and are not mutated afterwards;
// Name is unique across a generated set and acts as the join key for
// relation records.
type Definition struct {
	Name        string      `json:"name" yaml:"name" msgpack:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" msgpack:"description,omitempty"`
	Properties  []*Property `json:"properties" yaml:"properties" msgpack:"properties"`
}

// Property returns the named property, or nil if the definition has none.
func (d *Definition) Property(name string) *Property {
	for _, p := range d.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// References returns the ReferencedObject properties in declaration order.
func (d *Definition) References() []*Property {
	var refs []*Property
	for _, p := range d.Properties {
		if p.IsReference() {
			refs = append(refs, p)
		}
	}
	return refs
}

// RelationEdge is one directed reference edge as seen from either endpoint:
// the entity on the far side, the field carrying the reference, and whether
// that field is unique. False flags are dropped from encoded output, the
// same convention Property follows.
type RelationEdge struct {
	EntityName   string `json:"entityName" yaml:"entityName" msgpack:"entityName"`
	PropertyName string `json:"propertyName" yaml:"propertyName" msgpack:"propertyName"`
	Unique       bool   `json:"isUnique,omitempty" yaml:"isUnique,omitempty" msgpack:"isUnique,omitempty"`
}

// Relation holds the derived reference edges of one entity. ReferTos lists
// the entities this entity points at, in property declaration order.
// ReferredBys lists the entities pointing back at it, ordered by the
// definition list first and property order within each definition.
//
// The edge set is symmetric: every ReferTos entry (A -> B, field f) on A has
// exactly one matching ReferredBys entry (A, f) on B. The one exception is a
// field referencing its own entity, which appears in ReferTos only.
type Relation struct {
	EntityName  string          `json:"entityName" yaml:"entityName" msgpack:"entityName"`
	ReferTos    []*RelationEdge `json:"referTos" yaml:"referTos" msgpack:"referTos"`
	ReferredBys []*RelationEdge `json:"referredBys" yaml:"referredBys" msgpack:"referredBys"`
}
