// Package field provides fluent builders for the field schemas that make up
// an entity declaration.
//
// # Field Types
//
//	field.Bool("active")
//	field.Int("age")
//	field.Float("price")
//	field.String("name")
//	field.Text("bio")
//	field.Time("created_at")
//	field.UUID("id")
//	field.Enum("status").Values("active", "suspended")
//	field.Any("payload")
//
// # Modifiers
//
// Nillable, Optional, and Array wrap a schema in a new layer. Layers
// compose in any order and to any depth:
//
//	field.String("tags").Array().Optional()
//	field.Int("score").Nillable()
//
// # Structural Tags
//
// Tags mark the semantic role of a field for the model generator. They can
// be set before or after wrapping; readers resolve them either way:
//
//	field.UUID("id").PrimaryKey()
//	field.String("email").Unique()
//	field.String("company_id").Ref(Company)
//	field.String("country").RefField(Country, "code")
//
// # Validation
//
// Fields carry validator functions the way they carry every other
// declaration detail. The model generator never runs them; they are stored
// for whatever runtime consumes the schemas:
//
//	field.String("email").NotEmpty().MaxLen(255)
//	field.Float("rating").Min(0).Max(5)
package field
