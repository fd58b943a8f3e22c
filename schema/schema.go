package schema

import "github.com/syssam/entmap/schema/field"

// Entity declares an object schema as a named entity. Entities are the
// schemas the model generator turns into definitions; their fields keep the
// given declaration order. A description can be attached with Comment:
//
//	user := schema.Entity("User",
//		field.UUID("id").PrimaryKey(),
//		field.String("email").Unique(),
//	).Comment("A registered account.")
func Entity(name string, fields ...*field.Schema) *field.Schema {
	return field.Object(fields...).Declare(field.KindEntity, name)
}

// Value declares an object schema as a named reusable value type. Unlike
// entities, values are embedded into entities directly and never referenced:
//
//	address := schema.Value("Address",
//		field.String("street"),
//		field.String("city"),
//	)
//	// ... field.Embed("billing_address", address).Nillable()
func Value(name string, fields ...*field.Schema) *field.Schema {
	return field.Object(fields...).Declare(field.KindValue, name)
}

// JSON declares an arbitrary schema as a named free-form JSON value. The
// generator reports it as an embedded value under the given name:
//
//	prefs := schema.JSON("Preferences", field.Any("preferences"))
func JSON(name string, inner *field.Schema) *field.Schema {
	return inner.Declare(field.KindJSON, name)
}
