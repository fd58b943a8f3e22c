// Package schema provides the declaration entry points for entmap models.
//
// A model is a set of schemas declared with [Entity], [Value], and [JSON],
// each built from the field builders in the [field] subpackage:
//
//	company := schema.Entity("Company",
//		field.UUID("id").PrimaryKey(),
//		field.String("name"),
//	)
//
//	user := schema.Entity("User",
//		field.UUID("id").PrimaryKey(),
//		field.String("email").Unique(),
//		field.String("company_id").Ref(company),
//	)
//
// Declarations are plain values: build them once at initialization time and
// hand them to the generator in compiler/gen. Tagging mutates the schema it
// is called on, so concurrent declaration and generation of the same
// schemas is the caller's responsibility; the intended pattern is declare
// first, generate after.
package schema
