package gen_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/entmap"
	"github.com/syssam/entmap/compiler/gen"
	"github.com/syssam/entmap/schema"
	"github.com/syssam/entmap/schema/field"
)

func TestDefinitions(t *testing.T) {
	company := schema.Entity("Company",
		field.UUID("id").PrimaryKey(),
		field.String("name"),
	)
	user := schema.Entity("User",
		field.UUID("id").PrimaryKey(),
		field.String("email").Unique(),
		field.String("company_id").Ref(company),
	)

	defs, err := gen.Definitions(company, user)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	// Input order is preserved.
	assert.Equal(t, "Company", defs[0].Name)
	assert.Equal(t, "User", defs[1].Name)

	assert.Equal(t, &entmap.Definition{
		Name: "Company",
		Properties: []*entmap.Property{
			{Name: "id", Type: entmap.PropertyPrimaryKey},
			{Name: "name", Type: entmap.PropertyString},
		},
	}, defs[0])

	assert.Equal(t, &entmap.Definition{
		Name: "User",
		Properties: []*entmap.Property{
			{Name: "id", Type: entmap.PropertyPrimaryKey},
			{Name: "email", Type: entmap.PropertyString, Unique: true},
			{Name: "company_id", Type: entmap.PropertyReference, Target: "Company"},
		},
	}, defs[1])
}

func TestDefinitionsSkipsNonEntities(t *testing.T) {
	company := schema.Entity("Company", field.UUID("id").PrimaryKey())
	address := schema.Value("Address", field.String("street"))
	plain := field.Object(field.String("x"))

	defs, err := gen.Definitions(address, company, plain)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Company", defs[0].Name)
}

func TestDefinitionsDescription(t *testing.T) {
	with := schema.Entity("Company", field.UUID("id").PrimaryKey()).
		Comment("An employer.")
	without := schema.Entity("User", field.UUID("id").PrimaryKey())

	defs, err := gen.Definitions(with, without)
	require.NoError(t, err)
	assert.Equal(t, "An employer.", defs[0].Description)
	assert.Empty(t, defs[1].Description)
}

func TestDefinitionsRequireEntityName(t *testing.T) {
	_, err := gen.Definitions(schema.Entity("", field.UUID("id").PrimaryKey()))
	require.Error(t, err)
	assert.True(t, entmap.IsMissingName(err))
}

func TestDefinitionsRequireObjectShape(t *testing.T) {
	notObject := field.String("oops").Declare(field.KindEntity, "Oops")
	_, err := gen.Definitions(notObject)
	require.Error(t, err)
	assert.True(t, entmap.IsInvalidShape(err))
	assert.ErrorContains(t, err, "Oops")
}

func TestDefinitionsAbortOnFirstFailure(t *testing.T) {
	good := schema.Entity("Good", field.UUID("id").PrimaryKey())
	bad := schema.Entity("Bad", field.Any("payload"))

	// One bad field fails the whole batch, no partial results.
	defs, err := gen.Definitions(good, bad)
	require.Error(t, err)
	assert.Nil(t, defs)
}

func TestDefinitionsFreshPerCall(t *testing.T) {
	company := schema.Entity("Company", field.UUID("id").PrimaryKey())
	first, err := gen.Definitions(company)
	require.NoError(t, err)
	second, err := gen.Definitions(company)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotSame(t, first[0], second[0])
}

func TestRelations(t *testing.T) {
	company := schema.Entity("Company",
		field.UUID("id").PrimaryKey(),
		field.String("name"),
	)
	user := schema.Entity("User",
		field.UUID("id").PrimaryKey(),
		field.String("email").Unique(),
		field.String("company_id").Ref(company),
	)

	defs, err := gen.Definitions(company, user)
	require.NoError(t, err)
	rels := gen.Relations(defs)
	require.Len(t, rels, 2)

	expected := []*entmap.Relation{
		{
			EntityName: "Company",
			ReferTos:   []*entmap.RelationEdge{},
			ReferredBys: []*entmap.RelationEdge{
				{EntityName: "User", PropertyName: "company_id"},
			},
		},
		{
			EntityName: "User",
			ReferTos: []*entmap.RelationEdge{
				{EntityName: "Company", PropertyName: "company_id"},
			},
			ReferredBys: []*entmap.RelationEdge{},
		},
	}
	if diff := cmp.Diff(expected, rels); diff != "" {
		t.Errorf("relations mismatch (-want +got):\n%s", diff)
	}
}

// TestRelationSymmetry checks that every outgoing edge has exactly one
// matching incoming edge on the target, with the same property name and
// uniqueness flag.
func TestRelationSymmetry(t *testing.T) {
	company := schema.Entity("Company", field.UUID("id").PrimaryKey())
	team := schema.Entity("Team",
		field.UUID("id").PrimaryKey(),
		field.String("company_id").Ref(company),
	)
	user := schema.Entity("User",
		field.UUID("id").PrimaryKey(),
		field.String("company_id").Ref(company),
		field.String("team_id").Unique().Ref(team),
	)

	defs, err := gen.Definitions(company, team, user)
	require.NoError(t, err)
	rels := gen.Relations(defs)

	byName := make(map[string]*entmap.Relation, len(rels))
	for _, r := range rels {
		byName[r.EntityName] = r
	}
	for _, r := range rels {
		for _, out := range r.ReferTos {
			target := byName[out.EntityName]
			require.NotNil(t, target)
			matches := 0
			for _, in := range target.ReferredBys {
				if in.EntityName == r.EntityName && in.PropertyName == out.PropertyName && in.Unique == out.Unique {
					matches++
				}
			}
			assert.Equalf(t, 1, matches, "edge %s.%s -> %s", r.EntityName, out.PropertyName, out.EntityName)
		}
	}

	// Uniqueness flags survive into both directions.
	assert.True(t, byName["User"].ReferTos[1].Unique)
	assert.True(t, byName["Team"].ReferredBys[0].Unique)
}

func TestRelationsNoDeduplication(t *testing.T) {
	user := schema.Entity("User", field.UUID("id").PrimaryKey())
	transfer := schema.Entity("Transfer",
		field.UUID("id").PrimaryKey(),
		field.String("sender_id").Ref(user),
		field.String("recipient_id").Ref(user),
	)

	defs, err := gen.Definitions(user, transfer)
	require.NoError(t, err)
	rels := gen.Relations(defs)

	// Two distinct referencing fields produce two distinct edges on each
	// side, in property declaration order.
	require.Len(t, rels[1].ReferTos, 2)
	assert.Equal(t, "sender_id", rels[1].ReferTos[0].PropertyName)
	assert.Equal(t, "recipient_id", rels[1].ReferTos[1].PropertyName)
	require.Len(t, rels[0].ReferredBys, 2)
	assert.Equal(t, "sender_id", rels[0].ReferredBys[0].PropertyName)
	assert.Equal(t, "recipient_id", rels[0].ReferredBys[1].PropertyName)
}

func TestRelationsReferredByOrder(t *testing.T) {
	company := schema.Entity("Company", field.UUID("id").PrimaryKey())
	alpha := schema.Entity("Alpha",
		field.UUID("id").PrimaryKey(),
		field.String("company_id").Ref(company),
	)
	beta := schema.Entity("Beta",
		field.UUID("id").PrimaryKey(),
		field.String("company_id").Ref(company),
	)

	defs, err := gen.Definitions(company, alpha, beta)
	require.NoError(t, err)
	rels := gen.Relations(defs)

	// Incoming edges follow the definition list order.
	require.Len(t, rels[0].ReferredBys, 2)
	assert.Equal(t, "Alpha", rels[0].ReferredBys[0].EntityName)
	assert.Equal(t, "Beta", rels[0].ReferredBys[1].EntityName)
}

func TestRelationsSelfReference(t *testing.T) {
	employee := schema.Entity("Employee", field.UUID("id").PrimaryKey())
	// Declared in two steps so the field can point at its own entity.
	manager := field.String("manager_id").Ref(employee).Nillable()
	employee = schema.Entity("Employee",
		field.UUID("id").PrimaryKey(),
		manager,
	)

	defs, err := gen.Definitions(employee)
	require.NoError(t, err)
	rels := gen.Relations(defs)
	require.Len(t, rels, 1)

	// The self edge shows up outgoing only: a definition is never scanned
	// against itself for incoming edges.
	require.Len(t, rels[0].ReferTos, 1)
	assert.Equal(t, "Employee", rels[0].ReferTos[0].EntityName)
	assert.Empty(t, rels[0].ReferredBys)
}

func TestNaming(t *testing.T) {
	tests := []struct {
		in     string
		table  string
		label  string
		pascal string
	}{
		{"User", "users", "user", "User"},
		{"OrderItem", "order_items", "order_item", "OrderItem"},
		{"company_id", "company_ids", "company_id", "CompanyID"},
		{"avatar_url", "avatar_urls", "avatar_url", "AvatarURL"},
		{"Category", "categories", "category", "Category"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.table, gen.Table(tt.in))
			assert.Equal(t, tt.label, gen.Label(tt.in))
			assert.Equal(t, tt.pascal, gen.Pascal(tt.in))
		})
	}
}
