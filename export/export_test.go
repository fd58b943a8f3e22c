package export_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/entmap/export"
	"github.com/syssam/entmap/schema"
	"github.com/syssam/entmap/schema/field"
)

func fixture(t *testing.T) *export.Model {
	t.Helper()
	company := schema.Entity("Company",
		field.UUID("id").PrimaryKey(),
		field.String("name"),
	)
	user := schema.Entity("User",
		field.UUID("id").PrimaryKey(),
		field.String("email").Unique(),
		field.String("company_id").Ref(company),
	)
	m, err := export.FromSchemas(company, user)
	require.NoError(t, err)
	return m
}

func TestJSON(t *testing.T) {
	b, err := fixture(t).JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Contains(t, decoded, "entities")
	require.Contains(t, decoded, "relations")

	// Wire names follow the model's property vocabulary.
	s := string(b)
	assert.Contains(t, s, `"propertyType": "PrimaryKey"`)
	assert.Contains(t, s, `"targetEntityDefinitionName": "Company"`)
	assert.Contains(t, s, `"isUnique": true`)
	assert.NotContains(t, s, "description")

	// One convention across properties and relation edges: false flags
	// are omitted, never written out.
	assert.NotContains(t, s, `"isUnique": false`)
	assert.NotContains(t, s, `"isNullable"`)
	assert.NotContains(t, s, `"isArray"`)
}

func TestYAML(t *testing.T) {
	b, err := fixture(t).YAML()
	require.NoError(t, err)

	var decoded export.Model
	require.NoError(t, yaml.Unmarshal(b, &decoded))
	require.Len(t, decoded.Entities, 2)
	assert.Equal(t, "User", decoded.Entities[1].Name)
	assert.Equal(t, "Company", decoded.Relations[1].ReferTos[0].EntityName)
}

func TestMessagePack(t *testing.T) {
	m := fixture(t)
	b, err := m.MessagePack()
	require.NoError(t, err)

	var decoded export.Model
	require.NoError(t, msgpack.Unmarshal(b, &decoded))
	assert.Equal(t, m.Entities, decoded.Entities)
	assert.Equal(t, m.Relations, decoded.Relations)
}

func TestFromSchemasPropagatesErrors(t *testing.T) {
	bad := schema.Entity("Bad", field.Any("payload"))
	m, err := export.FromSchemas(bad)
	require.Error(t, err)
	assert.Nil(t, m)
}
