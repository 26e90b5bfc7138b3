package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalDocument(t *testing.T) {
	t.Run("decodes models and operations", func(t *testing.T) {
		doc, err := UnmarshalDocument([]byte(`{
			"datamodel": {
				"models": [{
					"name": "User",
					"dbName": "users",
					"documentation": "the user model",
					"fields": [
						{"name": "id", "kind": "scalar", "type": "Int", "isRequired": true, "isId": true},
						{"name": "posts", "kind": "object", "type": "Post", "isList": true, "relationName": "UserPosts"}
					],
					"uniqueFields": [["email"]],
					"primaryKey": {"fields": ["id"]}
				}],
				"enums": [{"name": "Role", "values": [{"name": "ADMIN"}]}]
			},
			"schema": {
				"outputObjectTypes": {
					"prisma": [{
						"name": "Query",
						"fields": [{
							"name": "findManyUser",
							"args": [{
								"name": "where",
								"inputTypes": [{"type": "UserWhereInput", "location": "inputObjectTypes"}]
							}],
							"outputType": {"type": "User", "isList": true}
						}]
					}]
				}
			}
		}`))
		require.NoError(t, err)

		require.Len(t, doc.Datamodel.Models, 1)
		m := doc.Datamodel.Models[0]
		assert.Equal(t, "User", m.Name)
		assert.Equal(t, "users", m.DBName)
		assert.Equal(t, [][]string{{"email"}}, m.UniqueFields)
		require.NotNil(t, m.PrimaryKey)
		assert.Equal(t, []string{"id"}, m.PrimaryKey.Fields)
		require.Len(t, m.Fields, 2)
		assert.Equal(t, "UserPosts", m.Fields[1].RelationName)

		require.Len(t, doc.Datamodel.Enums, 1)
		assert.Equal(t, "Role", doc.Datamodel.Enums[0].Name)

		ops := doc.Schema.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, "findManyUser", ops[0].Name)
		require.Len(t, ops[0].Args, 1)
		assert.Equal(t, "UserWhereInput", ops[0].Args[0].InputTypes[0].Type)
	})

	t.Run("defaults field kind to scalar", func(t *testing.T) {
		doc, err := UnmarshalDocument([]byte(`{
			"datamodel": {"models": [{"name": "User", "fields": [{"name": "id", "type": "Int"}]}]},
			"schema": {"outputObjectTypes": {"prisma": []}}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "scalar", doc.Datamodel.Models[0].Fields[0].Kind)
	})

	t.Run("rejects unnamed models", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`{
			"datamodel": {"models": [{"fields": []}]},
			"schema": {"outputObjectTypes": {"prisma": []}}
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model name")
	})

	t.Run("rejects unnamed fields", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`{
			"datamodel": {"models": [{"name": "User", "fields": [{"type": "Int"}]}]},
			"schema": {"outputObjectTypes": {"prisma": []}}
		}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field name")
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := UnmarshalDocument([]byte(`{`))
		require.Error(t, err)
	})
}

func TestOperations(t *testing.T) {
	t.Run("includes Query and Mutation only", func(t *testing.T) {
		s := Schema{
			OutputObjectTypes: OutputObjectTypes{
				Prisma: []*OutputType{
					{Name: "Query", Fields: []*OutputField{{Name: "findManyUser"}}},
					{Name: "User", Fields: []*OutputField{{Name: "posts"}}},
					{Name: "Mutation", Fields: []*OutputField{{Name: "createOneUser"}}},
				},
			},
		}
		ops := s.Operations()
		require.Len(t, ops, 2)
		assert.Equal(t, "findManyUser", ops[0].Name)
		assert.Equal(t, "createOneUser", ops[1].Name)
	})

	t.Run("empty schema", func(t *testing.T) {
		assert.Empty(t, Schema{}.Operations())
	})
}
