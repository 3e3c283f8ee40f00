package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entikit/entitygen/internal/models"
)

func getter(name, returnType string) models.MethodDescriptor {
	return models.MethodDescriptor{Name: name, ReturnType: returnType}
}

func setter(name string, paramTypes ...string) models.MethodDescriptor {
	return models.MethodDescriptor{Name: name, ParamTypes: paramTypes}
}

func TestBuildFieldTable_GetterSetterPair(t *testing.T) {
	tests := []struct {
		name     string
		methods  []models.MethodDescriptor
		wantType string
	}{
		{
			name:     "getter first",
			methods:  []models.MethodDescriptor{getter("getFoo", "int"), setter("setFoo", "int")},
			wantType: "int",
		},
		{
			name:     "setter first",
			methods:  []models.MethodDescriptor{setter("setFoo", "int"), getter("getFoo", "int")},
			wantType: "int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildFieldTable(tt.methods)
			require.Len(t, table, 1)
			assert.Equal(t, "foo", table[0].Name)
			assert.Equal(t, tt.wantType, table[0].Type)
		})
	}
}

func TestBuildFieldTable_FirstSeenTypeWins(t *testing.T) {
	table := BuildFieldTable([]models.MethodDescriptor{
		getter("getFoo", "int"),
		setter("setFoo", "string"),
	})

	require.Len(t, table, 1)
	assert.Equal(t, "int", table[0].Type, "the first-seen type is never overwritten")
}

func TestBuildFieldTable_SkipsNonAccessorShapes(t *testing.T) {
	table := BuildFieldTable([]models.MethodDescriptor{
		getter("fetchName", "string"),
		getter("name", "string"),
		getter("Getname", "string"), // prefix match is case-sensitive
		setter("update", "string"),
	})

	assert.Empty(t, table)
}

func TestBuildFieldTable_MalformedSetterSkipped(t *testing.T) {
	table := BuildFieldTable([]models.MethodDescriptor{
		setter("setFoo"), // void-shaped, zero parameters
	})

	assert.Empty(t, table)
}

func TestBuildFieldTable_IdentifierFlag(t *testing.T) {
	t.Run("defaults to false", func(t *testing.T) {
		table := BuildFieldTable([]models.MethodDescriptor{getter("getName", "string")})
		require.Len(t, table, 1)
		assert.False(t, table[0].Identifier)
	})

	t.Run("first-seen occurrence carries the flag", func(t *testing.T) {
		annotated := setter("setCode", "string")
		annotated.Identifier = true

		table := BuildFieldTable([]models.MethodDescriptor{
			annotated,
			getter("getCode", "string"),
		})
		require.Len(t, table, 1)
		assert.True(t, table[0].Identifier)
	})

	t.Run("later occurrences never overwrite", func(t *testing.T) {
		annotated := getter("getCode", "string")
		annotated.Identifier = true

		table := BuildFieldTable([]models.MethodDescriptor{
			getter("getCode", "string"), // first, unflagged
			annotated,
		})
		require.Len(t, table, 1)
		assert.False(t, table[0].Identifier)
	})
}

func TestBuildFieldTable_LowercasesRemainder(t *testing.T) {
	table := BuildFieldTable([]models.MethodDescriptor{getter("getURL", "string")})

	require.Len(t, table, 1)
	assert.Equal(t, "url", table[0].Name)
}

func TestBuildFieldTable_LowercaseCollision(t *testing.T) {
	table := BuildFieldTable([]models.MethodDescriptor{
		getter("getX", "int"),
		getter("getx", "string"),
	})

	require.Len(t, table, 1, "getX and getx collide to the same field")
	assert.Equal(t, "int", table[0].Type)
}

func TestBuildFieldTable_PreservesEncounterOrder(t *testing.T) {
	table := BuildFieldTable([]models.MethodDescriptor{
		getter("getB", "int"),
		getter("getA", "int"),
		getter("getC", "int"),
	})

	assert.Equal(t, []string{"b", "a", "c"}, table.Names())
}

func TestBuildFieldTable_PersonExample(t *testing.T) {
	active := getter("isActive", "bool")
	active.Identifier = true

	table := BuildFieldTable([]models.MethodDescriptor{
		getter("getName", "string"),
		setter("setName", "string"),
		active,
	})

	require.Equal(t, models.FieldTable{
		{Name: "name", Type: "string"},
		{Name: "active", Type: "bool", Identifier: true},
	}, table)
}

func TestAssembleDescriptor(t *testing.T) {
	fields := models.FieldTable{{Name: "name", Type: "string"}}

	t.Run("qualified by package", func(t *testing.T) {
		descriptor := AssembleDescriptor("Person", "com.example", fields)
		assert.Equal(t, "PersonImpl", descriptor.ImplName)
		assert.Equal(t, "com.example.PersonImpl", descriptor.QualifiedName)
		assert.Equal(t, "Person", descriptor.SourceName)
		assert.Equal(t, fields, descriptor.Fields)
	})

	t.Run("empty package", func(t *testing.T) {
		descriptor := AssembleDescriptor("Person", "", fields)
		assert.Equal(t, "PersonImpl", descriptor.QualifiedName)
	})
}
