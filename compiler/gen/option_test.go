package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Run("fills conventional values", func(t *testing.T) {
		c := &Config{}
		c.Defaults()

		assert.Equal(t, "../inputTypeSchemas", c.InputTypePath)
		assert.Equal(t, "@prisma/client", c.ClientPath)
		assert.NotNil(t, c.Parser)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		c := &Config{InputTypePath: "./schemas", ClientPath: "../client"}
		c.Defaults()

		assert.Equal(t, "./schemas", c.InputTypePath)
		assert.Equal(t, "../client", c.ClientPath)
	})
}

func TestOptions(t *testing.T) {
	t.Run("WithInputTypePath trims trailing slash", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithInputTypePath("./schemas/")(c))
		assert.Equal(t, "./schemas", c.InputTypePath)
	})

	t.Run("WithInputTypePath rejects empty path", func(t *testing.T) {
		err := WithInputTypePath("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("WithInputTypePath rejects non-relative path", func(t *testing.T) {
		err := WithInputTypePath("schemas")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("WithClientPath rejects empty path", func(t *testing.T) {
		err := WithClientPath("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("WithDirectiveParser rejects nil", func(t *testing.T) {
		err := WithDirectiveParser(nil)(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("WithDirectiveParser replaces the parser", func(t *testing.T) {
		p := NewDirectiveParser()
		c := &Config{}
		require.NoError(t, WithDirectiveParser(p)(c))
		assert.Equal(t, p, c.Parser)
	})
}

func TestImportConventions(t *testing.T) {
	c := &Config{}
	c.Defaults()

	t.Run("json helpers", func(t *testing.T) {
		assert.Equal(t,
			"import { NullableJsonValue } from '../inputTypeSchemas/NullableJsonValue'",
			c.nullableJSONImport())
		assert.Equal(t,
			"import { InputJsonValue } from '../inputTypeSchemas/InputJsonValue'",
			c.inputJSONImport())
	})

	t.Run("client import", func(t *testing.T) {
		assert.Equal(t, "import { Prisma } from '@prisma/client'", c.clientImport())
	})

	t.Run("schema imports", func(t *testing.T) {
		assert.Equal(t,
			"import { RoleSchema } from '../inputTypeSchemas/RoleSchema'",
			c.enumSchemaImport("Role"))
		assert.Equal(t,
			"import { UserIncludeSchema } from '../inputTypeSchemas/UserIncludeSchema'",
			c.includeSchemaImport("User"))
		assert.Equal(t,
			"import { UserWhereInputSchema } from '../inputTypeSchemas/UserWhereInputSchema'",
			c.argTypeImport("UserWhereInput"))
	})
}
