package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	t.Run("simple name", func(t *testing.T) {
		n := FormatName("User")
		assert.Equal(t, "User", n.Original)
		assert.Equal(t, "User", n.Pascal)
		assert.Equal(t, "user", n.Camel)
		assert.Equal(t, "Users", n.Plural)
	})

	t.Run("separated words", func(t *testing.T) {
		n := FormatName("user_profile")
		assert.Equal(t, "UserProfile", n.Pascal)
		assert.Equal(t, "userProfile", n.Camel)
	})

	t.Run("irregular plural", func(t *testing.T) {
		n := FormatName("Category")
		assert.Equal(t, "Categories", n.Plural)
	})
}

func TestCasing(t *testing.T) {
	t.Run("pascal", func(t *testing.T) {
		assert.Equal(t, "UserProfile", pascal("user profile"))
		assert.Equal(t, "UserID", pascal("user-ID"))
		assert.Empty(t, pascal(""))
	})

	t.Run("camel", func(t *testing.T) {
		assert.Equal(t, "userProfile", camel("User_Profile"))
		assert.Empty(t, camel(""))
	})
}
