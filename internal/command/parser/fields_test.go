package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/platform/validation"
)

func TestParseNric(t *testing.T) {
	n, err := ParseNric("  s1234567a ")
	require.NoError(t, err)
	assert.Equal(t, "S1234567A", n.String())

	for _, bad := range []string{"", "bad", "S123456A", "A1234567B", "S12345678A"} {
		_, err := ParseNric(bad)
		require.Error(t, err, bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), bad)
		assert.Equal(t, models.NricConstraints, err.Error())
	}
}

func TestParseTags(t *testing.T) {
	t.Run("one bad value rejects the batch", func(t *testing.T) {
		_, err := ParseTags([]string{"ok", "not ok"})
		require.Error(t, err)
		assert.Equal(t, models.TagConstraints, err.Error())
	})

	t.Run("too many values", func(t *testing.T) {
		values := strings.Split(strings.Repeat("x,", validation.MaxRepeatedValues+1), ",")
		_, err := ParseTags(values[:validation.MaxRepeatedValues+1])
		assert.Error(t, err)
	})
}

func TestParseRepeatableForEdit(t *testing.T) {
	t.Run("absent leaves the field untouched", func(t *testing.T) {
		tags, ok, err := ParseRepeatableForEdit(nil, ParseTags)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, tags)
	})

	t.Run("single empty value clears", func(t *testing.T) {
		tags, ok, err := ParseRepeatableForEdit([]string{""}, ParseTags)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	t.Run("values are parsed", func(t *testing.T) {
		tags, ok, err := ParseRepeatableForEdit([]string{"a", "b"}, ParseTags)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []models.Tag{"a", "b"}, tags)
	})

	t.Run("empty among others is invalid", func(t *testing.T) {
		_, _, err := ParseRepeatableForEdit([]string{"a", ""}, ParseTags)
		assert.Error(t, err)
	})
}

func TestIsParseError(t *testing.T) {
	assert.True(t, IsParseError(dErrors.New(dErrors.CodeInvalidInput, "x")))
	assert.True(t, IsParseError(invalidFormat("usage")))
	assert.False(t, IsParseError(dErrors.New(dErrors.CodeNotFound, "x")))
	assert.False(t, IsParseError(errors.New("plain")))
}
