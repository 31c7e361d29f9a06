package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlylink/internal/command"
	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/testutil"
)

func TestParseUnpair(t *testing.T) {
	t.Run("both valid", func(t *testing.T) {
		cmd, err := ParseUnpair("nl/S1234567A nv/T7654321B")
		require.NoError(t, err)
		assert.Equal(t, testutil.TestNrics.Elderly1, cmd.Elderly)
		assert.Equal(t, testutil.TestNrics.Volunteer1, cmd.Volunteer)
	})

	t.Run("prefix order does not matter", func(t *testing.T) {
		cmd, err := ParseUnpair("nv/T7654321B nl/S1234567A")
		require.NoError(t, err)
		assert.Equal(t, testutil.TestNrics.Elderly1, cmd.Elderly)
	})

	t.Run("elderly side invalid", func(t *testing.T) {
		_, err := ParseUnpair("nl/bad nv/T7654321B")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Equal(t, fmt.Sprintf(command.MessageInvalidPersonNric, "elderly", models.NricConstraints), err.Error())
	})

	t.Run("volunteer side invalid", func(t *testing.T) {
		_, err := ParseUnpair("nl/S1234567A nv/bad")
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf(command.MessageInvalidPersonNric, "volunteer", models.NricConstraints), err.Error())
	})

	t.Run("both invalid are reported together", func(t *testing.T) {
		_, err := ParseUnpair("nl/bad nv/worse")
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf(command.MessageBothInvalidNric, models.NricConstraints), err.Error())
	})

	t.Run("missing prefix", func(t *testing.T) {
		_, err := ParseUnpair("nl/S1234567A")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		assert.Contains(t, err.Error(), command.UsageUnpair)
	})

	t.Run("preamble forbidden", func(t *testing.T) {
		_, err := ParseUnpair("x nl/S1234567A nv/T7654321B")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("duplicate prefix", func(t *testing.T) {
		_, err := ParseUnpair("nl/S1234567A nl/S2345678B nv/T7654321B")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestParsePair(t *testing.T) {
	cmd, err := ParsePair("nl/S1234567A nv/T7654321B")
	require.NoError(t, err)
	assert.Equal(t, command.Pair{Elderly: testutil.TestNrics.Elderly1, Volunteer: testutil.TestNrics.Volunteer1}, cmd)

	_, err = ParsePair("")
	assert.Contains(t, err.Error(), command.UsagePair)
}
