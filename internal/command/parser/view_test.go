package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlylink/internal/command"
	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/testutil"
)

func TestParseFind(t *testing.T) {
	t.Run("every criterion", func(t *testing.T) {
		cmd, err := ParseFind("n/alice  ben ic/S1234567A r/north t/diabetic")
		require.NoError(t, err)
		c := cmd.Criteria
		assert.Equal(t, []string{"alice", "ben"}, c.NameKeywords)
		assert.Equal(t, testutil.TestNrics.Elderly1, c.Nric)
		assert.Equal(t, models.RegionNorth, c.Region)
		assert.Equal(t, []models.Tag{"diabetic"}, c.Tags)
	})

	t.Run("no criteria", func(t *testing.T) {
		_, err := ParseFind("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		assert.Contains(t, err.Error(), command.UsageFind)
	})

	t.Run("blank name keywords", func(t *testing.T) {
		_, err := ParseFind("n/")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("preamble forbidden", func(t *testing.T) {
		_, err := ParseFind("alice")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("invalid region", func(t *testing.T) {
		_, err := ParseFind("r/MARS")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestParseList(t *testing.T) {
	for _, tc := range []struct {
		args string
		want command.ListKind
	}{
		{"", command.ListAll},
		{" elderly ", command.ListElderly},
		{"VOLUNTEERS", command.ListVolunteers},
		{"pairs", command.ListPairs},
		{"paired", command.ListPaired},
		{"unpaired", command.ListUnpaired},
	} {
		cmd, err := ParseList(tc.args)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, cmd.Kind)
	}

	_, err := ParseList("everything")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
