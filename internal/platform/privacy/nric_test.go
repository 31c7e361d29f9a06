package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskNric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "standard nric", input: "S1234567A", expected: "S****567A"},
		{name: "foreigner prefix", input: "G7654321X", expected: "G****321X"},
		{name: "empty", input: "", expected: "unknown"},
		{name: "too short", input: "S12", expected: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskNric(tt.input))
		})
	}
}

func TestHashNric(t *testing.T) {
	h := HashNric("S1234567A")
	assert.Len(t, h, 16)
	assert.Equal(t, h, HashNric("S1234567A"))
	assert.NotEqual(t, h, HashNric("S1234567B"))
	assert.Empty(t, HashNric(""))
}
