package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id1 := GenerateID()
	id2 := GenerateID()

	assert.Len(t, id1, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", id1)
	assert.NotEqual(t, id1, id2)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", []string{}},
		{"whitespace only", "  \n \n", []string{}},
		{"single line", "Uma Thurman", []string{"Uma Thurman"}},
		{"multiple lines", "Uma Thurman\nJohn Travolta", []string{"Uma Thurman", "John Travolta"}},
		{"trims and drops blanks", " Uma Thurman \n\n John Travolta\n", []string{"Uma Thurman", "John Travolta"}},
		{"windows line endings", "one\r\ntwo", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.input))
		})
	}
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "a\nb", JoinLines([]string{"a", "b"}))
	assert.Equal(t, "", JoinLines(nil))
}
