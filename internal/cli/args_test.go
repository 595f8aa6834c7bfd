package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareArgs(t *testing.T) {
	root := NewRootCmd(&App{})

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"positional", []string{"morning", "-10"}, []string{"morning", "--", "-10"}},
		{"before flags", []string{"day", "-1", "--output", "csv"}, []string{"day", "--output", "csv", "--", "-1"}},
		{"after bool flag", []string{"morning", "--yes", "-5"}, []string{"morning", "--yes", "--", "-5"}},
		{"flag value", []string{"morning", "--offset", "-10"}, []string{"morning", "--offset", "-10"}},
		{"short flag value", []string{"morning", "-o", "-10"}, []string{"morning", "-o", "-10"}},
		{"already separated", []string{"week", "--", "-1"}, []string{"week", "--", "-1"}},
		{"joined with separator", []string{"morning", "-5", "--", "x"}, []string{"morning", "--", "-5", "x"}},
		{"positive", []string{"month", "2"}, []string{"month", "2"}},
		{"shorthand flag", []string{"morning", "-y"}, []string{"morning", "-y"}},
		{"root only", []string{"-1"}, []string{"-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrepareArgs(root, tt.args))
		})
	}
}
